package meta

import (
	"encoding/json"
	"errors"
	"net/url"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/trafficlab/ad-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/trafficlab/ad-report-api/internal/config"
	"github.com/trafficlab/ad-report-api/internal/domain"
	"github.com/trafficlab/ad-report-api/internal/usecases/reporting"
)

// Campos pedidos em toda chamada de insights. A camada de extração tolera
// ausências, então um campo a mais ou a menos nunca quebra a geração.
const insightFields = "account_id,account_name,spend,impressions,reach,clicks,ctr,frequency,cpm,cpc,actions,action_values"

// MetaIntegrator resolve as coleções brutas do relatório contra a Graph API.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// baseParams monta os params comuns de uma busca, incluindo o filtro de
// campanhas quando o escopo o traz.
func baseParams(scope reporting.Scope) url.Values {
	params := url.Values{}
	params.Add("fields", insightFields)

	if len(scope.CampaignIDs) > 0 {
		filter := []map[string]interface{}{
			{
				"field":    "campaign.id",
				"operator": "IN",
				"value":    scope.CampaignIDs,
			},
		}

		encoded, err := json.Marshal(filter)
		if err != nil {
			logrus.WithError(err).Warn("insights: erro ao montar filtro de campanhas, seguindo sem filtro")
		} else {
			params.Add("filtering", string(encoded))
		}
	}

	return params
}

func (s *MetaIntegrator) AccountInsights(scope reporting.Scope) (domain.InsightRecord, error) {
	records, err := s.Client.AccountInsights(scope.AccountID, scope.Range, baseParams(scope))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": scope.AccountID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad account insights from API")
		return domain.InsightRecord{}, err
	}

	if len(records) == 0 {
		return domain.InsightRecord{}, errors.New("no data found")
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   scope.AccountID,
		"account_name": records[0].AccountName,
	}).Debug("insights: successfully retrieved ad account metrics")

	return records[0], nil
}

func (s *MetaIntegrator) DailyInsights(scope reporting.Scope) ([]domain.DailyInsight, error) {
	params := baseParams(scope)
	params.Add("time_increment", "1")

	records, err := s.Client.AccountInsights(scope.AccountID, scope.Range, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": scope.AccountID,
			"error":      err.Error(),
		}).Error("insights: failed to get daily insights from API")
		return nil, err
	}

	daily := make([]domain.DailyInsight, 0, len(records))
	for _, record := range records {
		daily = append(daily, domain.DailyInsight{InsightRecord: record})
	}

	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Day() < daily[j].Day()
	})

	return daily, nil
}

func (s *MetaIntegrator) CampaignSummaries(scope reporting.Scope) ([]domain.CampaignSummary, error) {
	params := baseParams(scope)
	params.Set("fields", insightFields+",campaign_id,campaign_name")
	params.Add("level", "campaign")

	campaigns, err := s.Client.CampaignInsights(scope.AccountID, scope.Range, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": scope.AccountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaign insights from API")
		return nil, err
	}

	return campaigns, nil
}

func (s *MetaIntegrator) AgeGenderBreakdown(scope reporting.Scope) ([]domain.BreakdownRecord, error) {
	return s.breakdown(scope, "age,gender")
}

func (s *MetaIntegrator) RegionBreakdown(scope reporting.Scope) ([]domain.BreakdownRecord, error) {
	return s.breakdown(scope, "region")
}

func (s *MetaIntegrator) PlacementBreakdown(scope reporting.Scope) ([]domain.BreakdownRecord, error) {
	return s.breakdown(scope, "publisher_platform,platform_position")
}

func (s *MetaIntegrator) breakdown(scope reporting.Scope, breakdowns string) ([]domain.BreakdownRecord, error) {
	params := baseParams(scope)
	params.Add("breakdowns", breakdowns)

	records, err := s.Client.BreakdownInsights(scope.AccountID, scope.Range, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": scope.AccountID,
			"breakdowns": breakdowns,
			"error":      err.Error(),
		}).Error("insights: failed to get breakdown insights from API")
		return nil, err
	}

	return records, nil
}

func (s *MetaIntegrator) Creatives(scope reporting.Scope) ([]domain.CreativeRecord, error) {
	params := baseParams(scope)
	params.Set("fields", insightFields+",ad_id,ad_name")
	params.Add("level", "ad")

	creatives, err := s.Client.AdInsights(scope.AccountID, scope.Range, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": scope.AccountID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad insights from API")
		return nil, err
	}

	return creatives, nil
}
