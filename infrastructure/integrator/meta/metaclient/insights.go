package metaclient

import (
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/trafficlab/ad-report-api/internal/domain"
)

type responseAccountInsights struct {
	Data []domain.InsightRecord `json:"data"`
}

type responseCampaignInsights struct {
	Data []domain.CampaignSummary `json:"data"`
}

type responseBreakdownInsights struct {
	Data []domain.BreakdownRecord `json:"data"`
}

type responseAdInsights struct {
	Data []domain.CreativeRecord `json:"data"`
}

// AccountInsights busca insights no nível da conta. Com time_increment=1 nos
// params a resposta vem quebrada por dia.
func (c *MetaClient) AccountInsights(accountID string, rng domain.DateRange, params url.Values) ([]domain.InsightRecord, error) {
	body, err := c.getInsights(accountID, rng, params)
	if err != nil {
		return nil, err
	}

	var response responseAccountInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}

// CampaignInsights busca insights no nível de campanha (level=campaign).
func (c *MetaClient) CampaignInsights(accountID string, rng domain.DateRange, params url.Values) ([]domain.CampaignSummary, error) {
	body, err := c.getInsights(accountID, rng, params)
	if err != nil {
		return nil, err
	}

	var response responseCampaignInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}

// BreakdownInsights busca insights fatiados pelas dimensões do parâmetro
// breakdowns (idade+gênero, região ou plataforma+posição).
func (c *MetaClient) BreakdownInsights(accountID string, rng domain.DateRange, params url.Values) ([]domain.BreakdownRecord, error) {
	body, err := c.getInsights(accountID, rng, params)
	if err != nil {
		return nil, err
	}

	var response responseBreakdownInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}

// AdInsights busca insights no nível de anúncio (level=ad).
func (c *MetaClient) AdInsights(accountID string, rng domain.DateRange, params url.Values) ([]domain.CreativeRecord, error) {
	body, err := c.getInsights(accountID, rng, params)
	if err != nil {
		return nil, err
	}

	var response responseAdInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
