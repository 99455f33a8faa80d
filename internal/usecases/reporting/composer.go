package reporting

import (
	"time"

	"github.com/trafficlab/ad-report-api/internal/domain"
	"github.com/trafficlab/ad-report-api/internal/profiles"
	"github.com/trafficlab/ad-report-api/pkg/utils"
)

// Compose monta o ReportDocument em um único passo síncrono a partir dos
// dados já buscados. Seções são independentes e opcionais: uma coleção vazia
// simplesmente omite a seção correspondente, nunca derruba a composição
// inteira.
func Compose(req Request, rng domain.DateRange, pol domain.PolicyContext, data bundle) *domain.ReportDocument {
	cfg := profiles.Get(pol.SelectedProfile)

	id, err := utils.GenerateID()
	if err != nil {
		id = "report"
	}

	doc := &domain.ReportDocument{
		ID:          id,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Profile:     cfg.ID,
		Range:       rng,
		Policy:      pol,
		GeneratedAt: time.Now(),
	}

	if section := composeStatCards(cfg, pol, data); section != nil {
		doc.Sections = append(doc.Sections, domain.Section{Kind: domain.SectionStatCards, StatCards: section})
	}

	if section := composeTrend(cfg, pol, data.daily); section != nil {
		doc.Sections = append(doc.Sections, domain.Section{Kind: domain.SectionTrendChart, Trend: section})
	}

	if section := composeFunnel(cfg, pol, data); section != nil {
		doc.Sections = append(doc.Sections, domain.Section{Kind: domain.SectionFunnel, Funnel: section})
	}

	if section := composeDemographics(pol, data); section != nil {
		doc.Sections = append(doc.Sections, domain.Section{Kind: domain.SectionDemographics, Demographics: section})
	}

	if section := composePlacements(cfg, pol, data.placements); section != nil {
		doc.Sections = append(doc.Sections, domain.Section{Kind: domain.SectionPlacements, Placements: section})
	}

	if section := composeCampaigns(cfg, pol, data.campaigns); section != nil {
		doc.Sections = append(doc.Sections, domain.Section{Kind: domain.SectionCampaigns, Campaigns: section})
	}

	if section := composeCreatives(pol, data.creatives); section != nil {
		doc.Sections = append(doc.Sections, domain.Section{Kind: domain.SectionCreatives, Creatives: section})
	}

	return doc
}

func composeStatCards(cfg profiles.Config, pol domain.PolicyContext, data bundle) *domain.StatCardRow {
	if !data.accountOK {
		return nil
	}

	defs := profiles.CardsForPolicy(cfg.ID, pol.HideCost)

	cards := make([]domain.StatCard, 0, len(defs))
	for _, def := range defs {
		card := domain.StatCard{
			ID:        def.ID,
			Label:     def.Label,
			Value:     MetricValue(data.account, def.ID, pol, cfg.RankingMetric),
			Format:    string(def.Format),
			Color:     def.Color,
			Sentiment: domain.TrendNeutral,
		}

		if pol.ComparePrevious && data.previous != nil {
			previous := MetricValue(*data.previous, def.ID, pol, cfg.RankingMetric)
			card.TrendPct = TrendPct(card.Value, previous)
			card.Sentiment = Sentiment(def.ID, card.TrendPct)
		}

		cards = append(cards, card)
	}

	return &domain.StatCardRow{Cards: cards}
}

func composeTrend(cfg profiles.Config, pol domain.PolicyContext, daily []domain.DailyInsight) *domain.TrendChart {
	if len(daily) == 0 {
		return nil
	}

	trend := &domain.TrendChart{
		BarLabel:  cfg.ChartBars.Label,
		LineLabel: cfg.ChartLine.Label,
	}

	for _, day := range daily {
		trend.Labels = append(trend.Labels, day.Day())
		trend.Bars = append(trend.Bars, MetricValue(day.InsightRecord, cfg.ChartBars.Source, pol, cfg.RankingMetric))
		trend.Line = append(trend.Line, MetricValue(day.InsightRecord, cfg.ChartLine.Source, pol, cfg.RankingMetric))
	}

	return trend
}

func composeFunnel(cfg profiles.Config, pol domain.PolicyContext, data bundle) *domain.FunnelChart {
	if !data.accountOK || len(cfg.FunnelSteps) == 0 {
		return nil
	}

	funnel := &domain.FunnelChart{}

	var first float64
	for i, step := range cfg.FunnelSteps {
		value := MetricValue(data.account, step, pol, cfg.RankingMetric)
		if i == 0 {
			first = value
		}

		pct := 0.0
		if first > 0 {
			pct = utils.RoundWithTwoDecimalPlace(value / first * 100)
		}

		funnel.Steps = append(funnel.Steps, domain.FunnelStep{
			ID:    step,
			Label: funnelLabel(step),
			Value: value,
			Pct:   pct,
		})
	}

	return funnel
}

func funnelLabel(id domain.MetricID) string {
	switch id {
	case domain.MetricImpressions:
		return "Impressões"
	case domain.MetricClicks:
		return "Cliques"
	case domain.MetricPurchases:
		return "Compras"
	case domain.MetricLeads:
		return "Leads"
	case domain.MetricMessages:
		return "Conversas"
	case domain.MetricPostEngagement:
		return "Engajamento"
	}

	return string(id)
}

func composeDemographics(pol domain.PolicyContext, data bundle) *domain.DemographicsPair {
	ageGender := PivotAgeGender(data.ageGender, pol)
	regions := RankRegions(data.regions, pol)

	if len(ageGender) == 0 && len(regions) == 0 {
		return nil
	}

	_, label := demographicsMetric(pol)

	return &domain.DemographicsPair{
		MetricLabel: label,
		AgeGender:   ageGender,
		Regions:     regions,
	}
}

func composePlacements(cfg profiles.Config, pol domain.PolicyContext, rows []domain.BreakdownRecord) *domain.PlacementPanel {
	if len(rows) == 0 {
		return nil
	}

	chart, ledger := RankPlacements(rows, cfg.PlacementChartMetric, cfg.RankingMetric, pol)
	if len(chart) == 0 {
		return nil
	}

	return &domain.PlacementPanel{
		ChartMetric: string(cfg.PlacementChartMetric),
		Chart:       chart,
		Ledger:      ledger,
	}
}

func composeCampaigns(cfg profiles.Config, pol domain.PolicyContext, campaigns []domain.CampaignSummary) *domain.CampaignLedger {
	if len(campaigns) == 0 {
		return nil
	}

	return &domain.CampaignLedger{
		ResultLabel: funnelLabel(cfg.RankingMetric),
		Rows:        RankCampaigns(campaigns, cfg.RankingMetric, pol),
	}
}

func composeCreatives(pol domain.PolicyContext, creatives []domain.CreativeRecord) *domain.CreativeGrid {
	if len(creatives) == 0 {
		return nil
	}

	return &domain.CreativeGrid{Items: RankCreatives(creatives, pol)}
}
