package reporting

import (
	"sort"
	"strings"

	"github.com/trafficlab/ad-report-api/internal/domain"
	"github.com/trafficlab/ad-report-api/pkg/utils"
)

// Limites fixos dos rankings de cada seção.
const (
	topCampaigns        = 10
	topPlacementChart   = 8
	topPlacementLedger  = 5
	topRegionsComputed  = 10
	topRegionsDisplayed = 5
	topCreatives        = 10
)

// MetricValue lê uma métrica de um registro com a política aplicada: valores
// denominados em gasto são escalados pelo multiplicador antes de qualquer
// razão, de modo que ROAS e CPA reflitam o gasto ajustado, não o bruto. A
// receita não é escalada.
func MetricValue(r domain.InsightRecord, id domain.MetricID, pol domain.PolicyContext, conversion domain.MetricID) float64 {
	spend := domain.Extract(r, domain.MetricSpend) * pol.SpendMultiplier

	switch id {
	case domain.MetricSpend:
		return utils.RoundWithTwoDecimalPlace(spend)
	case domain.MetricROAS:
		if spend == 0 {
			return 0
		}

		return utils.RoundWithTwoDecimalPlace(domain.Extract(r, domain.MetricRevenue) / spend)
	case domain.MetricCPA:
		count := domain.Extract(r, conversion)
		if count == 0 {
			return 0
		}

		return utils.RoundWithTwoDecimalPlace(spend / count)
	case domain.MetricCPC:
		clicks := domain.Extract(r, domain.MetricClicks)
		if clicks == 0 {
			return 0
		}

		return utils.RoundWithTwoDecimalPlace(spend / clicks)
	case domain.MetricCPM:
		impressions := domain.Extract(r, domain.MetricImpressions)
		if impressions == 0 {
			return 0
		}

		return utils.RoundWithTwoDecimalPlace(spend / impressions * 1000)
	}

	return domain.Extract(r, id)
}

// TrendPct calcula a variação percentual contra o período anterior. Sem
// período anterior, ou com valor anterior zero, a tendência é 0 — nunca
// infinita.
func TrendPct(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

// negativePolarity marca as métricas em que um aumento é ruim.
var negativePolarity = map[domain.MetricID]bool{
	domain.MetricSpend: true,
	domain.MetricCPA:   true,
	domain.MetricCPC:   true,
}

// Sentiment classifica uma tendência conforme a polaridade da métrica.
// Tendência 0 é sempre neutra.
func Sentiment(id domain.MetricID, trend float64) string {
	if trend == 0 {
		return domain.TrendNeutral
	}

	up := trend > 0
	if negativePolarity[id] {
		up = !up
	}

	if up {
		return domain.TrendGood
	}

	return domain.TrendBad
}

// rankDesc ordena entradas por valor decrescente de forma estável: empates
// preservam a ordem original de entrada.
func rankDesc(entries []domain.RankedEntry) []domain.RankedEntry {
	ranked := make([]domain.RankedEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	return ranked
}

func limit[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}

	return items[:n]
}

// demographicsMetric resolve a métrica exibida nas seções demográficas: gasto
// por padrão, impressões quando os custos estão redigidos.
func demographicsMetric(pol domain.PolicyContext) (domain.MetricID, string) {
	if pol.HideCost {
		return domain.MetricImpressions, "Impressões"
	}

	return domain.MetricSpend, "Investimento"
}

// PivotAgeGender pivota o breakdown idade×gênero em uma linha por faixa
// etária com colunas Male/Female. Faixas Unknown são descartadas; faixas sem
// um dos gêneros recebem 0 antes da ordenação, para que a ordem nunca dependa
// de categorias ausentes.
func PivotAgeGender(rows []domain.BreakdownRecord, pol domain.PolicyContext) []domain.AgeGenderRow {
	metric, _ := demographicsMetric(pol)

	byBracket := make(map[string]*domain.AgeGenderRow)
	var brackets []string

	for _, row := range rows {
		if strings.EqualFold(row.Age, "unknown") || row.Age == "" {
			continue
		}

		pivot, ok := byBracket[row.Age]
		if !ok {
			pivot = &domain.AgeGenderRow{Bracket: row.Age}
			byBracket[row.Age] = pivot
			brackets = append(brackets, row.Age)
		}

		value := MetricValue(row.InsightRecord, metric, pol, domain.MetricPurchases)

		switch strings.ToLower(row.Gender) {
		case "male":
			pivot.Male += value
		case "female":
			pivot.Female += value
		}
	}

	sort.Strings(brackets)

	pivoted := make([]domain.AgeGenderRow, 0, len(brackets))
	for _, bracket := range brackets {
		pivoted = append(pivoted, *byBracket[bracket])
	}

	return pivoted
}

// RankRegions ranqueia o breakdown por região pela métrica demográfica ativa.
// Calcula o top 10 e devolve os 5 exibidos. Diferente do pivô etário, regiões
// "Unknown" permanecem no ranking.
func RankRegions(rows []domain.BreakdownRecord, pol domain.PolicyContext) []domain.RankedEntry {
	metric, _ := demographicsMetric(pol)

	entries := make([]domain.RankedEntry, 0, len(rows))
	for _, row := range rows {
		if row.Region == "" {
			continue
		}

		entries = append(entries, domain.RankedEntry{
			Label: row.Region,
			Value: MetricValue(row.InsightRecord, metric, pol, domain.MetricPurchases),
		})
	}

	computed := limit(rankDesc(entries), topRegionsComputed)

	return limit(computed, topRegionsDisplayed)
}

// RankPlacements monta o par gráfico + razão de posicionamentos. O gráfico
// fica com o top 8 pela métrica de gráfico do perfil; o razão reordena as
// mesmas linhas pela métrica de ranking do perfil (não necessariamente a do
// gráfico) e fica com o top 5.
func RankPlacements(rows []domain.BreakdownRecord, cfgChart, cfgRanking domain.MetricID, pol domain.PolicyContext) ([]domain.RankedEntry, []domain.PlacementRow) {
	chartEntries := make([]domain.RankedEntry, 0, len(rows))
	for _, row := range rows {
		if row.PublisherPlatform == "" {
			continue
		}

		chartEntries = append(chartEntries, domain.RankedEntry{
			Label: row.PlacementLabel(),
			Value: MetricValue(row.InsightRecord, cfgChart, pol, cfgRanking),
		})
	}

	chart := limit(rankDesc(chartEntries), topPlacementChart)

	ledger := make([]domain.PlacementRow, 0, len(rows))
	for _, row := range rows {
		if row.PublisherPlatform == "" {
			continue
		}

		entry := domain.PlacementRow{
			Label:       row.PlacementLabel(),
			Impressions: domain.Extract(row.InsightRecord, domain.MetricImpressions),
			Clicks:      domain.Extract(row.InsightRecord, domain.MetricClicks),
			Results:     MetricValue(row.InsightRecord, cfgRanking, pol, cfgRanking),
		}

		if !pol.HideCost {
			spend := MetricValue(row.InsightRecord, domain.MetricSpend, pol, cfgRanking)
			entry.Spend = &spend
		}

		ledger = append(ledger, entry)
	}

	sort.SliceStable(ledger, func(i, j int) bool {
		return ledger[i].Results > ledger[j].Results
	})

	return chart, limit(ledger, topPlacementLedger)
}

// RankCampaigns produz o razão das 10 campanhas de maior gasto ajustado. A
// ordenação usa o gasto mesmo quando a coluna foi redigida do razão.
func RankCampaigns(campaigns []domain.CampaignSummary, ranking domain.MetricID, pol domain.PolicyContext) []domain.CampaignRow {
	type scored struct {
		row   domain.CampaignRow
		spend float64
	}

	items := make([]scored, 0, len(campaigns))
	for _, campaign := range campaigns {
		row := domain.CampaignRow{
			ID:          campaign.ID,
			Name:        campaign.Name,
			Impressions: domain.Extract(campaign.InsightRecord, domain.MetricImpressions),
			Clicks:      domain.Extract(campaign.InsightRecord, domain.MetricClicks),
			Results:     MetricValue(campaign.InsightRecord, ranking, pol, ranking),
		}

		if !pol.HideCost {
			spend := MetricValue(campaign.InsightRecord, domain.MetricSpend, pol, ranking)
			cpr := MetricValue(campaign.InsightRecord, domain.MetricCPA, pol, ranking)
			row.Spend = &spend
			row.CostPerResult = &cpr
		}

		items = append(items, scored{
			row:   row,
			spend: domain.Extract(campaign.InsightRecord, domain.MetricSpend) * pol.SpendMultiplier,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].spend > items[j].spend
	})

	items = limit(items, topCampaigns)

	rows := make([]domain.CampaignRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, item.row)
	}

	return rows
}

// RankCreatives produz a grade dos 10 criativos de maior gasto. Com custos
// redigidos, ou no perfil sales, a grade é reordenada por compras.
func RankCreatives(creatives []domain.CreativeRecord, pol domain.PolicyContext) []domain.CreativeCard {
	type scored struct {
		card  domain.CreativeCard
		spend float64
	}

	items := make([]scored, 0, len(creatives))
	for _, creative := range creatives {
		card := domain.CreativeCard{
			ID:           creative.ID,
			Name:         creative.Name,
			ThumbnailURL: creative.ThumbnailURL,
			Impressions:  domain.Extract(creative.InsightRecord, domain.MetricImpressions),
			Clicks:       domain.Extract(creative.InsightRecord, domain.MetricClicks),
			Purchases:    domain.Extract(creative.InsightRecord, domain.MetricPurchases),
		}

		spend := domain.Extract(creative.InsightRecord, domain.MetricSpend) * pol.SpendMultiplier
		if !pol.HideCost {
			rounded := utils.RoundWithTwoDecimalPlace(spend)
			card.Spend = &rounded
		}

		items = append(items, scored{card: card, spend: spend})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].spend > items[j].spend
	})

	items = limit(items, topCreatives)

	if pol.HideCost || pol.SelectedProfile == "sales" {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].card.Purchases > items[j].card.Purchases
		})
	}

	cards := make([]domain.CreativeCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, item.card)
	}

	return cards
}
