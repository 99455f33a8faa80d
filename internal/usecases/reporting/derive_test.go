package reporting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trafficlab/ad-report-api/internal/domain"
)

func noPolicy() domain.PolicyContext {
	return domain.PolicyContext{SpendMultiplier: 1}
}

func TestMetricValueSpendMultiplier(t *testing.T) {
	record := domain.InsightRecord{
		Spend:        "100",
		Clicks:       "50",
		Impressions:  "10000",
		Actions:      []domain.Action{{ActionType: "purchase", Value: "4"}},
		ActionValues: []domain.Action{{ActionType: "purchase", Value: "300"}},
	}

	pol := domain.PolicyContext{SpendMultiplier: 2}

	t.Run("Gasto é escalado", func(t *testing.T) {
		assert.Equal(t, 200.0, MetricValue(record, domain.MetricSpend, pol, domain.MetricPurchases))
	})

	t.Run("Receita não é escalada, então o ROAS cai na proporção", func(t *testing.T) {
		// ROAS bruto seria 3.0; com o gasto dobrado, 300/200 = 1.5.
		assert.Equal(t, 1.5, MetricValue(record, domain.MetricROAS, pol, domain.MetricPurchases))
	})

	t.Run("CPA usa o gasto ajustado", func(t *testing.T) {
		assert.Equal(t, 50.0, MetricValue(record, domain.MetricCPA, pol, domain.MetricPurchases))
	})

	t.Run("CPC usa o gasto ajustado", func(t *testing.T) {
		assert.Equal(t, 4.0, MetricValue(record, domain.MetricCPC, pol, domain.MetricPurchases))
	})

	t.Run("CPM usa o gasto ajustado", func(t *testing.T) {
		assert.Equal(t, 20.0, MetricValue(record, domain.MetricCPM, pol, domain.MetricPurchases))
	})

	t.Run("Métricas de contagem passam inalteradas", func(t *testing.T) {
		assert.Equal(t, 10000.0, MetricValue(record, domain.MetricImpressions, pol, domain.MetricPurchases))
	})

	t.Run("CPA respeita a conversão do perfil", func(t *testing.T) {
		leads := domain.InsightRecord{
			Spend:   "60",
			Actions: []domain.Action{{ActionType: "lead", Value: "3"}},
		}

		assert.Equal(t, 20.0, MetricValue(leads, domain.MetricCPA, noPolicy(), domain.MetricLeads))
	})
}

func TestTrendPct(t *testing.T) {
	assert.Equal(t, 50.0, TrendPct(150, 100))
	assert.Equal(t, -25.0, TrendPct(75, 100))
	assert.Equal(t, 0.0, TrendPct(150, 0), "período anterior zerado nunca produz tendência infinita")
	assert.Equal(t, 0.0, TrendPct(0, 0))
}

func TestSentiment(t *testing.T) {
	tests := []struct {
		metric   domain.MetricID
		trend    float64
		expected string
	}{
		{domain.MetricPurchases, 10, domain.TrendGood},
		{domain.MetricPurchases, -10, domain.TrendBad},
		{domain.MetricSpend, 10, domain.TrendBad},
		{domain.MetricSpend, -10, domain.TrendGood},
		{domain.MetricCPA, 5, domain.TrendBad},
		{domain.MetricCPC, -5, domain.TrendGood},
		{domain.MetricROAS, 5, domain.TrendGood},
		{domain.MetricSpend, 0, domain.TrendNeutral},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s com tendência %.0f", tt.metric, tt.trend), func(t *testing.T) {
			assert.Equal(t, tt.expected, Sentiment(tt.metric, tt.trend))
		})
	}
}

func breakdownRow(age, gender, region, platform, position, spend, impressions string) domain.BreakdownRecord {
	return domain.BreakdownRecord{
		InsightRecord: domain.InsightRecord{
			Spend:       spend,
			Impressions: impressions,
		},
		Age:               age,
		Gender:            gender,
		Region:            region,
		PublisherPlatform: platform,
		PlatformPosition:  position,
	}
}

func TestPivotAgeGender(t *testing.T) {
	rows := []domain.BreakdownRecord{
		breakdownRow("25-34", "male", "", "", "", "120", "1000"),
		breakdownRow("25-34", "female", "", "", "", "80", "900"),
		breakdownRow("18-24", "female", "", "", "", "40", "500"),
		breakdownRow("Unknown", "male", "", "", "", "999", "9999"),
		breakdownRow("unknown", "female", "", "", "", "999", "9999"),
	}

	t.Run("Faixas Unknown são descartadas e ausências valem zero", func(t *testing.T) {
		pivoted := PivotAgeGender(rows, noPolicy())

		assert.Len(t, pivoted, 2)
		assert.Equal(t, "18-24", pivoted[0].Bracket)
		assert.Equal(t, 0.0, pivoted[0].Male, "faixa sem o gênero recebe zero, não é omitida")
		assert.Equal(t, 40.0, pivoted[0].Female)
		assert.Equal(t, "25-34", pivoted[1].Bracket)
		assert.Equal(t, 120.0, pivoted[1].Male)
		assert.Equal(t, 80.0, pivoted[1].Female)
	})

	t.Run("Com redação de custos a métrica vira impressões", func(t *testing.T) {
		pol := noPolicy()
		pol.HideCost = true

		pivoted := PivotAgeGender(rows, pol)

		assert.Equal(t, 1000.0, pivoted[1].Male)
		assert.Equal(t, 900.0, pivoted[1].Female)
	})
}

func TestRankRegions(t *testing.T) {
	var rows []domain.BreakdownRecord
	for i := 1; i <= 12; i++ {
		rows = append(rows, breakdownRow("", "", fmt.Sprintf("Regiao %02d", i), "", "", fmt.Sprintf("%d", i*10), "100"))
	}
	rows = append(rows, breakdownRow("", "", "Unknown", "", "", "55", "100"))

	ranked := RankRegions(rows, noPolicy())

	assert.Len(t, ranked, 5, "computa o top 10 mas exibe apenas 5")
	assert.Equal(t, "Regiao 12", ranked[0].Label)
	assert.Equal(t, 120.0, ranked[0].Value)
	assert.Equal(t, "Regiao 08", ranked[4].Label)

	labels := make([]string, 0, len(ranked))
	for _, entry := range ranked {
		labels = append(labels, entry.Label)
	}
	assert.NotContains(t, labels, "Unknown", "com gasto 55 a região Unknown fica fora do top 5, mas participa do ranking")
}

func TestRankingEmpatesPreservamOrdemDeEntrada(t *testing.T) {
	t.Run("Regiões com gasto idêntico saem na ordem em que chegaram", func(t *testing.T) {
		var rows []domain.BreakdownRecord
		for i := 1; i <= 8; i++ {
			rows = append(rows, breakdownRow("", "", fmt.Sprintf("Regiao %d", i), "", "", "100", "100"))
		}

		ranked := RankRegions(rows, noPolicy())

		assert.Len(t, ranked, 5)
		for i, entry := range ranked {
			assert.Equal(t, fmt.Sprintf("Regiao %d", i+1), entry.Label)
		}

		again := RankRegions(rows, noPolicy())
		assert.Equal(t, ranked, again, "o desempate é determinístico entre chamadas")
	})

	t.Run("Campanhas empatadas em gasto preservam a ordem original", func(t *testing.T) {
		var campaigns []domain.CampaignSummary
		for i := 1; i <= 4; i++ {
			campaigns = append(campaigns, domain.CampaignSummary{
				ID:   fmt.Sprintf("c%d", i),
				Name: fmt.Sprintf("Campanha %d", i),
				InsightRecord: domain.InsightRecord{
					Spend:       "250",
					Impressions: "1000",
					Clicks:      "50",
					Actions:     []domain.Action{{ActionType: "purchase", Value: "2"}},
				},
			})
		}

		rows := RankCampaigns(campaigns, domain.MetricPurchases, noPolicy())

		assert.Len(t, rows, 4)
		for i, row := range rows {
			assert.Equal(t, fmt.Sprintf("Campanha %d", i+1), row.Name)
		}
	})

	t.Run("Criativos empatados em gasto preservam a ordem original", func(t *testing.T) {
		var creatives []domain.CreativeRecord
		for i := 1; i <= 4; i++ {
			creatives = append(creatives, domain.CreativeRecord{
				ID:   fmt.Sprintf("ad%d", i),
				Name: fmt.Sprintf("Criativo %d", i),
				InsightRecord: domain.InsightRecord{
					Spend:   "80",
					Actions: []domain.Action{{ActionType: "purchase", Value: "3"}},
				},
			})
		}

		cards := RankCreatives(creatives, noPolicy())

		assert.Len(t, cards, 4)
		for i, card := range cards {
			assert.Equal(t, fmt.Sprintf("Criativo %d", i+1), card.Name)
		}
	})
}

func TestRankPlacements(t *testing.T) {
	var rows []domain.BreakdownRecord
	for i := 1; i <= 9; i++ {
		row := breakdownRow("", "", "", "facebook", fmt.Sprintf("pos_%d", i), fmt.Sprintf("%d", i), fmt.Sprintf("%d00", i))
		row.Clicks = "10"
		row.Actions = []domain.Action{{ActionType: "purchase", Value: fmt.Sprintf("%d", 10-i)}}
		rows = append(rows, row)
	}

	chart, ledger := RankPlacements(rows, domain.MetricImpressions, domain.MetricPurchases, noPolicy())

	assert.Len(t, chart, 8, "gráfico fica com o top 8")
	assert.Equal(t, "facebook pos_9", chart[0].Label)

	assert.Len(t, ledger, 5, "razão fica com o top 5")
	assert.Equal(t, "facebook pos_1", ledger[0].Label, "razão reordena pela métrica de ranking do perfil, não pela do gráfico")
	assert.Equal(t, 9.0, ledger[0].Results)
	assert.NotNil(t, ledger[0].Spend)

	t.Run("Redação zera o ponteiro de gasto, nunca o valor", func(t *testing.T) {
		pol := noPolicy()
		pol.HideCost = true

		_, redacted := RankPlacements(rows, domain.MetricImpressions, domain.MetricPurchases, pol)

		for _, row := range redacted {
			assert.Nil(t, row.Spend)
			assert.NotZero(t, row.Results)
		}
	})
}

func TestRankCampaigns(t *testing.T) {
	var campaigns []domain.CampaignSummary
	for i := 1; i <= 12; i++ {
		campaigns = append(campaigns, domain.CampaignSummary{
			ID:   fmt.Sprintf("c%d", i),
			Name: fmt.Sprintf("Campanha %d", i),
			InsightRecord: domain.InsightRecord{
				Spend:       fmt.Sprintf("%d", i*100),
				Impressions: "1000",
				Clicks:      "50",
				Actions:     []domain.Action{{ActionType: "purchase", Value: "2"}},
			},
		})
	}

	rows := RankCampaigns(campaigns, domain.MetricPurchases, noPolicy())

	assert.Len(t, rows, 10)
	assert.Equal(t, "Campanha 12", rows[0].Name)
	assert.NotNil(t, rows[0].Spend)
	assert.Equal(t, 1200.0, *rows[0].Spend)
	assert.NotNil(t, rows[0].CostPerResult)
	assert.Equal(t, 600.0, *rows[0].CostPerResult)

	t.Run("Mesmo redigido, o gasto segue ordenando o razão", func(t *testing.T) {
		pol := noPolicy()
		pol.HideCost = true

		redacted := RankCampaigns(campaigns, domain.MetricPurchases, pol)

		assert.Equal(t, "Campanha 12", redacted[0].Name)
		assert.Nil(t, redacted[0].Spend)
		assert.Nil(t, redacted[0].CostPerResult)
	})
}

func TestRankCreatives(t *testing.T) {
	var creatives []domain.CreativeRecord
	for i := 1; i <= 12; i++ {
		creatives = append(creatives, domain.CreativeRecord{
			ID:   fmt.Sprintf("ad%d", i),
			Name: fmt.Sprintf("Criativo %d", i),
			InsightRecord: domain.InsightRecord{
				Spend:   fmt.Sprintf("%d", i*10),
				Actions: []domain.Action{{ActionType: "purchase", Value: fmt.Sprintf("%d", 13-i)}},
			},
		})
	}

	t.Run("Sem redação ordena por gasto", func(t *testing.T) {
		cards := RankCreatives(creatives, noPolicy())

		assert.Len(t, cards, 10)
		assert.Equal(t, "Criativo 12", cards[0].Name)
		assert.NotNil(t, cards[0].Spend)
	})

	t.Run("Com redação o corte segue por gasto e a exibição reordena por compras", func(t *testing.T) {
		pol := noPolicy()
		pol.HideCost = true

		cards := RankCreatives(creatives, pol)

		assert.Len(t, cards, 10)
		// Criativos 3..12 sobrevivem ao corte por gasto; o 3 tem mais compras.
		assert.Equal(t, "Criativo 3", cards[0].Name)
		assert.Nil(t, cards[0].Spend)
	})

	t.Run("Perfil sales reordena por compras mesmo sem redação", func(t *testing.T) {
		pol := noPolicy()
		pol.SelectedProfile = "sales"

		cards := RankCreatives(creatives, pol)

		assert.Equal(t, "Criativo 3", cards[0].Name)
		assert.NotNil(t, cards[0].Spend, "sem redação o gasto continua visível")
	})
}
