package render

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/trafficlab/ad-report-api/internal/domain"
)

func sampleDocument() *domain.ReportDocument {
	spend := 120.0

	return &domain.ReportDocument{
		ID:          "abc123",
		Title:       "Relatório de Teste",
		Subtitle:    "Loja Sul",
		Profile:     "sales",
		Range:       domain.DateRange{Since: "2024-01-01", Until: "2024-01-07"},
		GeneratedAt: time.Now(),
		Sections: []domain.Section{
			{
				Kind: domain.SectionStatCards,
				StatCards: &domain.StatCardRow{Cards: []domain.StatCard{
					{ID: domain.MetricSpend, Label: "Investimento", Value: 500, Format: "currency", Color: "#2E86DE", TrendPct: 12.5, Sentiment: domain.TrendBad},
					{ID: domain.MetricPurchases, Label: "Compras", Value: 25, Format: "number", Color: "#F368E0", Sentiment: domain.TrendNeutral},
				}},
			},
			{
				Kind: domain.SectionTrendChart,
				Trend: &domain.TrendChart{
					Labels:    []string{"2024-01-01", "2024-01-02", "2024-01-03"},
					Bars:      []float64{100, 200, 150},
					BarLabel:  "Investimento",
					Line:      []float64{2.0, 3.1, 2.4},
					LineLabel: "ROAS",
				},
			},
			{
				Kind: domain.SectionFunnel,
				Funnel: &domain.FunnelChart{Steps: []domain.FunnelStep{
					{ID: domain.MetricImpressions, Label: "Impressões", Value: 20000, Pct: 100},
					{ID: domain.MetricClicks, Label: "Cliques", Value: 800, Pct: 4},
					{ID: domain.MetricPurchases, Label: "Compras", Value: 25, Pct: 0.13},
				}},
			},
			{
				Kind: domain.SectionDemographics,
				Demographics: &domain.DemographicsPair{
					MetricLabel: "Investimento",
					AgeGender: []domain.AgeGenderRow{
						{Bracket: "18-24", Male: 40, Female: 60},
						{Bracket: "25-34", Male: 120, Female: 80},
					},
					Regions: []domain.RankedEntry{
						{Label: "São Paulo", Value: 300},
						{Label: "Minas Gerais", Value: 150},
					},
				},
			},
			{
				Kind: domain.SectionPlacements,
				Placements: &domain.PlacementPanel{
					ChartMetric: "impressions",
					Chart: []domain.RankedEntry{
						{Label: "facebook feed", Value: 9000},
						{Label: "instagram stories", Value: 7000},
					},
					Ledger: []domain.PlacementRow{
						{Label: "facebook feed", Impressions: 9000, Clicks: 300, Results: 12, Spend: &spend},
						{Label: "instagram stories", Impressions: 7000, Clicks: 250, Results: 9},
					},
				},
			},
			{
				Kind: domain.SectionCampaigns,
				Campaigns: &domain.CampaignLedger{
					ResultLabel: "Compras",
					Rows: []domain.CampaignRow{
						{ID: "c1", Name: "Campanha Verão", Impressions: 12000, Clicks: 500, Results: 15, Spend: &spend},
					},
				},
			},
			{
				Kind: domain.SectionCreatives,
				Creatives: &domain.CreativeGrid{Items: []domain.CreativeCard{
					{ID: "ad1", Name: "Criativo A", Impressions: 5000, Clicks: 200, Purchases: 8},
				}},
			},
		},
	}
}

func TestRender(t *testing.T) {
	t.Run("Superfície sai na largura lógica fixa", func(t *testing.T) {
		surface, err := Render(sampleDocument(), DefaultWidth)

		assert.NoError(t, err)
		assert.Equal(t, DefaultWidth, surface.Width())
		assert.Greater(t, surface.Height(), 0)
	})

	t.Run("Largura não positiva cai no padrão", func(t *testing.T) {
		surface, err := Render(sampleDocument(), 0)

		assert.NoError(t, err)
		assert.Equal(t, DefaultWidth, surface.Width())
	})

	t.Run("Documento nulo é rejeitado", func(t *testing.T) {
		_, err := Render(nil, DefaultWidth)
		assert.Error(t, err)
	})

	t.Run("Documento sem seções ainda rende o cabeçalho", func(t *testing.T) {
		doc := sampleDocument()
		doc.Sections = nil

		surface, err := Render(doc, DefaultWidth)

		assert.NoError(t, err)
		assert.Greater(t, surface.Height(), 0)
	})

	t.Run("Série degenerada não derruba a renderização", func(t *testing.T) {
		doc := sampleDocument()
		doc.Sections = []domain.Section{
			{
				Kind: domain.SectionTrendChart,
				Trend: &domain.TrendChart{
					Labels:    []string{"2024-01-01"},
					Bars:      []float64{100},
					BarLabel:  "Investimento",
					Line:      []float64{2.0},
					LineLabel: "ROAS",
				},
			},
		}

		surface, err := Render(doc, DefaultWidth)

		assert.NoError(t, err)
		assert.Equal(t, DefaultWidth, surface.Width())
	})
}

func TestTruncate(t *testing.T) {
	t.Run("Nomes curtos passam intactos", func(t *testing.T) {
		assert.Equal(t, "Conversão", truncate("Conversão", 20))
		assert.Equal(t, "abc", truncate("abc", 3))
	})

	t.Run("Corte em nomes acentuados não quebra runas", func(t *testing.T) {
		out := truncate("Promoção de Verão São Paulo", 10)

		assert.Equal(t, "Promoçã...", out)
		assert.True(t, utf8.ValidString(out))
	})
}
