package profiles

import (
	"github.com/trafficlab/ad-report-api/internal/domain"
)

// FormatKind indica como o valor de um cartão deve ser formatado.
type FormatKind string

const (
	FormatCurrency   FormatKind = "currency"
	FormatNumber     FormatKind = "number"
	FormatPercent    FormatKind = "percent"
	FormatDecimal    FormatKind = "decimal"
	FormatMultiplier FormatKind = "multiplier"
)

// CardDef define um cartão de KPI de um perfil.
type CardDef struct {
	ID     domain.MetricID `json:"id"`
	Label  string          `json:"label"`
	Format FormatKind      `json:"format"`
	Color  string          `json:"color"`
}

// SeriesDef define uma série do gráfico principal: a métrica de origem e o
// rótulo do eixo.
type SeriesDef struct {
	Source domain.MetricID `json:"source"`
	Label  string          `json:"label"`
}

// Config é a configuração declarativa de um perfil de relatório. Somente
// leitura; nunca alterada em tempo de execução.
type Config struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Cards                []CardDef         `json:"cards"`
	ChartBars            SeriesDef         `json:"chart_bars"`
	ChartLine            SeriesDef         `json:"chart_line"`
	FunnelSteps          []domain.MetricID `json:"funnel_steps"`
	PlacementChartMetric domain.MetricID   `json:"placement_chart_metric"`
	RankingMetric        domain.MetricID   `json:"ranking_metric"`
}

// DefaultProfile é o perfil usado quando o id informado é desconhecido.
const DefaultProfile = "sales"

// costMetrics é o conjunto de métricas denominadas em custo, removidas pelo
// filtro genérico de redação.
var costMetrics = map[domain.MetricID]bool{
	domain.MetricSpend:   true,
	domain.MetricCPA:     true,
	domain.MetricROAS:    true,
	domain.MetricCPC:     true,
	domain.MetricRevenue: true,
}

// IsCostMetric informa se a métrica é denominada em custo.
func IsCostMetric(id domain.MetricID) bool {
	return costMetrics[id]
}

// salesCostFreeCards substitui em bloco os quatro cartões canônicos de vendas
// quando hideCost está ativo. Regra de negócio específica do perfil sales, e
// não um filtro genérico; ver CardsForPolicy.
var salesCostFreeCards = []CardDef{
	{ID: domain.MetricReach, Label: "Alcance", Format: FormatNumber, Color: "#2E86DE"},
	{ID: domain.MetricImpressions, Label: "Impressões", Format: FormatNumber, Color: "#10AC84"},
	{ID: domain.MetricPurchases, Label: "Compras", Format: FormatNumber, Color: "#F368E0"},
	{ID: domain.MetricCTR, Label: "CTR", Format: FormatPercent, Color: "#FF9F43"},
}

// registry é o registro fechado de perfis, chaveado pelo id do perfil.
var registry = map[string]Config{
	"sales": {
		ID:   "sales",
		Name: "Vendas",
		Cards: []CardDef{
			{ID: domain.MetricSpend, Label: "Investimento", Format: FormatCurrency, Color: "#2E86DE"},
			{ID: domain.MetricClicks, Label: "Cliques", Format: FormatNumber, Color: "#10AC84"},
			{ID: domain.MetricPurchases, Label: "Compras", Format: FormatNumber, Color: "#F368E0"},
			{ID: domain.MetricROAS, Label: "ROAS", Format: FormatMultiplier, Color: "#FF9F43"},
		},
		ChartBars:            SeriesDef{Source: domain.MetricSpend, Label: "Investimento"},
		ChartLine:            SeriesDef{Source: domain.MetricROAS, Label: "ROAS"},
		FunnelSteps:          []domain.MetricID{domain.MetricImpressions, domain.MetricClicks, domain.MetricPurchases},
		PlacementChartMetric: domain.MetricImpressions,
		RankingMetric:        domain.MetricPurchases,
	},
	"engagement": {
		ID:   "engagement",
		Name: "Engajamento",
		Cards: []CardDef{
			{ID: domain.MetricPostEngagement, Label: "Engajamento", Format: FormatNumber, Color: "#2E86DE"},
			{ID: domain.MetricReach, Label: "Alcance", Format: FormatNumber, Color: "#10AC84"},
			{ID: domain.MetricImpressions, Label: "Impressões", Format: FormatNumber, Color: "#F368E0"},
			{ID: domain.MetricSpend, Label: "Investimento", Format: FormatCurrency, Color: "#FF9F43"},
		},
		ChartBars:            SeriesDef{Source: domain.MetricReach, Label: "Alcance"},
		ChartLine:            SeriesDef{Source: domain.MetricPostEngagement, Label: "Engajamento"},
		FunnelSteps:          []domain.MetricID{domain.MetricImpressions, domain.MetricClicks, domain.MetricPostEngagement},
		PlacementChartMetric: domain.MetricReach,
		RankingMetric:        domain.MetricPostEngagement,
	},
	"leads": {
		ID:   "leads",
		Name: "Leads",
		Cards: []CardDef{
			{ID: domain.MetricSpend, Label: "Investimento", Format: FormatCurrency, Color: "#2E86DE"},
			{ID: domain.MetricClicks, Label: "Cliques", Format: FormatNumber, Color: "#10AC84"},
			{ID: domain.MetricLeads, Label: "Leads", Format: FormatNumber, Color: "#F368E0"},
			{ID: domain.MetricCPA, Label: "Custo por lead", Format: FormatCurrency, Color: "#FF9F43"},
		},
		ChartBars:            SeriesDef{Source: domain.MetricSpend, Label: "Investimento"},
		ChartLine:            SeriesDef{Source: domain.MetricLeads, Label: "Leads"},
		FunnelSteps:          []domain.MetricID{domain.MetricImpressions, domain.MetricClicks, domain.MetricLeads},
		PlacementChartMetric: domain.MetricImpressions,
		RankingMetric:        domain.MetricLeads,
	},
	"messenger": {
		ID:   "messenger",
		Name: "Mensagens",
		Cards: []CardDef{
			{ID: domain.MetricSpend, Label: "Investimento", Format: FormatCurrency, Color: "#2E86DE"},
			{ID: domain.MetricReach, Label: "Alcance", Format: FormatNumber, Color: "#10AC84"},
			{ID: domain.MetricMessages, Label: "Conversas", Format: FormatNumber, Color: "#F368E0"},
			{ID: domain.MetricCPA, Label: "Custo por conversa", Format: FormatCurrency, Color: "#FF9F43"},
		},
		ChartBars:            SeriesDef{Source: domain.MetricSpend, Label: "Investimento"},
		ChartLine:            SeriesDef{Source: domain.MetricMessages, Label: "Conversas"},
		FunnelSteps:          []domain.MetricID{domain.MetricImpressions, domain.MetricClicks, domain.MetricMessages},
		PlacementChartMetric: domain.MetricImpressions,
		RankingMetric:        domain.MetricMessages,
	},
}

// order fixa a ordem de listagem dos perfis.
var order = []string{"sales", "engagement", "leads", "messenger"}

// Get resolve a configuração de um perfil; id desconhecido cai no perfil
// padrão (sales).
func Get(profileID string) Config {
	if cfg, ok := registry[profileID]; ok {
		return cfg
	}

	return registry[DefaultProfile]
}

// List devolve todos os perfis na ordem canônica.
func List() []Config {
	configs := make([]Config, 0, len(order))
	for _, id := range order {
		configs = append(configs, registry[id])
	}

	return configs
}

// CardsForPolicy resolve o conjunto de cartões visíveis sob a política de
// redação de custos.
//
// Para o perfil sales com hideCost ativo os quatro cartões canônicos são
// substituídos em bloco pelo conjunto sem custo — regra específica do perfil,
// deliberadamente diferente do filtro genérico dos demais perfis. Não
// unificar.
func CardsForPolicy(profileID string, hideCost bool) []CardDef {
	cfg := Get(profileID)

	if !hideCost {
		return cfg.Cards
	}

	if cfg.ID == "sales" {
		return salesCostFreeCards
	}

	filtered := make([]CardDef, 0, len(cfg.Cards))
	for _, card := range cfg.Cards {
		if costMetrics[card.ID] {
			continue
		}

		filtered = append(filtered, card)
	}

	return filtered
}
