package domain

import "time"

// SectionKind identifica o tipo de uma seção do documento.
type SectionKind string

const (
	SectionStatCards    SectionKind = "stat_cards"
	SectionTrendChart   SectionKind = "trend_chart"
	SectionFunnel       SectionKind = "funnel"
	SectionDemographics SectionKind = "demographics"
	SectionPlacements   SectionKind = "placements"
	SectionCampaigns    SectionKind = "campaigns"
	SectionCreatives    SectionKind = "creatives"
)

// Sentimento de uma tendência em relação ao período anterior.
const (
	TrendGood    = "good"
	TrendBad     = "bad"
	TrendNeutral = "neutral"
)

// StatCard é um cartão de KPI já derivado e pronto para exibição.
type StatCard struct {
	ID        MetricID `json:"id"`
	Label     string   `json:"label"`
	Value     float64  `json:"value"`
	Format    string   `json:"format"`
	Color     string   `json:"color"`
	TrendPct  float64  `json:"trend_pct"`
	Sentiment string   `json:"sentiment"`
}

// StatCardRow é a fileira de cartões de KPI do topo do relatório.
type StatCardRow struct {
	Cards []StatCard `json:"cards"`
}

// TrendChart é o gráfico principal de tendência: uma série de barras e uma de
// linha sobre a série diária do período.
type TrendChart struct {
	Labels    []string  `json:"labels"`
	Bars      []float64 `json:"bars"`
	BarLabel  string    `json:"bar_label"`
	Line      []float64 `json:"line"`
	LineLabel string    `json:"line_label"`
}

// FunnelStep é um degrau do funil de conversão, com o percentual em relação
// ao primeiro degrau.
type FunnelStep struct {
	ID    MetricID `json:"id"`
	Label string   `json:"label"`
	Value float64  `json:"value"`
	Pct   float64  `json:"pct"`
}

// FunnelChart é o funil de conversão do perfil ativo.
type FunnelChart struct {
	Steps []FunnelStep `json:"steps"`
}

// AgeGenderRow é uma faixa etária pivotada em colunas por gênero.
type AgeGenderRow struct {
	Bracket string  `json:"bracket"`
	Male    float64 `json:"male"`
	Female  float64 `json:"female"`
}

// RankedEntry é um item rotulado de um ranking já ordenado.
type RankedEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DemographicsPair agrupa o pivô idade×gênero e o ranking de regiões.
type DemographicsPair struct {
	MetricLabel string         `json:"metric_label"`
	AgeGender   []AgeGenderRow `json:"age_gender"`
	Regions     []RankedEntry  `json:"regions"`
}

// PlacementRow é uma linha do razão de posicionamentos. Campos de custo são
// ponteiros: nil significa redigido pela política hideCost, nunca zerado.
type PlacementRow struct {
	Label       string   `json:"label"`
	Impressions float64  `json:"impressions"`
	Clicks      float64  `json:"clicks"`
	Results     float64  `json:"results"`
	Spend       *float64 `json:"spend,omitempty"`
}

// PlacementPanel é o par gráfico de posicionamentos + razão ranqueado.
type PlacementPanel struct {
	ChartMetric string        `json:"chart_metric"`
	Chart       []RankedEntry `json:"chart"`
	Ledger      []PlacementRow `json:"ledger"`
}

// CampaignRow é uma linha do razão de campanhas.
type CampaignRow struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Impressions   float64  `json:"impressions"`
	Clicks        float64  `json:"clicks"`
	Results       float64  `json:"results"`
	Spend         *float64 `json:"spend,omitempty"`
	CostPerResult *float64 `json:"cost_per_result,omitempty"`
}

// CampaignLedger é o razão das principais campanhas do período.
type CampaignLedger struct {
	ResultLabel string        `json:"result_label"`
	Rows        []CampaignRow `json:"rows"`
}

// CreativeCard é um criativo na grade de melhores criativos.
type CreativeCard struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
	Impressions  float64  `json:"impressions"`
	Clicks       float64  `json:"clicks"`
	Purchases    float64  `json:"purchases"`
	Spend        *float64 `json:"spend,omitempty"`
}

// CreativeGrid é a grade de melhores criativos.
type CreativeGrid struct {
	Items []CreativeCard `json:"items"`
}

// Section é a união etiquetada das variantes de seção; exatamente um dos
// ponteiros é não nulo, conforme Kind.
type Section struct {
	Kind         SectionKind       `json:"kind"`
	StatCards    *StatCardRow      `json:"stat_cards,omitempty"`
	Trend        *TrendChart       `json:"trend,omitempty"`
	Funnel       *FunnelChart      `json:"funnel,omitempty"`
	Demographics *DemographicsPair `json:"demographics,omitempty"`
	Placements   *PlacementPanel   `json:"placements,omitempty"`
	Campaigns    *CampaignLedger   `json:"campaigns,omitempty"`
	Creatives    *CreativeGrid     `json:"creatives,omitempty"`
}

// ReportDocument é o documento analítico composto: uma lista ordenada de
// seções com números já derivados. Nenhuma seção relê registros brutos. O
// documento é montado a cada geração e descartado após a exportação.
type ReportDocument struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle,omitempty"`
	Profile     string      `json:"profile"`
	Range       DateRange   `json:"range"`
	Policy      PolicyContext `json:"policy"`
	GeneratedAt time.Time   `json:"generated_at"`
	Sections    []Section   `json:"sections"`
}
