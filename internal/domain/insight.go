package domain

// Action representa uma entrada da lista de ações retornada pela API de
// anúncios: um tipo de evento (compra, lead, mensagem...) e seu valor como
// string.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightRecord é o registro bruto de métricas de uma entidade em um período,
// exatamente como a API entrega: campos numéricos como string e duas listas
// heterogêneas de ações. O registro é imutável; toda leitura passa pela camada
// de extração em metric.go.
type InsightRecord struct {
	AccountID    string   `json:"account_id,omitempty"`
	AccountName  string   `json:"account_name,omitempty"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Reach        string   `json:"reach"`
	Clicks       string   `json:"clicks"`
	CTR          string   `json:"ctr"`
	Frequency    string   `json:"frequency"`
	CPM          string   `json:"cpm"`
	CPC          string   `json:"cpc"`
	Actions      []Action `json:"actions,omitempty"`
	ActionValues []Action `json:"action_values,omitempty"`
	DateStart    string   `json:"date_start,omitempty"`
	DateStop     string   `json:"date_stop,omitempty"`
}

// DailyInsight é um InsightRecord de um único dia dentro de uma série
// ordenada por data crescente.
type DailyInsight struct {
	InsightRecord
}

// Day retorna a data (YYYY-MM-DD) do registro diário.
func (d DailyInsight) Day() string {
	return d.DateStart
}

// BreakdownRecord é um InsightRecord fatiado por uma ou mais dimensões
// (idade+gênero, região ou plataforma+posição).
type BreakdownRecord struct {
	InsightRecord

	Age               string `json:"age,omitempty"`
	Gender            string `json:"gender,omitempty"`
	Region            string `json:"region,omitempty"`
	PublisherPlatform string `json:"publisher_platform,omitempty"`
	PlatformPosition  string `json:"platform_position,omitempty"`
}

// PlacementLabel monta o rótulo de um posicionamento (plataforma + posição).
func (b BreakdownRecord) PlacementLabel() string {
	if b.PlatformPosition == "" {
		return b.PublisherPlatform
	}

	return b.PublisherPlatform + " " + b.PlatformPosition
}

// CampaignSummary é o resumo de uma campanha com suas métricas embutidas.
type CampaignSummary struct {
	ID   string `json:"campaign_id"`
	Name string `json:"campaign_name"`

	InsightRecord
}

// CreativeRecord é o desempenho de um criativo (anúncio) individual.
type CreativeRecord struct {
	ID           string `json:"ad_id"`
	Name         string `json:"ad_name"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`

	InsightRecord
}
