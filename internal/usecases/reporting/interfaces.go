package reporting

import (
	"github.com/trafficlab/ad-report-api/internal/domain"
)

// Scope delimita uma busca de dados brutos: conta, período resolvido e filtro
// opcional de campanhas (aplicado pela fonte, nunca dentro do motor).
type Scope struct {
	AccountID   string
	Range       domain.DateRange
	CampaignIDs []string
}

// InsightSource é a fronteira com a camada externa de busca de dados. O motor
// de relatórios nunca busca nada sozinho: recebe coleções já resolvidas por
// esta interface.
type InsightSource interface {
	AccountInsights(scope Scope) (domain.InsightRecord, error)
	DailyInsights(scope Scope) ([]domain.DailyInsight, error)
	CampaignSummaries(scope Scope) ([]domain.CampaignSummary, error)
	AgeGenderBreakdown(scope Scope) ([]domain.BreakdownRecord, error)
	RegionBreakdown(scope Scope) ([]domain.BreakdownRecord, error)
	PlacementBreakdown(scope Scope) ([]domain.BreakdownRecord, error)
	Creatives(scope Scope) ([]domain.CreativeRecord, error)
}

// Request descreve uma geração de relatório solicitada pelo usuário.
type Request struct {
	AccountID       string               `json:"account_id"`
	Title           string               `json:"title"`
	Subtitle        string               `json:"subtitle"`
	Profile         string               `json:"profile"`
	HideCost        bool                 `json:"hide_cost"`
	SpendMultiplier float64              `json:"spend_multiplier"`
	ComparePrevious bool                 `json:"compare_previous"`
	DateSelection   domain.DateSelection `json:"date_selection"`
	CampaignIDs     []string             `json:"campaign_ids,omitempty"`
}

// bundle reúne o resultado das buscas paralelas de uma geração. Cada coleção
// vale vazio quando a busca correspondente falhou; a composição segue com as
// demais seções.
type bundle struct {
	account    domain.InsightRecord
	accountOK  bool
	previous   *domain.InsightRecord
	daily      []domain.DailyInsight
	campaigns  []domain.CampaignSummary
	ageGender  []domain.BreakdownRecord
	regions    []domain.BreakdownRecord
	placements []domain.BreakdownRecord
	creatives  []domain.CreativeRecord
}
