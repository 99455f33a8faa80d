package domain

import (
	"strconv"
)

// MetricID identifica uma métrica extraível de um InsightRecord.
type MetricID string

const (
	MetricSpend          MetricID = "spend"
	MetricImpressions    MetricID = "impressions"
	MetricReach          MetricID = "reach"
	MetricClicks         MetricID = "clicks"
	MetricCTR            MetricID = "ctr"
	MetricCPC            MetricID = "cpc"
	MetricCPM            MetricID = "cpm"
	MetricFrequency      MetricID = "frequency"
	MetricPurchases      MetricID = "purchases"
	MetricLeads          MetricID = "leads"
	MetricMessages       MetricID = "messages"
	MetricPostEngagement MetricID = "post_engagement"
	MetricRevenue        MetricID = "revenue"
	MetricROAS           MetricID = "roas"
	MetricCPA            MetricID = "cpa"
)

// actionAliases mapeia cada métrica de contagem para os action_types que a
// API usa para representá-la, em ordem fixa de prioridade. A extração percorre
// a lista e devolve o primeiro alias presente; nenhum alias presente vale 0.
var actionAliases = map[MetricID][]string{
	MetricPurchases: {
		"purchase",
		"omni_purchase",
		"offsite_conversion.fb_pixel_purchase",
	},
	MetricLeads: {
		"lead",
		"offsite_conversion.fb_pixel_lead",
		"onsite_conversion.lead_grouped",
	},
	MetricMessages: {
		"onsite_conversion.messaging_conversation_started_7d",
		"onsite_conversion.messaging_first_reply",
		"onsite_conversion.total_messaging_connection",
	},
	MetricPostEngagement: {
		"post_engagement",
		"page_engagement",
		"post_reaction",
	},
}

// revenueAliases são os action_types monetários (action_values) que compõem a
// receita atribuída a compras.
var revenueAliases = []string{
	"purchase",
	"omni_purchase",
	"offsite_conversion.fb_pixel_purchase",
}

// Extract lê uma métrica de um registro bruto. Nunca falha: campo ausente,
// não numérico ou alias não encontrado valem 0; razões com denominador zero
// valem 0. Chamadas repetidas sobre o mesmo registro devolvem o mesmo valor.
func Extract(r InsightRecord, id MetricID) float64 {
	switch id {
	case MetricSpend:
		return parseFloat(r.Spend)
	case MetricImpressions:
		return parseCount(r.Impressions)
	case MetricReach:
		return parseCount(r.Reach)
	case MetricClicks:
		return parseCount(r.Clicks)
	case MetricCTR:
		// CTR já vem calculado no registro, em porcentagem.
		return parseFloat(r.CTR)
	case MetricCPC:
		return parseFloat(r.CPC)
	case MetricCPM:
		return parseFloat(r.CPM)
	case MetricFrequency:
		return parseFloat(r.Frequency)
	case MetricPurchases, MetricLeads, MetricMessages, MetricPostEngagement:
		return actionCount(r.Actions, actionAliases[id])
	case MetricRevenue:
		return actionValue(r.ActionValues, revenueAliases)
	case MetricROAS:
		return safeRatio(Extract(r, MetricRevenue), parseFloat(r.Spend))
	case MetricCPA:
		// A derivação com perfil ativo usa a conversão do perfil; aqui a
		// conversão padrão é compra.
		return safeRatio(parseFloat(r.Spend), Extract(r, MetricPurchases))
	}

	return 0
}

// actionCount devolve a contagem do primeiro alias presente na lista, como
// inteiro não negativo.
func actionCount(actions []Action, aliases []string) float64 {
	for _, alias := range aliases {
		for i := range actions {
			if actions[i].ActionType != alias {
				continue
			}

			value, err := strconv.Atoi(actions[i].Value)
			if err != nil || value < 0 {
				return 0
			}

			return float64(value)
		}
	}

	return 0
}

// actionValue devolve o valor monetário do primeiro alias presente na lista.
func actionValue(values []Action, aliases []string) float64 {
	for _, alias := range aliases {
		for i := range values {
			if values[i].ActionType != alias {
				continue
			}

			return parseFloat(values[i].Value)
		}
	}

	return 0
}

// safeRatio divide protegendo contra denominador zero: o resultado é 0, nunca
// NaN ou infinito.
func safeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return value
}

func parseCount(s string) float64 {
	if s == "" {
		return 0
	}

	value, err := strconv.Atoi(s)
	if err != nil || value < 0 {
		return 0
	}

	return float64(value)
}
