package domain

// PolicyContext carrega as políticas transversais de uma geração de
// relatório. É calculado uma única vez por requisição e passado por valor em
// toda derivação; nunca é alterado no meio do pipeline.
type PolicyContext struct {
	SpendMultiplier float64 `json:"spend_multiplier"`
	HideCost        bool    `json:"hide_cost"`
	SelectedProfile string  `json:"selected_profile"`
	ComparePrevious bool    `json:"compare_previous"`
}

// Normalized devolve uma cópia com os valores saneados: multiplicador não
// positivo vira 1 e perfil vazio cai no perfil padrão resolvido pelo registro.
func (p PolicyContext) Normalized() PolicyContext {
	if p.SpendMultiplier <= 0 {
		p.SpendMultiplier = 1
	}

	return p
}
