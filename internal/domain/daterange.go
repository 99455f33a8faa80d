package domain

import (
	"fmt"
	"time"
)

// Presets de seleção de datas reconhecidos pela API.
const (
	PresetToday     = "today"
	PresetYesterday = "yesterday"
	PresetLast7     = "last_7d"
	PresetLast14    = "last_14d"
	PresetLast30    = "last_30d"
	PresetThisMonth = "this_month"
	PresetLastMonth = "last_month"
	PresetCustom    = "custom"
)

// DateSelection é a seleção de período enviada pelo cliente: um preset ou
// datas explícitas quando o preset é "custom".
type DateSelection struct {
	Preset    string `json:"preset"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// DateRange é o período resolvido em datas ISO concretas.
type DateRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

// Resolve converte a seleção em um intervalo concreto relativo a now.
func (s DateSelection) Resolve(now time.Time) (DateRange, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch s.Preset {
	case PresetToday, "":
		return rangeOf(today, today), nil
	case PresetYesterday:
		y := today.AddDate(0, 0, -1)
		return rangeOf(y, y), nil
	case PresetLast7:
		return rangeOf(today.AddDate(0, 0, -6), today), nil
	case PresetLast14:
		return rangeOf(today.AddDate(0, 0, -13), today), nil
	case PresetLast30:
		return rangeOf(today.AddDate(0, 0, -29), today), nil
	case PresetThisMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return rangeOf(first, today), nil
	case PresetLastMonth:
		firstOfThis := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		first := firstOfThis.AddDate(0, -1, 0)
		last := firstOfThis.AddDate(0, 0, -1)
		return rangeOf(first, last), nil
	case PresetCustom:
		start, err := time.Parse(time.DateOnly, s.StartDate)
		if err != nil {
			return DateRange{}, fmt.Errorf("data inicial inválida: %q", s.StartDate)
		}

		end, err := time.Parse(time.DateOnly, s.EndDate)
		if err != nil {
			return DateRange{}, fmt.Errorf("data final inválida: %q", s.EndDate)
		}

		if start.After(end) {
			return DateRange{}, fmt.Errorf("a data inicial não pode ser posterior à final")
		}

		return rangeOf(start, end), nil
	}

	return DateRange{}, fmt.Errorf("preset de datas desconhecido: %q", s.Preset)
}

// Previous devolve o período comparável imediatamente anterior, com a mesma
// duração do período atual.
func (r DateRange) Previous() DateRange {
	since, err := time.Parse(time.DateOnly, r.Since)
	if err != nil {
		return DateRange{}
	}

	until, err := time.Parse(time.DateOnly, r.Until)
	if err != nil {
		return DateRange{}
	}

	days := int(until.Sub(since).Hours()/24) + 1

	return rangeOf(since.AddDate(0, 0, -days), until.AddDate(0, 0, -days))
}

// Days devolve a quantidade de dias do período (0 para períodos inválidos).
func (r DateRange) Days() int {
	since, err := time.Parse(time.DateOnly, r.Since)
	if err != nil {
		return 0
	}

	until, err := time.Parse(time.DateOnly, r.Until)
	if err != nil || until.Before(since) {
		return 0
	}

	return int(until.Sub(since).Hours()/24) + 1
}

func rangeOf(since, until time.Time) DateRange {
	return DateRange{
		Since: since.Format(time.DateOnly),
		Until: until.Format(time.DateOnly),
	}
}
