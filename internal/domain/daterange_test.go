package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateSelectionResolve(t *testing.T) {
	// Quinta-feira, meio do mês, com horário no meio do dia.
	now := time.Date(2024, 3, 14, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		selection DateSelection
		expected  DateRange
		wantErr   bool
	}{
		{
			name:      "Hoje",
			selection: DateSelection{Preset: PresetToday},
			expected:  DateRange{Since: "2024-03-14", Until: "2024-03-14"},
		},
		{
			name:      "Preset vazio cai em hoje",
			selection: DateSelection{},
			expected:  DateRange{Since: "2024-03-14", Until: "2024-03-14"},
		},
		{
			name:      "Ontem",
			selection: DateSelection{Preset: PresetYesterday},
			expected:  DateRange{Since: "2024-03-13", Until: "2024-03-13"},
		},
		{
			name:      "Últimos 7 dias incluem hoje",
			selection: DateSelection{Preset: PresetLast7},
			expected:  DateRange{Since: "2024-03-08", Until: "2024-03-14"},
		},
		{
			name:      "Últimos 30 dias",
			selection: DateSelection{Preset: PresetLast30},
			expected:  DateRange{Since: "2024-02-14", Until: "2024-03-14"},
		},
		{
			name:      "Este mês começa no dia primeiro",
			selection: DateSelection{Preset: PresetThisMonth},
			expected:  DateRange{Since: "2024-03-01", Until: "2024-03-14"},
		},
		{
			name:      "Mês passado é o mês-calendário completo",
			selection: DateSelection{Preset: PresetLastMonth},
			expected:  DateRange{Since: "2024-02-01", Until: "2024-02-29"},
		},
		{
			name: "Período customizado válido",
			selection: DateSelection{
				Preset:    PresetCustom,
				StartDate: "2024-01-01",
				EndDate:   "2024-01-31",
			},
			expected: DateRange{Since: "2024-01-01", Until: "2024-01-31"},
		},
		{
			name: "Período customizado invertido é rejeitado",
			selection: DateSelection{
				Preset:    PresetCustom,
				StartDate: "2024-02-10",
				EndDate:   "2024-02-01",
			},
			wantErr: true,
		},
		{
			name: "Data customizada malformada é rejeitada",
			selection: DateSelection{
				Preset:    PresetCustom,
				StartDate: "01/01/2024",
				EndDate:   "2024-01-31",
			},
			wantErr: true,
		},
		{
			name:      "Preset desconhecido é rejeitado",
			selection: DateSelection{Preset: "fortnight"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := tt.selection.Resolve(now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, rng)
		})
	}
}

func TestDateRangePrevious(t *testing.T) {
	tests := []struct {
		name     string
		rng      DateRange
		expected DateRange
	}{
		{
			name:     "Semana anterior imediatamente contígua",
			rng:      DateRange{Since: "2024-03-08", Until: "2024-03-14"},
			expected: DateRange{Since: "2024-03-01", Until: "2024-03-07"},
		},
		{
			name:     "Dia único volta um dia",
			rng:      DateRange{Since: "2024-03-14", Until: "2024-03-14"},
			expected: DateRange{Since: "2024-03-13", Until: "2024-03-13"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rng.Previous())
		})
	}
}

func TestDateRangeDays(t *testing.T) {
	assert.Equal(t, 7, DateRange{Since: "2024-03-08", Until: "2024-03-14"}.Days())
	assert.Equal(t, 1, DateRange{Since: "2024-03-14", Until: "2024-03-14"}.Days())
	assert.Equal(t, 0, DateRange{Since: "2024-03-14", Until: "2024-03-01"}.Days())
	assert.Equal(t, 0, DateRange{Since: "invalida", Until: "2024-03-01"}.Days())
}

func TestPolicyContextNormalized(t *testing.T) {
	assert.Equal(t, 1.0, PolicyContext{SpendMultiplier: 0}.Normalized().SpendMultiplier)
	assert.Equal(t, 1.0, PolicyContext{SpendMultiplier: -2}.Normalized().SpendMultiplier)
	assert.Equal(t, 1.2, PolicyContext{SpendMultiplier: 1.2}.Normalized().SpendMultiplier)
}
