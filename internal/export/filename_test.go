package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trafficlab/ad-report-api/internal/domain"
)

func TestFilename(t *testing.T) {
	rng := domain.DateRange{Since: "2024-01-01", Until: "2024-01-31"}

	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "Título simples",
			title:    "Relatorio Mensal",
			expected: "Relatorio Mensal - 2024-01-01 to 2024-01-31.pdf",
		},
		{
			name:     "Caracteres fora do conjunto seguro são removidos",
			title:    "Q4 Report #1!",
			expected: "Q4 Report 1 - 2024-01-01 to 2024-01-31.pdf",
		},
		{
			name:     "Hífen e sublinhado são preservados",
			title:    "loja_sul-2024",
			expected: "loja_sul-2024 - 2024-01-01 to 2024-01-31.pdf",
		},
		{
			name:     "Título vazio vira Report",
			title:    "",
			expected: "Report - 2024-01-01 to 2024-01-31.pdf",
		},
		{
			name:     "Título só de caracteres inválidos vira Report",
			title:    "@#$%&*",
			expected: "Report - 2024-01-01 to 2024-01-31.pdf",
		},
		{
			name:     "Espaços nas bordas são aparados após a limpeza",
			title:    "  !Promoção!  ",
			expected: "Promoo - 2024-01-01 to 2024-01-31.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Filename(tt.title, rng))
		})
	}
}
