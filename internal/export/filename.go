package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/trafficlab/ad-report-api/internal/domain"
)

var filenameUnsafe = regexp.MustCompile(`[^A-Za-z0-9-_ ]+`)

// Filename monta o nome do arquivo PDF a partir do título e do período,
// removendo caracteres fora de [A-Za-z0-9-_ ]. Título vazio após a limpeza
// vira "Report".
func Filename(title string, rng domain.DateRange) string {
	clean := strings.TrimSpace(filenameUnsafe.ReplaceAllString(title, ""))
	if clean == "" {
		clean = "Report"
	}

	return fmt.Sprintf("%s - %s to %s.pdf", clean, rng.Since, rng.Until)
}
