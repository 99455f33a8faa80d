package render

import (
	"fmt"
	"image"
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/trafficlab/ad-report-api/internal/domain"
)

// DefaultWidth é a largura lógica fixa da superfície, em pixels. O documento
// é sempre renderizado nessa largura, independentemente de qualquer viewport,
// para que a saída seja determinística entre ambientes.
const DefaultWidth = 1100

// Dimensões fixas do layout.
const (
	pageMargin    = 40
	sectionGap    = 28
	headerH       = 96
	cardRowH      = 120
	chartH        = 320
	funnelH       = 240
	demoH         = 260
	placementH    = 260
	tableRowH     = 26
	tableHeadH    = 28
	sectionTitleH = 24
)

// Surface é a realização visual de um ReportDocument; existe apenas para ser
// capturada.
type Surface struct {
	Image image.Image
}

// Width devolve a largura da superfície em pixels.
func (s *Surface) Width() int {
	if s.Image == nil {
		return 0
	}

	return s.Image.Bounds().Dx()
}

// Height devolve a altura da superfície em pixels.
func (s *Surface) Height() int {
	if s.Image == nil {
		return 0
	}

	return s.Image.Bounds().Dy()
}

// Render desenha o documento composto em uma superfície de largura fixa.
func Render(doc *domain.ReportDocument, width int) (*Surface, error) {
	if doc == nil {
		return nil, errors.New("documento nulo")
	}

	if width <= 0 {
		width = DefaultWidth
	}

	height := headerH + pageMargin*2
	for i := range doc.Sections {
		height += sectionHeight(&doc.Sections[i]) + sectionGap
	}

	dc := gg.NewContext(width, height)
	dc.SetHexColor("#FFFFFF")
	dc.Clear()

	y := float64(pageMargin)
	y = drawHeader(dc, doc, y, width)

	for i := range doc.Sections {
		section := &doc.Sections[i]
		drawSection(dc, section, y, width)
		y += float64(sectionHeight(section) + sectionGap)
	}

	return &Surface{Image: dc.Image()}, nil
}

func sectionHeight(section *domain.Section) int {
	switch section.Kind {
	case domain.SectionStatCards:
		return cardRowH
	case domain.SectionTrendChart:
		return sectionTitleH + chartH
	case domain.SectionFunnel:
		return sectionTitleH + funnelH
	case domain.SectionDemographics:
		return sectionTitleH + demoH
	case domain.SectionPlacements:
		rows := 0
		if section.Placements != nil {
			rows = len(section.Placements.Ledger)
		}

		return sectionTitleH + placementH + tableHeadH + rows*tableRowH
	case domain.SectionCampaigns:
		rows := 0
		if section.Campaigns != nil {
			rows = len(section.Campaigns.Rows)
		}

		return sectionTitleH + tableHeadH + rows*tableRowH
	case domain.SectionCreatives:
		rows := 0
		if section.Creatives != nil {
			rows = len(section.Creatives.Items)
		}

		return sectionTitleH + tableHeadH + rows*tableRowH
	}

	return 0
}

func drawHeader(dc *gg.Context, doc *domain.ReportDocument, y float64, width int) float64 {
	dc.SetHexColor("#1E272E")
	dc.DrawString(doc.Title, pageMargin, y+24)

	if doc.Subtitle != "" {
		dc.SetHexColor("#576574")
		dc.DrawString(doc.Subtitle, pageMargin, y+46)
	}

	dc.SetHexColor("#8395A7")
	period := fmt.Sprintf("%s a %s", doc.Range.Since, doc.Range.Until)
	dc.DrawStringAnchored(period, float64(width-pageMargin), y+24, 1, 0)

	dc.SetHexColor("#D2DAE2")
	dc.DrawLine(pageMargin, y+float64(headerH)-12, float64(width-pageMargin), y+float64(headerH)-12)
	dc.Stroke()

	return y + float64(headerH)
}

func drawSection(dc *gg.Context, section *domain.Section, y float64, width int) {
	switch section.Kind {
	case domain.SectionStatCards:
		drawStatCards(dc, section.StatCards, y, width)
	case domain.SectionTrendChart:
		drawTrend(dc, section.Trend, y, width)
	case domain.SectionFunnel:
		drawFunnel(dc, section.Funnel, y, width)
	case domain.SectionDemographics:
		drawDemographics(dc, section.Demographics, y, width)
	case domain.SectionPlacements:
		drawPlacements(dc, section.Placements, y, width)
	case domain.SectionCampaigns:
		drawCampaigns(dc, section.Campaigns, y, width)
	case domain.SectionCreatives:
		drawCreatives(dc, section.Creatives, y, width)
	}
}

func drawSectionTitle(dc *gg.Context, title string, y float64) {
	dc.SetHexColor("#1E272E")
	dc.DrawString(title, pageMargin, y+14)
}

func formatValue(value float64, format string) string {
	switch format {
	case "currency":
		return fmt.Sprintf("R$ %.2f", value)
	case "percent":
		return fmt.Sprintf("%.2f%%", value)
	case "multiplier":
		return fmt.Sprintf("%.2fx", value)
	case "decimal":
		return fmt.Sprintf("%.2f", value)
	}

	return fmt.Sprintf("%.0f", value)
}

func drawStatCards(dc *gg.Context, row *domain.StatCardRow, y float64, width int) {
	if row == nil || len(row.Cards) == 0 {
		return
	}

	innerW := float64(width - pageMargin*2)
	gap := 16.0
	cardW := (innerW - gap*float64(len(row.Cards)-1)) / float64(len(row.Cards))

	for i, card := range row.Cards {
		x := float64(pageMargin) + float64(i)*(cardW+gap)

		dc.SetHexColor("#F1F2F6")
		dc.DrawRoundedRectangle(x, y, cardW, cardRowH-16, 8)
		dc.Fill()

		dc.SetHexColor(card.Color)
		dc.DrawRectangle(x, y, 4, cardRowH-16)
		dc.Fill()

		dc.SetHexColor("#576574")
		dc.DrawString(card.Label, x+16, y+24)

		dc.SetHexColor("#1E272E")
		dc.DrawString(formatValue(card.Value, card.Format), x+16, y+52)

		if card.Sentiment != domain.TrendNeutral {
			color := "#10AC84"
			if card.Sentiment == domain.TrendBad {
				color = "#EE5253"
			}

			dc.SetHexColor(color)
			dc.DrawString(fmt.Sprintf("%+.2f%%", card.TrendPct), x+16, y+78)
		}
	}
}

func drawTrend(dc *gg.Context, trend *domain.TrendChart, y float64, width int) {
	if trend == nil {
		return
	}

	drawSectionTitle(dc, fmt.Sprintf("%s × %s", trend.BarLabel, trend.LineLabel), y)
	chartY := y + sectionTitleH
	chartW := width - pageMargin*2

	if !degenerate(trend.Bars) {
		img, err := trendChartImage(trend, chartW, chartH)
		if err == nil {
			dc.DrawImage(img, pageMargin, int(chartY))
			return
		}
	}

	drawBarsFallback(dc, trend.Labels, trend.Bars, float64(pageMargin), chartY, float64(chartW), chartH)
}

// drawBarsFallback desenha barras simples quando a série é degenerada demais
// para o motor de gráficos (um ponto só, ou amplitude zero).
func drawBarsFallback(dc *gg.Context, labels []string, values []float64, x, y, w, h float64) {
	if len(values) == 0 {
		return
	}

	var max float64
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	gap := 8.0
	barW := (w - gap*float64(len(values)-1)) / float64(len(values))

	for i, v := range values {
		barH := h - 32
		if max > 0 {
			barH = (h - 32) * (v / max)
		}

		bx := x + float64(i)*(barW+gap)

		dc.SetHexColor("#" + barSeriesHex)
		dc.DrawRectangle(bx, y+(h-32)-barH, barW, barH)
		dc.Fill()

		if i < len(labels) {
			dc.SetHexColor("#8395A7")
			dc.DrawStringAnchored(labels[i], bx+barW/2, y+h-12, 0.5, 0)
		}
	}
}

func drawFunnel(dc *gg.Context, funnel *domain.FunnelChart, y float64, width int) {
	if funnel == nil || len(funnel.Steps) == 0 {
		return
	}

	drawSectionTitle(dc, "Funil de conversão", y)

	innerW := float64(width - pageMargin*2)
	stepH := (funnelH - 24) / len(funnel.Steps)

	for i, step := range funnel.Steps {
		stepW := innerW * step.Pct / 100
		if stepW < 80 {
			stepW = 80
		}

		x := float64(pageMargin) + (innerW-stepW)/2
		sy := y + sectionTitleH + float64(i*stepH)

		dc.SetHexColor("#2E86DE")
		dc.DrawRoundedRectangle(x, sy+4, stepW, float64(stepH-8), 4)
		dc.Fill()

		dc.SetHexColor("#FFFFFF")
		label := fmt.Sprintf("%s: %s (%.1f%%)", step.Label, formatValue(step.Value, "number"), step.Pct)
		dc.DrawStringAnchored(label, float64(pageMargin)+innerW/2, sy+float64(stepH)/2, 0.5, 0.4)
	}
}

func drawDemographics(dc *gg.Context, pair *domain.DemographicsPair, y float64, width int) {
	if pair == nil {
		return
	}

	drawSectionTitle(dc, fmt.Sprintf("Demografia (%s)", pair.MetricLabel), y)

	innerW := float64(width - pageMargin*2)
	halfW := innerW/2 - 12
	baseY := y + sectionTitleH

	// Pivô idade×gênero em barras horizontais pareadas.
	if len(pair.AgeGender) > 0 {
		var max float64
		for _, row := range pair.AgeGender {
			if row.Male > max {
				max = row.Male
			}
			if row.Female > max {
				max = row.Female
			}
		}

		rowH := (demoH - 16) / len(pair.AgeGender)
		for i, row := range pair.AgeGender {
			ry := baseY + float64(i*rowH)

			dc.SetHexColor("#576574")
			dc.DrawString(row.Bracket, pageMargin, ry+14)

			barX := float64(pageMargin) + 64
			barMax := halfW - 72

			maleW, femaleW := 0.0, 0.0
			if max > 0 {
				maleW = barMax * row.Male / max
				femaleW = barMax * row.Female / max
			}

			dc.SetHexColor("#2E86DE")
			dc.DrawRectangle(barX, ry+4, maleW, float64(rowH)/2-4)
			dc.Fill()

			dc.SetHexColor("#F368E0")
			dc.DrawRectangle(barX, ry+4+float64(rowH)/2-2, femaleW, float64(rowH)/2-4)
			dc.Fill()
		}
	}

	// Ranking de regiões à direita.
	if len(pair.Regions) > 0 {
		regionX := pageMargin + int(halfW) + 24
		img, err := rankBarChartImage(pair.Regions, int(halfW), demoH-16)
		if err == nil {
			dc.DrawImage(img, regionX, int(baseY))
		} else {
			for i, region := range pair.Regions {
				dc.SetHexColor("#576574")
				line := fmt.Sprintf("%d. %s — %s", i+1, region.Label, formatValue(region.Value, "number"))
				dc.DrawString(line, float64(regionX), baseY+float64(i*tableRowH)+14)
			}
		}
	}
}

func drawPlacements(dc *gg.Context, panel *domain.PlacementPanel, y float64, width int) {
	if panel == nil {
		return
	}

	drawSectionTitle(dc, "Posicionamentos", y)

	chartW := width - pageMargin*2
	chartY := y + sectionTitleH

	img, err := rankBarChartImage(panel.Chart, chartW, placementH-8)
	if err == nil {
		dc.DrawImage(img, pageMargin, int(chartY))
	} else {
		labels := make([]string, 0, len(panel.Chart))
		values := make([]float64, 0, len(panel.Chart))
		for _, entry := range panel.Chart {
			labels = append(labels, entry.Label)
			values = append(values, entry.Value)
		}

		drawBarsFallback(dc, labels, values, float64(pageMargin), chartY, float64(chartW), placementH-8)
	}

	tableY := chartY + placementH

	headers := []string{"Posicionamento", "Impressões", "Cliques", "Resultados", "Investimento"}
	rows := make([][]string, 0, len(panel.Ledger))
	for _, row := range panel.Ledger {
		spend := "—"
		if row.Spend != nil {
			spend = formatValue(*row.Spend, "currency")
		}

		rows = append(rows, []string{
			row.Label,
			formatValue(row.Impressions, "number"),
			formatValue(row.Clicks, "number"),
			formatValue(row.Results, "number"),
			spend,
		})
	}

	drawTable(dc, headers, rows, tableY, width)
}

func drawCampaigns(dc *gg.Context, ledger *domain.CampaignLedger, y float64, width int) {
	if ledger == nil {
		return
	}

	drawSectionTitle(dc, "Campanhas", y)

	headers := []string{"Campanha", "Impressões", "Cliques", ledger.ResultLabel, "Investimento", "Custo/resultado"}
	rows := make([][]string, 0, len(ledger.Rows))
	for _, row := range ledger.Rows {
		spend, cpr := "—", "—"
		if row.Spend != nil {
			spend = formatValue(*row.Spend, "currency")
		}
		if row.CostPerResult != nil {
			cpr = formatValue(*row.CostPerResult, "currency")
		}

		rows = append(rows, []string{
			row.Name,
			formatValue(row.Impressions, "number"),
			formatValue(row.Clicks, "number"),
			formatValue(row.Results, "number"),
			spend,
			cpr,
		})
	}

	drawTable(dc, headers, rows, y+sectionTitleH, width)
}

func drawCreatives(dc *gg.Context, grid *domain.CreativeGrid, y float64, width int) {
	if grid == nil {
		return
	}

	drawSectionTitle(dc, "Melhores criativos", y)

	headers := []string{"Criativo", "Impressões", "Cliques", "Compras", "Investimento"}
	rows := make([][]string, 0, len(grid.Items))
	for _, item := range grid.Items {
		spend := "—"
		if item.Spend != nil {
			spend = formatValue(*item.Spend, "currency")
		}

		rows = append(rows, []string{
			item.Name,
			formatValue(item.Impressions, "number"),
			formatValue(item.Clicks, "number"),
			formatValue(item.Purchases, "number"),
			spend,
		})
	}

	drawTable(dc, headers, rows, y+sectionTitleH, width)
}

func drawTable(dc *gg.Context, headers []string, rows [][]string, y float64, width int) {
	innerW := float64(width - pageMargin*2)
	colW := innerW / float64(len(headers))

	dc.SetHexColor("#F1F2F6")
	dc.DrawRectangle(pageMargin, y, innerW, tableHeadH)
	dc.Fill()

	dc.SetHexColor("#576574")
	for i, header := range headers {
		dc.DrawString(header, float64(pageMargin)+float64(i)*colW+8, y+18)
	}

	for r, row := range rows {
		ry := y + tableHeadH + float64(r*tableRowH)

		if r%2 == 1 {
			dc.SetHexColor("#FAFBFC")
			dc.DrawRectangle(pageMargin, ry, innerW, tableRowH)
			dc.Fill()
		}

		dc.SetHexColor("#1E272E")
		for c, cell := range row {
			dc.DrawString(truncate(cell, int(colW/7)), float64(pageMargin)+float64(c)*colW+8, ry+17)
		}
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if max < 4 || len(runes) <= max {
		return s
	}

	return string(runes[:max-3]) + "..."
}
