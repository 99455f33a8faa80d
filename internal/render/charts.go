package render

import (
	"bytes"
	"image"
	"strings"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/trafficlab/ad-report-api/internal/domain"
)

// Cores fixas das séries, alinhadas com a paleta dos cartões.
const (
	barSeriesHex  = "2E86DE"
	lineSeriesHex = "FF9F43"
	rankBarHex    = "10AC84"
)

func seriesColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// degenerate informa se a série não tem amplitude suficiente para o motor de
// gráficos (menos de dois pontos ou faixa de valores zerada).
func degenerate(values []float64) bool {
	if len(values) < 2 {
		return true
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return max == min
}

// trendChartImage desenha o gráfico principal de tendência: barras como área
// preenchida no eixo primário e a linha no eixo secundário.
func trendChartImage(t *domain.TrendChart, width, height int) (image.Image, error) {
	xs := make([]float64, len(t.Bars))
	for i := range xs {
		xs[i] = float64(i)
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 16, Left: 12, Right: 12, Bottom: 8},
		},
		XAxis: chart.XAxis{Style: chart.Style{Hidden: true}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    t.BarLabel,
				XValues: xs,
				YValues: t.Bars,
				Style: chart.Style{
					StrokeColor: seriesColor(barSeriesHex),
					StrokeWidth: 1,
					FillColor:   seriesColor(barSeriesHex).WithAlpha(90),
				},
			},
			chart.ContinuousSeries{
				Name:    t.LineLabel,
				XValues: xs,
				YValues: t.Line,
				YAxis:   chart.YAxisSecondary,
				Style: chart.Style{
					StrokeColor: seriesColor(lineSeriesHex),
					StrokeWidth: 2.5,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "erro ao renderizar o gráfico de tendência")
	}

	img, _, err := image.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o gráfico de tendência")
	}

	return img, nil
}

// rankBarChartImage desenha um gráfico de barras verticais para um ranking.
func rankBarChartImage(entries []domain.RankedEntry, width, height int) (image.Image, error) {
	bars := make([]chart.Value, 0, len(entries))

	var max float64
	for _, entry := range entries {
		if entry.Value > max {
			max = entry.Value
		}

		bars = append(bars, chart.Value{
			Label: entry.Label,
			Value: entry.Value,
			Style: chart.Style{
				StrokeWidth: 0,
				FillColor:   seriesColor(rankBarHex),
			},
		})
	}

	if len(bars) == 0 || max == 0 {
		return nil, errors.New("ranking sem valores para desenhar")
	}

	graph := chart.BarChart{
		Width:    width,
		Height:   height,
		BarWidth: 48,
		Background: chart.Style{
			Padding: chart.Box{Top: 16, Left: 12, Right: 12, Bottom: 8},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "erro ao renderizar o gráfico de barras")
	}

	img, _, err := image.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o gráfico de barras")
	}

	return img, nil
}
