package export

import (
	"bytes"
	"image/jpeg"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/trafficlab/ad-report-api/internal/render"
)

// CaptureOptions parametriza a rasterização da superfície.
type CaptureOptions struct {
	// Density multiplica as dimensões lógicas na captura. 2.0 dobra a
	// resolução sem alterar o layout.
	Density float64
	// Quality é a qualidade JPEG (1-100).
	Quality int
	// Background preenche o fundo antes do desenho, já que JPEG não tem
	// canal alfa. Hex com "#".
	Background string
}

// Raster é a imagem capturada da superfície, já codificada.
type Raster struct {
	Data   []byte
	Width  int
	Height int
}

// Capture rasteriza a superfície em JPEG aplicando densidade e fundo opaco.
func Capture(surface *render.Surface, opts CaptureOptions) (*Raster, error) {
	if surface == nil || surface.Width() == 0 || surface.Height() == 0 {
		return nil, errors.New("superfície vazia, nada a capturar")
	}

	density := opts.Density
	if density <= 0 {
		density = 1
	}

	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = 90
	}

	background := opts.Background
	if background == "" {
		background = "#FFFFFF"
	}

	width := int(float64(surface.Width()) * density)
	height := int(float64(surface.Height()) * density)

	dc := gg.NewContext(width, height)
	dc.SetHexColor(background)
	dc.Clear()
	dc.Scale(density, density)
	dc.DrawImage(surface.Image, 0, 0)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dc.Image(), &jpeg.Options{Quality: quality}); err != nil {
		return nil, errors.Wrap(err, "falha ao codificar JPEG")
	}

	return &Raster{Data: buf.Bytes(), Width: width, Height: height}, nil
}
