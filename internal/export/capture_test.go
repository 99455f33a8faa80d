package export

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trafficlab/ad-report-api/internal/render"
)

func testSurface(w, h int) *render.Surface {
	return &render.Surface{Image: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func TestCapture(t *testing.T) {
	t.Run("Densidade multiplica as dimensões do raster", func(t *testing.T) {
		raster, err := Capture(testSurface(100, 60), CaptureOptions{Density: 2, Quality: 80})

		assert.NoError(t, err)
		assert.Equal(t, 200, raster.Width)
		assert.Equal(t, 120, raster.Height)
	})

	t.Run("Densidade não positiva cai em 1", func(t *testing.T) {
		raster, err := Capture(testSurface(100, 60), CaptureOptions{})

		assert.NoError(t, err)
		assert.Equal(t, 100, raster.Width)
		assert.Equal(t, 60, raster.Height)
	})

	t.Run("Saída é um JPEG decodificável e opaco", func(t *testing.T) {
		raster, err := Capture(testSurface(40, 40), CaptureOptions{Quality: 90, Background: "#FF0000"})
		assert.NoError(t, err)

		img, err := jpeg.Decode(bytes.NewReader(raster.Data))
		assert.NoError(t, err)
		assert.Equal(t, 40, img.Bounds().Dx())

		// A superfície de teste é transparente; o fundo deve aparecer.
		r, _, _, a := img.At(5, 5).RGBA()
		assert.Equal(t, uint32(0xffff), a, "JPEG nunca tem transparência")
		assert.Greater(t, r, uint32(0xf000), "fundo vermelho preenchido antes do desenho")
	})

	t.Run("Superfície vazia é rejeitada", func(t *testing.T) {
		_, err := Capture(nil, CaptureOptions{})
		assert.Error(t, err)

		_, err = Capture(&render.Surface{}, CaptureOptions{})
		assert.Error(t, err)

		_, err = Capture(testSurface(0, 0), CaptureOptions{})
		assert.Error(t, err)
	})
}
