package export

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/trafficlab/ad-report-api/internal/domain"
)

// pxToMM converte pixels CSS (96 por polegada) em milímetros. O fator é
// dividido por dois porque a captura é feita com densidade dobrada: a página
// deve ter o tamanho lógico, não o físico do raster.
const pxToMM = 25.4 / 96 / 2

// Metadata descreve o documento a empacotar.
type Metadata struct {
	Title    string
	Range    domain.DateRange
	MarginMM float64
}

// Artifact é o PDF final pronto para download.
type Artifact struct {
	Filename string
	Data     []byte
}

// Package monta um PDF de página única dimensionada a partir do raster, com
// orientação decidida pela proporção da imagem.
func Package(raster *Raster, meta Metadata) (*Artifact, error) {
	if raster == nil || len(raster.Data) == 0 {
		return nil, errors.New("raster vazio, nada a empacotar")
	}

	pageW := float64(raster.Width) * pxToMM
	pageH := float64(raster.Height) * pxToMM

	// fpdf interpreta Size como (menor, maior) e aplica a orientação por
	// cima; passar as dimensões já orientadas duplicaria a troca.
	orientation := "P"
	sizeW, sizeH := pageW, pageH
	if pageW > pageH {
		orientation = "L"
		sizeW, sizeH = pageH, pageW
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: sizeW, Ht: sizeH},
	})
	pdf.SetTitle(meta.Title, true)
	pdf.SetMargins(meta.MarginMM, meta.MarginMM, meta.MarginMM)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.RegisterImageOptionsReader(
		"report",
		fpdf.ImageOptions{ImageType: "JPG"},
		bytes.NewReader(raster.Data),
	)
	pdf.ImageOptions(
		"report",
		meta.MarginMM,
		meta.MarginMM,
		pageW-meta.MarginMM*2,
		pageH-meta.MarginMM*2,
		false,
		fpdf.ImageOptions{ImageType: "JPG"},
		0,
		"",
	)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "falha ao gerar PDF")
	}

	return &Artifact{
		Filename: Filename(meta.Title, meta.Range),
		Data:     buf.Bytes(),
	}, nil
}
