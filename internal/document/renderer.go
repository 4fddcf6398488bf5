// Package document turns card form data into a fixed-layout PDF. Rendering is
// deterministic: identical fields and title yield byte-identical output.
package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-pdf/fpdf"
)

// Layout constants. These are configuration of the document, not parameters.
const (
	fontFamily = "Helvetica"

	headingText = "Digital Card"

	headingSize  = 22.0
	subtitleSize = 14.0
	bodySize     = 11.0
	footerSize   = 9.0

	marginMM     = 18.0
	lineHeightMM = 7.5
)

// metadataDate pins the PDF creation/modification timestamps so repeated
// renders of the same input are byte-identical.
var metadataDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Config carries the studio identity printed in the footer.
type Config struct {
	BusinessName string
	ContactLine  string
}

type Renderer struct {
	cfg Config
}

func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render produces the card document for the given fields and title (the
// template type). Fields with empty display values are skipped; the rest are
// emitted in input order. On any generation error no partial bytes are
// returned.
func (r *Renderer) Render(fields []Field, title string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(metadataDate)
	pdf.SetModificationDate(metadataDate)
	pdf.SetTitle(title, true)
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontFamily, "B", headingSize)
	pdf.SetTextColor(33, 33, 33)
	pdf.CellFormat(0, 12, headingText, "", 1, "C", false, 0, "")

	pdf.SetFont(fontFamily, "", subtitleSize)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 8, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	r.divider(pdf)

	pdf.SetFont(fontFamily, "", bodySize)
	pdf.SetTextColor(33, 33, 33)

	for _, f := range fields {
		if f.Value == "" {
			continue
		}

		line := fmt.Sprintf("%s:  %s", humanizeKey(f.Key), f.Value)
		pdf.CellFormat(0, lineHeightMM, tr(line), "", 1, "L", false, 0, "")
	}

	r.divider(pdf)

	pdf.SetFont(fontFamily, "B", footerSize)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 6, tr(r.cfg.BusinessName), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", footerSize)
	pdf.CellFormat(0, 5, tr(r.cfg.ContactLine), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating document: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) divider(pdf *fpdf.Fpdf) {
	pageWidth, _ := pdf.GetPageSize()

	pdf.Ln(2)
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.4)

	y := pdf.GetY()
	pdf.Line(marginMM, y, pageWidth-marginMM, y)
	pdf.Ln(5)
}

// humanizeKey turns "customerName" into "Customer Name": a space before each
// interior capital, first letter capitalized.
func humanizeKey(key string) string {
	var b strings.Builder

	for i, r := range key {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
