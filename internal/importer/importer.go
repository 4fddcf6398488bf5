package importer

import (
	"io"

	"github.com/studiodesk/studiodesk/internal/ledger"
)

// Source identifies the kind of file being imported.
type Source string

const (
	// SourceSheet is a CSV export of the studio's billing sheet.
	SourceSheet Source = "sheet"
)

type Importer interface {
	Parse(r io.Reader) ([]ledger.CreateParams, error)
}
