package importer

import (
	"fmt"
	"io"

	"github.com/studiodesk/studiodesk/internal/importer/sheet"
	"github.com/studiodesk/studiodesk/internal/ledger"
)

type Service struct {
	sheetImporter Importer
}

func NewService() *Service {
	return &Service{
		sheetImporter: sheet.New(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]ledger.CreateParams, error) {
	var imp Importer

	switch source {
	case SourceSheet:
		imp = s.sheetImporter
	default:
		return nil, fmt.Errorf("unknown import source: %s", source)
	}

	return imp.Parse(r)
}
