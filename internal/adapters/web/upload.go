package web

import (
	"io"

	"github.com/arjun/fake-news-filter/internal/adapters/tabular"
	"github.com/arjun/fake-news-filter/internal/core"
)

// parseUpload materializes an uploaded file into a table, with a size bound
// so a huge upload cannot exhaust memory before the record cap applies.
func parseUpload(r io.Reader) (*core.Table, error) {
	return tabular.ReadTable(io.LimitReader(r, maxUploadSize))
}
