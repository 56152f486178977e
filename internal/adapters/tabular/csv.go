package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/arjun/fake-news-filter/internal/core"
)

// ReadTable parses CSV content into a core.Table. The first record is the
// header. Ragged rows are tolerated; a row shorter than the selected column
// degrades to empty text downstream. Anything that cannot be parsed as CSV
// at all yields a core.MalformedInputError and no partial table.
func ReadTable(r io.Reader) (*core.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewMalformedInputError(fmt.Errorf("failed to parse CSV: %w", err))
	}
	if len(records) == 0 {
		return nil, core.NewMalformedInputError(errors.New("empty input"))
	}

	return &core.Table{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}
