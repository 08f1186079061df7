package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVReader reads delimited text exports. A UTF-8 or UTF-16 byte order mark
// selects the decoding; files without one are read as UTF-8.
type CSVReader struct {
	// Comma is the field delimiter, ',' when zero.
	Comma rune
}

func (r *CSVReader) Read(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(file, decoder))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if r.Comma != 0 {
		reader.Comma = r.Comma
	}

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	normalizedHeaders := normalizeHeaders(headers)

	records := make([]Record, 0, 128)
	rowNumber := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", rowNumber+1, err)
		}

		records = append(records, recordFromRow(rowNumber+1, normalizedHeaders, row))
		rowNumber++
	}

	return records, nil
}
