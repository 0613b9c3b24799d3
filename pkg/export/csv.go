// Package export renders an absolute-volume series as delimited text for
// download. Output is UTF-8 with a byte-order marker so spreadsheet tools
// detect the encoding of non-ASCII keywords correctly.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"keyword-insight/pkg/rescale"
)

var header = []string{"date", "ratio", "volume"}

// CSV encodes the series as BOM-prefixed UTF-8 CSV with the columns
// date, ratio, volume.
func CSV(series []rescale.AbsolutePoint) ([]byte, error) {
	var buf bytes.Buffer
	bomWriter := transform.NewWriter(&buf, unicode.UTF8BOM.NewEncoder())

	w := csv.NewWriter(bomWriter)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range series {
		record := []string{
			p.Period,
			strconv.FormatFloat(p.Ratio, 'f', -1, 64),
			strconv.Itoa(p.Volume),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	if err := bomWriter.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Filename returns the download filename for a resolved keyword.
func Filename(resolvedKeyword string) string {
	return resolvedKeyword + "_total.csv"
}
