package output

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
)

// CSVFormatter writes entries as CSV: line number, source, raw text, then one
// column per category in schema order using the canonical field text.
type CSVFormatter struct {
	opts FormatOptions
}

// Name returns the format name.
func (f *CSVFormatter) Name() string {
	return "csv"
}

// Format renders the snapshot as CSV with a header row.
func (f *CSVFormatter) Format(ctx context.Context, snap *Snapshot, w io.Writer) error {
	if snap == nil {
		return errNilSnapshot
	}

	writer := csv.NewWriter(w)

	header := []string{"Line", "Source", "Raw Text"}
	for _, cat := range snap.Config.Categories {
		header = append(header, cat.Name)
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, entry := range snap.Entries {
		row := []string{
			strconv.Itoa(entry.LineNumber),
			entry.Source,
			entry.Raw,
		}
		for _, cat := range snap.Config.Categories {
			row = append(row, entry.Field(cat.Name).String())
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
