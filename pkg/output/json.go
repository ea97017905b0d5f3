package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/AndrewKWatts/LogViewer/pkg/parser"
)

// JSONFormatter writes entries as a JSON array of records.
type JSONFormatter struct {
	opts FormatOptions
}

type jsonEntry struct {
	LineNumber int                          `json:"line_number"`
	RawText    string                       `json:"raw_text"`
	Source     string                       `json:"source,omitempty"`
	Multiline  bool                         `json:"is_multiline,omitempty"`
	Fields     map[string]parser.FieldValue `json:"fields"`
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the snapshot as indented JSON.
func (f *JSONFormatter) Format(ctx context.Context, snap *Snapshot, w io.Writer) error {
	if snap == nil {
		return errNilSnapshot
	}

	records := make([]jsonEntry, 0, len(snap.Entries))
	for _, entry := range snap.Entries {
		records = append(records, jsonEntry{
			LineNumber: entry.LineNumber,
			RawText:    entry.Raw,
			Source:     entry.Source,
			Multiline:  entry.Multiline,
			Fields:     entry.Fields,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
