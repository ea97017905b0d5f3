package config

// Default delimiter values for roles the schema may omit.
const (
	DefaultContainerStart = "("
	DefaultContainerEnd   = ")"
)

// DefaultFileFilters is the extension list used for folder discovery when the
// schema does not declare LogFileFilters.
var DefaultFileFilters = []string{".txt", ".log"}

// Default returns the built-in pipe-delimited schema used when no config file
// is supplied: six categories covering a timestamp, level, component,
// structured details, tag list, and numeric error code.
func Default() *Config {
	return &Config{
		Delimiters: Delimiters{
			CategorySeparator: "|",
			KeyValuePairs:     ";",
			KeyValue:          "=",
			ArrayElement:      ",",
			ContainerStart:    DefaultContainerStart,
			ContainerEnd:      DefaultContainerEnd,
		},
		Categories: []Category{
			{Name: "Timestamp", Type: FieldTypeDateTime, Order: 1, Colouring: PaintText},
			{Name: "LogLevel", Type: FieldTypeString, Order: 2, Colouring: PaintText},
			{Name: "Component", Type: FieldTypeString, Order: 3, Colouring: PaintText},
			{Name: "Details", Type: FieldTypeString, Order: 4, Colouring: PaintText},
			{Name: "Tags", Type: FieldTypeString, Order: 5, Colouring: PaintText},
			{Name: "ErrorCode", Type: FieldTypeNumber, Order: 6, Colouring: PaintText},
		},
		FileFilters: append([]string(nil), DefaultFileFilters...),
	}
}
