package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrMissingSection indicates a required top-level schema section is absent.
var ErrMissingSection = errors.New("missing required section")

// rawRoot mirrors the on-disk schema shape. Config files are the original
// JSON form under the logViewerConfig root; since JSON is a YAML subset they
// are decoded with yaml.v3, which also preserves ColourMap key order.
type rawRoot struct {
	LogViewerConfig *rawConfig `yaml:"logViewerConfig"`
}

type rawConfig struct {
	Delimiters     *rawDelimiters `yaml:"delimiters"`
	Categories     []rawCategory  `yaml:"categories"`
	LogFileFilters flexStrings    `yaml:"LogFileFilters"`
}

type rawDelimiters struct {
	LogStart          flexString  `yaml:"logStartDelimiter"`
	LogEnd            flexString  `yaml:"logEndDelimiter"`
	CategorySeparator flexString  `yaml:"categorySeparator"`
	KeyValuePairs     flexString  `yaml:"keyValuePairsSeparator"`
	KeyValue          flexString  `yaml:"keyValueSeparator"`
	ArrayElement      flexString  `yaml:"arrayElementSeparator"`
	ContainerStart    *flexString `yaml:"ContainerStartDelimiter"`
	ContainerEnd      *flexString `yaml:"ContainerEndDelimiter"`
}

type rawCategory struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Order       *int     `yaml:"order"`
	Description string   `yaml:"description"`
	ColourType  string   `yaml:"ColourType"`
	Colouring   string   `yaml:"Colouring"`
	ColourMap   ColorMap `yaml:"ColourMap"`
}

// Load reads and parses a schema file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and normalizes schema content.
//
// Normalization covers delimiter resolution (first element of array-shaped
// roles, container defaults) and category ordering (missing order fields get
// their 1-based declaration position, then a stable ascending sort). Beyond
// the required sections nothing is validated here: malformed color-rule
// contents are tolerated and simply never match at classification time.
func Parse(data []byte) (*Config, error) {
	var root rawRoot
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if root.LogViewerConfig == nil {
		return nil, fmt.Errorf("%w: logViewerConfig", ErrMissingSection)
	}
	rc := root.LogViewerConfig
	if rc.Delimiters == nil {
		return nil, fmt.Errorf("%w: delimiters", ErrMissingSection)
	}
	if rc.Categories == nil {
		return nil, fmt.Errorf("%w: categories", ErrMissingSection)
	}

	cfg := &Config{
		Delimiters:  resolveDelimiters(rc.Delimiters),
		Categories:  resolveCategories(rc.Categories),
		FileFilters: resolveFileFilters(rc.LogFileFilters),
	}
	return cfg, nil
}

func resolveDelimiters(raw *rawDelimiters) Delimiters {
	d := Delimiters{
		LogStart:          string(raw.LogStart),
		LogEnd:            string(raw.LogEnd),
		CategorySeparator: string(raw.CategorySeparator),
		KeyValuePairs:     string(raw.KeyValuePairs),
		KeyValue:          string(raw.KeyValue),
		ArrayElement:      string(raw.ArrayElement),
		ContainerStart:    DefaultContainerStart,
		ContainerEnd:      DefaultContainerEnd,
	}
	if raw.ContainerStart != nil {
		d.ContainerStart = string(*raw.ContainerStart)
	}
	if raw.ContainerEnd != nil {
		d.ContainerEnd = string(*raw.ContainerEnd)
	}
	return d
}

func resolveCategories(raw []rawCategory) []Category {
	cats := make([]Category, 0, len(raw))
	for i, rc := range raw {
		order := i + 1 // 1-based declaration position
		if rc.Order != nil {
			order = *rc.Order
		}

		colouring := Paint(rc.Colouring)
		if colouring == "" {
			colouring = PaintText
		}

		cats = append(cats, Category{
			Name:        rc.Name,
			Type:        FieldType(rc.Type),
			Order:       order,
			Description: rc.Description,
			ColourType:  ColorKind(rc.ColourType),
			Colouring:   colouring,
			ColourMap:   rc.ColourMap,
		})
	}

	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Order < cats[j].Order
	})
	return cats
}

func resolveFileFilters(raw flexStrings) []string {
	if len(raw) == 0 {
		return append([]string(nil), DefaultFileFilters...)
	}
	return append([]string(nil), raw...)
}
