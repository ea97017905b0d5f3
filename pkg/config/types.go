// Package config provides schema loading and normalization for LogViewer.
//
// A schema describes the shape of a log line: the delimiter strings used to
// segment raw text, and an ordered list of named, typed categories. Everything
// downstream (tokenizing, decoding, classification, filtering) borrows a
// loaded Config read-only.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FieldType is the declared type of a category.
type FieldType string

const (
	FieldTypeDateTime FieldType = "datetime"
	FieldTypeString   FieldType = "string"
	FieldTypeNumber   FieldType = "number"
)

// ColorKind determines what a matching color rule paints.
type ColorKind string

const (
	ColorWholeLine     ColorKind = "WholeLine"
	ColorLineNumber    ColorKind = "LineNumber"
	ColorSpecificValue ColorKind = "SpecificValue"
)

// Paint selects the paint target for a color rule.
type Paint string

const (
	PaintText       Paint = "Text"
	PaintBackground Paint = "Background"
)

// Delimiters holds the resolved delimiter string for each role.
// Roles configured as arrays are collapsed to their first element at load
// time, so matching code never deals with the scalar-or-list config shape.
type Delimiters struct {
	LogStart          string
	LogEnd            string
	CategorySeparator string
	KeyValuePairs     string
	KeyValue          string
	ArrayElement      string
	ContainerStart    string
	ContainerEnd      string
}

// ColorMapping is a single ColourMap entry: an RGB triplet string mapped to a
// match specification (literal set or numeric ranges, depending on the kind).
type ColorMapping struct {
	RGB   string
	Match string
}

// ColorMap is an ordered list of color mappings. Declaration order is
// significant: the first matching entry wins.
type ColorMap []ColorMapping

// UnmarshalYAML decodes a mapping node while preserving key order, which a
// plain Go map would lose. Non-mapping content is tolerated and yields an
// empty map (malformed rules simply never match).
func (m *ColorMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		*m = nil
		return nil
	}
	out := make(ColorMap, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, ColorMapping{
			RGB:   node.Content[i].Value,
			Match: node.Content[i+1].Value,
		})
	}
	*m = out
	return nil
}

// Category is one named, typed, ordered field definition from the schema.
type Category struct {
	Name        string
	Type        FieldType
	Order       int
	Description string

	// Color rule, optional.
	ColourType ColorKind
	Colouring  Paint
	ColourMap  ColorMap
}

// HasColorRule reports whether the category carries a usable color rule.
func (c *Category) HasColorRule() bool {
	return c.ColourType != "" && len(c.ColourMap) > 0
}

// Config is a loaded, normalized schema. Immutable once constructed.
type Config struct {
	Delimiters Delimiters

	// Categories sorted ascending by Order (stable on ties).
	Categories []Category

	// FileFilters is the extension list used for folder discovery.
	FileFilters []string
}

// CategoryByName returns the category with the given name, or nil.
func (c *Config) CategoryByName(name string) *Category {
	for i := range c.Categories {
		if c.Categories[i].Name == name {
			return &c.Categories[i]
		}
	}
	return nil
}

// FirstDateTimeCategory returns the first datetime-typed category in sorted
// order, or nil if the schema has none. Merged multi-file views sort on it.
func (c *Config) FirstDateTimeCategory() *Category {
	for i := range c.Categories {
		if c.Categories[i].Type == FieldTypeDateTime {
			return &c.Categories[i]
		}
	}
	return nil
}

// flexString decodes a delimiter role that may be configured as either a
// single string or a list of candidates. Only the first list element is
// active; the remainder is reserved.
type flexString string

func (f *flexString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		if len(node.Content) == 0 {
			*f = ""
			return nil
		}
		return node.Content[0].Decode((*string)(f))
	}
	return node.Decode((*string)(f))
}

// flexStrings decodes a value that may be a single string or a list.
type flexStrings []string

func (f *flexStrings) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		return node.Decode((*[]string)(f))
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("decoding file filter list: %w", err)
	}
	*f = []string{s}
	return nil
}
