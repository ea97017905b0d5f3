package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validConfig = `{
  "logViewerConfig": {
    "delimiters": {
      "logStartDelimiter": "",
      "logEndDelimiter": "",
      "categorySeparator": "|",
      "keyValuePairsSeparator": ";",
      "keyValueSeparator": "=",
      "arrayElementSeparator": ","
    },
    "categories": [
      {"name": "Timestamp", "type": "datetime", "order": 1},
      {"name": "LogLevel", "type": "string", "order": 2},
      {"name": "ErrorCode", "type": "number", "order": 3}
    ]
  }
}`

func TestLoad_ValidConfig(t *testing.T) {
	path := writeTempFile(t, "config.json", validConfig)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Categories) != 3 {
		t.Errorf("Categories = %d, want 3", len(cfg.Categories))
	}
	if cfg.Delimiters.CategorySeparator != "|" {
		t.Errorf("CategorySeparator = %q, want %q", cfg.Delimiters.CategorySeparator, "|")
	}
	if cfg.Categories[1].Name != "LogLevel" || cfg.Categories[1].Type != FieldTypeString {
		t.Errorf("Categories[1] = %+v, want LogLevel string", cfg.Categories[1])
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestParse_MissingSections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no root", `{"somethingElse": {}}`},
		{"no delimiters", `{"logViewerConfig": {"categories": []}}`},
		{"no categories", `{"logViewerConfig": {"delimiters": {"categorySeparator": "|"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !errors.Is(err, ErrMissingSection) {
				t.Errorf("error = %v, want ErrMissingSection", err)
			}
		})
	}
}

func TestParse_OrderDefaultsToDeclarationPosition(t *testing.T) {
	content := `{
  "logViewerConfig": {
    "delimiters": {"categorySeparator": "|"},
    "categories": [
      {"name": "First", "type": "string"},
      {"name": "Second", "type": "string"},
      {"name": "Third", "type": "string"}
    ]
  }
}`
	cfg, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	for i, want := range []int{1, 2, 3} {
		if cfg.Categories[i].Order != want {
			t.Errorf("Categories[%d].Order = %d, want %d", i, cfg.Categories[i].Order, want)
		}
	}
}

func TestParse_CategoriesSortedByOrder(t *testing.T) {
	content := `{
  "logViewerConfig": {
    "delimiters": {"categorySeparator": "|"},
    "categories": [
      {"name": "C", "type": "string", "order": 3},
      {"name": "A", "type": "string", "order": 1},
      {"name": "B", "type": "string", "order": 2}
    ]
  }
}`
	cfg, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	for i, want := range []string{"A", "B", "C"} {
		if cfg.Categories[i].Name != want {
			t.Errorf("Categories[%d].Name = %q, want %q", i, cfg.Categories[i].Name, want)
		}
	}
}

func TestParse_SortIsStableOnTies(t *testing.T) {
	content := `{
  "logViewerConfig": {
    "delimiters": {"categorySeparator": "|"},
    "categories": [
      {"name": "First", "type": "string", "order": 1},
      {"name": "Second", "type": "string", "order": 1},
      {"name": "Third", "type": "string", "order": 1}
    ]
  }
}`
	cfg, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	for i, want := range []string{"First", "Second", "Third"} {
		if cfg.Categories[i].Name != want {
			t.Errorf("Categories[%d].Name = %q, want %q (declaration order on ties)", i, cfg.Categories[i].Name, want)
		}
	}
}

func TestParse_DelimiterArrayUsesFirstElement(t *testing.T) {
	content := `{
  "logViewerConfig": {
    "delimiters": {
      "categorySeparator": ["|", ";"],
      "keyValueSeparator": ["=", ":"]
    },
    "categories": [{"name": "A", "type": "string"}]
  }
}`
	cfg, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Delimiters.CategorySeparator != "|" {
		t.Errorf("CategorySeparator = %q, want %q", cfg.Delimiters.CategorySeparator, "|")
	}
	if cfg.Delimiters.KeyValue != "=" {
		t.Errorf("KeyValue = %q, want %q", cfg.Delimiters.KeyValue, "=")
	}
}

func TestParse_ContainerDelimiterDefaults(t *testing.T) {
	content := `{
  "logViewerConfig": {
    "delimiters": {"categorySeparator": "|"},
    "categories": [{"name": "A", "type": "string"}]
  }
}`
	cfg, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Delimiters.ContainerStart != "(" || cfg.Delimiters.ContainerEnd != ")" {
		t.Errorf("Container delimiters = %q/%q, want (/)",
			cfg.Delimiters.ContainerStart, cfg.Delimiters.ContainerEnd)
	}
}

func TestParse_ColourMapPreservesOrder(t *testing.T) {
	content := `{
  "logViewerConfig": {
    "delimiters": {"categorySeparator": "|"},
    "categories": [
      {"name": "LogLevel", "type": "string",
       "ColourType": "WholeLine", "Colouring": "Text",
       "ColourMap": {
         "255,0,0": "ERROR",
         "255,255,0": "WARNING",
         "0,255,0": "INFO"
       }}
    ]
  }
}`
	cfg, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cat := cfg.Categories[0]
	if !cat.HasColorRule() {
		t.Fatal("HasColorRule() = false, want true")
	}

	wantRGB := []string{"255,0,0", "255,255,0", "0,255,0"}
	wantMatch := []string{"ERROR", "WARNING", "INFO"}
	if len(cat.ColourMap) != 3 {
		t.Fatalf("ColourMap entries = %d, want 3", len(cat.ColourMap))
	}
	for i := range cat.ColourMap {
		if cat.ColourMap[i].RGB != wantRGB[i] || cat.ColourMap[i].Match != wantMatch[i] {
			t.Errorf("ColourMap[%d] = %+v, want %s -> %s", i, cat.ColourMap[i], wantRGB[i], wantMatch[i])
		}
	}
}

func TestParse_MalformedColourMapTolerated(t *testing.T) {
	content := `{
  "logViewerConfig": {
    "delimiters": {"categorySeparator": "|"},
    "categories": [
      {"name": "A", "type": "string", "ColourType": "WholeLine", "ColourMap": "not a mapping"}
    ]
  }
}`
	cfg, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v (malformed color rules should be tolerated)", err)
	}
	if cfg.Categories[0].HasColorRule() {
		t.Error("HasColorRule() = true for malformed ColourMap, want false")
	}
}

func TestParse_ColouringDefaultsToText(t *testing.T) {
	content := `{
  "logViewerConfig": {
    "delimiters": {"categorySeparator": "|"},
    "categories": [{"name": "A", "type": "string"}]
  }
}`
	cfg, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Categories[0].Colouring != PaintText {
		t.Errorf("Colouring = %q, want %q", cfg.Categories[0].Colouring, PaintText)
	}
}

func TestParse_FileFilters(t *testing.T) {
	content := `{
  "logViewerConfig": {
    "delimiters": {"categorySeparator": "|"},
    "categories": [{"name": "A", "type": "string"}],
    "LogFileFilters": [".log", ".out"]
  }
}`
	cfg, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.FileFilters) != 2 || cfg.FileFilters[0] != ".log" || cfg.FileFilters[1] != ".out" {
		t.Errorf("FileFilters = %v, want [.log .out]", cfg.FileFilters)
	}
}

func TestParse_FileFiltersDefault(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.FileFilters) != 2 || cfg.FileFilters[0] != ".txt" || cfg.FileFilters[1] != ".log" {
		t.Errorf("FileFilters = %v, want default [.txt .log]", cfg.FileFilters)
	}
}

func TestCategoryByName(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cat := cfg.CategoryByName("ErrorCode"); cat == nil || cat.Type != FieldTypeNumber {
		t.Errorf("CategoryByName(ErrorCode) = %+v, want number category", cat)
	}
	if cat := cfg.CategoryByName("Missing"); cat != nil {
		t.Errorf("CategoryByName(Missing) = %+v, want nil", cat)
	}
}

func TestFirstDateTimeCategory(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cat := cfg.FirstDateTimeCategory()
	if cat == nil || cat.Name != "Timestamp" {
		t.Errorf("FirstDateTimeCategory() = %+v, want Timestamp", cat)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.Categories) != 6 {
		t.Errorf("Default() categories = %d, want 6", len(cfg.Categories))
	}
	if cfg.Delimiters.CategorySeparator != "|" {
		t.Errorf("Default() CategorySeparator = %q, want |", cfg.Delimiters.CategorySeparator)
	}
}
