package parser

import (
	"reflect"
	"testing"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
)

func defaultDelims() config.Delimiters {
	return config.Delimiters{
		CategorySeparator: "|",
		KeyValuePairs:     ";",
		KeyValue:          "=",
		ArrayElement:      ",",
		ContainerStart:    "(",
		ContainerEnd:      ")",
	}
}

func TestDecodeField_DateTime(t *testing.T) {
	cat := config.Category{Name: "Timestamp", Type: config.FieldTypeDateTime}
	v := DecodeField("2025-08-08 06:50:15", cat, defaultDelims())

	if v.Kind() != KindString {
		t.Fatalf("Kind = %v, want KindString", v.Kind())
	}
	if v.Str() != "2025-08-08 06:50:15" {
		t.Errorf("Str = %q, want verbatim timestamp", v.Str())
	}
}

func TestDecodeField_Number(t *testing.T) {
	cat := config.Category{Name: "ErrorCode", Type: config.FieldTypeNumber}

	tests := []struct {
		name        string
		text        string
		wantKind    Kind
		wantNum     float64
		wantInteger bool
	}{
		{"integer", "42", KindNumber, 42, true},
		{"negative integer", "-7", KindNumber, -7, true},
		{"float", "3.14", KindNumber, 3.14, false},
		{"not a number", "abc", KindAbsent, 0, false},
		{"empty", "", KindAbsent, 0, false},
		{"trailing garbage", "42x", KindAbsent, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DecodeField(tt.text, cat, defaultDelims())
			if v.Kind() != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", v.Kind(), tt.wantKind)
			}
			if tt.wantKind == KindNumber {
				if v.Num() != tt.wantNum {
					t.Errorf("Num = %v, want %v", v.Num(), tt.wantNum)
				}
				if v.IsInteger() != tt.wantInteger {
					t.Errorf("IsInteger = %v, want %v", v.IsInteger(), tt.wantInteger)
				}
			}
		})
	}
}

func TestDecodeContainer_Mapping(t *testing.T) {
	v := DecodeContainer("(action=login;user=john)", defaultDelims())

	if v.Kind() != KindMapping {
		t.Fatalf("Kind = %v, want KindMapping", v.Kind())
	}
	want := []Pair{{"action", "login"}, {"user", "john"}}
	if !reflect.DeepEqual(v.Mapping(), want) {
		t.Errorf("Mapping = %v, want %v", v.Mapping(), want)
	}
}

func TestDecodeContainer_Sequence(t *testing.T) {
	v := DecodeContainer("(security,user_activity)", defaultDelims())

	if v.Kind() != KindSequence {
		t.Fatalf("Kind = %v, want KindSequence", v.Kind())
	}
	want := []string{"security", "user_activity"}
	if !reflect.DeepEqual(v.Sequence(), want) {
		t.Errorf("Sequence = %v, want %v", v.Sequence(), want)
	}
}

func TestDecodeContainer_Scalar(t *testing.T) {
	v := DecodeContainer("(single)", defaultDelims())

	if v.Kind() != KindString {
		t.Fatalf("Kind = %v, want KindString", v.Kind())
	}
	if v.Str() != "single" {
		t.Errorf("Str = %q, want %q (delimiters stripped)", v.Str(), "single")
	}
}

func TestDecodeContainer_MappingWinsOverSequence(t *testing.T) {
	// Interior contains both separators; key-value detection is checked first.
	v := DecodeContainer("(a=1,b=2)", defaultDelims())
	if v.Kind() != KindMapping {
		t.Errorf("Kind = %v, want KindMapping when both separators present", v.Kind())
	}
}

func TestDecodeContainer_Unwrapped(t *testing.T) {
	v := DecodeContainer("key=value", defaultDelims())
	if v.Kind() != KindMapping {
		t.Errorf("Kind = %v, want KindMapping for bare key-value text", v.Kind())
	}

	v = DecodeContainer("just text", defaultDelims())
	if v.Kind() != KindString || v.Str() != "just text" {
		t.Errorf("got %v %q, want plain scalar", v.Kind(), v.Str())
	}
}

func TestDecodeContainer_PairlessPiecesDropped(t *testing.T) {
	v := DecodeContainer("(a=1;orphan;b=2)", defaultDelims())
	want := []Pair{{"a", "1"}, {"b", "2"}}
	if !reflect.DeepEqual(v.Mapping(), want) {
		t.Errorf("Mapping = %v, want %v", v.Mapping(), want)
	}
}

func TestDecodeContainer_TrimsKeysAndValues(t *testing.T) {
	v := DecodeContainer("( a = 1 ; b = 2 )", defaultDelims())
	want := []Pair{{"a", "1"}, {"b", "2"}}
	if !reflect.DeepEqual(v.Mapping(), want) {
		t.Errorf("Mapping = %v, want %v", v.Mapping(), want)
	}
}

func TestDecodeContainer_EmptySequenceElementsDropped(t *testing.T) {
	v := DecodeContainer("(a,,b, )", defaultDelims())
	want := []string{"a", "b"}
	if !reflect.DeepEqual(v.Sequence(), want) {
		t.Errorf("Sequence = %v, want %v", v.Sequence(), want)
	}
}

func TestDecodeContainer_EmptyText(t *testing.T) {
	v := DecodeContainer("", defaultDelims())
	if v.Kind() != KindString || v.Str() != "" {
		t.Errorf("got %v %q, want empty scalar", v.Kind(), v.Str())
	}
}

func TestDecodeEntry_FieldAlignment(t *testing.T) {
	cfg := &config.Config{
		Delimiters: defaultDelims(),
		Categories: []config.Category{
			{Name: "Timestamp", Type: config.FieldTypeDateTime, Order: 1},
			{Name: "LogLevel", Type: config.FieldTypeString, Order: 2},
			{Name: "ErrorCode", Type: config.FieldTypeNumber, Order: 3},
		},
	}

	t.Run("full entry", func(t *testing.T) {
		entry := DecodeEntry(RawEntry{Text: "2025-01-01 00:00:00|INFO|42"}, 1, cfg)
		if len(entry.Fields) != 3 {
			t.Fatalf("fields = %d, want 3", len(entry.Fields))
		}
		if got := entry.Field("ErrorCode"); got.Num() != 42 {
			t.Errorf("ErrorCode = %v, want 42", got.Num())
		}
	})

	t.Run("fewer fields than categories", func(t *testing.T) {
		entry := DecodeEntry(RawEntry{Text: "2025-01-01 00:00:00|INFO"}, 1, cfg)
		if len(entry.Fields) != 2 {
			t.Fatalf("fields = %d, want 2", len(entry.Fields))
		}
		if !entry.Field("ErrorCode").IsAbsent() {
			t.Error("ErrorCode should be absent for a short entry")
		}
	})

	t.Run("more fields than categories", func(t *testing.T) {
		entry := DecodeEntry(RawEntry{Text: "a|b|7|extra|more"}, 1, cfg)
		if len(entry.Fields) != 3 {
			t.Errorf("fields = %d, want 3 (extras discarded)", len(entry.Fields))
		}
	})
}

func TestFieldValue_String(t *testing.T) {
	tests := []struct {
		name string
		v    FieldValue
		want string
	}{
		{"absent", Absent(), ""},
		{"string", StringValue("hello"), "hello"},
		{"integer", IntValue(1001), "1001"},
		{"float", FloatValue(3.14), "3.14"},
		{"mapping", MappingValue([]Pair{{"a", "1"}, {"b", "2"}}), "a=1;b=2"},
		{"sequence", SequenceValue([]string{"x", "y"}), "x,y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The canonical text of a decoded container round-trips through the decoder.
func TestDecodeContainer_StringRoundTrip(t *testing.T) {
	delims := defaultDelims()
	inputs := []string{"(action=login;user=john)", "(security,user_activity)"}

	for _, in := range inputs {
		first := DecodeContainer(in, delims)
		second := DecodeContainer(first.String(), delims)
		if first.String() != second.String() {
			t.Errorf("round trip of %q: %q != %q", in, first.String(), second.String())
		}
		if first.Kind() != second.Kind() {
			t.Errorf("round trip of %q changed kind: %v != %v", in, first.Kind(), second.Kind())
		}
	}
}
