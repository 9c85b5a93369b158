package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"life-cycles/internal/search"
)

func sampleSummary() search.Summary {
	return search.Summary{
		Config:  search.Config{Width: 4, Height: 4, Workers: 2},
		Table:   search.FrequencyTable{4: 36, 1: 60000, 2: 5500},
		Elapsed: 1500 * time.Millisecond,
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"text":  FormatText,
		" YAML": FormatYAML,
		"yml":   FormatYAML,
		"json":  FormatJSON,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; expected %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestTextReport(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatText, sampleSummary()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"4x4 torus", "65,536 configurations", "60,000", "workers=2", "total"} {
		if !strings.Contains(out, want) {
			t.Fatalf("text report missing %q:\n%s", want, out)
		}
	}
	one := strings.Index(out, "\n       1 ")
	four := strings.Index(out, "\n       4 ")
	if one < 0 || four < 0 || one > four {
		t.Fatalf("rows must be sorted by cycle length:\n%s", out)
	}
}

func TestStructuredReports(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatJSON} {
		var buf bytes.Buffer
		if err := Write(&buf, format, sampleSummary()); err != nil {
			t.Fatal(err)
		}
		var doc Document
		var err error
		if format == FormatYAML {
			err = yaml.Unmarshal(buf.Bytes(), &doc)
		} else {
			err = json.Unmarshal(buf.Bytes(), &doc)
		}
		if err != nil {
			t.Fatalf("%s report does not parse: %v\n%s", format, err, buf.String())
		}
		if doc.Configurations != 65536 || doc.Width != 4 {
			t.Fatalf("%s report header wrong: %+v", format, doc)
		}
		if len(doc.Cycles) != 3 || doc.Cycles[0].Length != 1 || doc.Cycles[2].Length != 4 {
			t.Fatalf("%s rows not sorted: %+v", format, doc.Cycles)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Format("csv"), sampleSummary()); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
