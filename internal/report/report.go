// Package report renders cycle census results.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"life-cycles/internal/core"
	"life-cycles/internal/search"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat reports an unsupported output format.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Row is one entry of the frequency table.
type Row struct {
	Length int    `json:"length" yaml:"length"`
	Count  uint64 `json:"count" yaml:"count"`
}

// Document is the structured form of a report.
type Document struct {
	Width          int                    `json:"width" yaml:"width"`
	Height         int                    `json:"height" yaml:"height"`
	Configurations uint64                 `json:"configurations" yaml:"configurations"`
	Elapsed        string                 `json:"elapsed" yaml:"elapsed"`
	Parameters     core.ParameterSnapshot `json:"parameters" yaml:"parameters"`
	Cycles         []Row                  `json:"cycles" yaml:"cycles"`
}

// NewDocument builds the structured report of a search. Rows are sorted by
// cycle length.
func NewDocument(sum search.Summary) Document {
	doc := Document{
		Width:          sum.Config.Width,
		Height:         sum.Config.Height,
		Configurations: sum.Table.Total(),
		Elapsed:        sum.Elapsed.Round(time.Millisecond).String(),
		Parameters:     sum.Config.Parameters(),
	}
	for _, length := range sum.Table.Lengths() {
		doc.Cycles = append(doc.Cycles, Row{Length: length, Count: sum.Table[length]})
	}
	return doc
}

// Write renders sum to w in the given format.
func Write(w io.Writer, format Format, sum search.Summary) error {
	doc := NewDocument(sum)
	switch format {
	case FormatText:
		return writeText(w, doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeText(w io.Writer, doc Document) error {
	p := message.NewPrinter(language.English)
	var sb strings.Builder

	p.Fprintf(&sb, "Cycle lengths on a %dx%d torus (%d configurations, %s)\n",
		doc.Width, doc.Height, doc.Configurations, doc.Elapsed)
	for _, g := range doc.Parameters.Groups {
		p.Fprintf(&sb, "  %s:", g.Name)
		for _, param := range g.Params {
			p.Fprintf(&sb, " %s=%s", param.Key, param.Value)
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	p.Fprintf(&sb, "%8s %15s %8s\n", "length", "count", "share")
	for _, row := range doc.Cycles {
		share := 0.0
		if doc.Configurations > 0 {
			share = 100 * float64(row.Count) / float64(doc.Configurations)
		}
		p.Fprintf(&sb, "%8d %15d %7.2f%%\n", row.Length, row.Count, share)
	}
	p.Fprintf(&sb, "%8s %15d\n", "total", doc.Configurations)

	_, err := io.WriteString(w, sb.String())
	return err
}
