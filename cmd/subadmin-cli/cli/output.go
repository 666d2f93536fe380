package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	jmespath "github.com/jmespath-community/go-jmespath"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// table is the human-readable rendering of a command result.
type table struct {
	header []string
	rows   [][]string
	footer string
}

func (t *table) add(cells ...string) { t.rows = append(t.rows, cells) }

// printer renders command results in the selected format.
type printer struct {
	format string
	query  string
}

func newPrinter(format, query string) (printer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	query = strings.TrimSpace(query)
	switch format {
	case "", formatTable:
		format = formatTable
	case formatJSON, formatYAML:
	default:
		return printer{}, fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
	if query != "" {
		if _, err := jmespath.Compile(query); err != nil {
			return printer{}, fmt.Errorf("invalid --query: %w", err)
		}
		if format == formatTable {
			format = formatJSON
		}
	}
	return printer{format: format, query: query}, nil
}

// print writes value as json/yaml, or t when the table format is selected.
func (p printer) print(w io.Writer, value any, t table) error {
	if p.format == formatTable {
		return writeTable(w, t)
	}
	doc, err := toDocument(value)
	if err != nil {
		return err
	}
	if p.query != "" {
		if doc, err = jmespath.Search(p.query, doc); err != nil {
			return fmt.Errorf("evaluate --query: %w", err)
		}
	}
	switch p.format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		out, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
}

// message prints a one-line acknowledgement, or {"message": msg} for structured formats.
func (p printer) message(w io.Writer, msg string) error {
	if p.format == formatTable {
		_, err := fmt.Fprintln(w, msg)
		return err
	}
	return p.print(w, map[string]string{"message": msg}, table{})
}

// toDocument round-trips value through JSON so queries and yaml see the wire field names.
func toDocument(value any) (any, error) {
	raw, err := sonic.ConfigStd.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	var doc any
	if err := sonic.ConfigStd.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return doc, nil
}

func writeTable(w io.Writer, t table) error {
	if len(t.rows) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(t.header) > 0 {
		fmt.Fprintln(tw, strings.Join(t.header, "\t"))
	}
	for _, row := range t.rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if t.footer != "" {
		_, err := fmt.Fprintln(w, t.footer)
		return err
	}
	return nil
}

func currentPrinter() (printer, error) {
	return newPrinter(outputFormat, outputQuery)
}
