package main

import (
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(headers, columns))
	for _, row := range rows {
		tw.AppendRow(toRow(row, columns))
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func toRow(values []string, columns int) table.Row {
	row := make(table.Row, columns)
	for i := range columns {
		if i < len(values) {
			row[i] = values[i]
		} else {
			row[i] = ""
		}
	}
	return row
}

// renderTSV renders rows as tab-separated values with a header line. Tabs and
// newlines inside cells are replaced by spaces.
func renderTSV(headers []string, rows [][]string) string {
	var b strings.Builder
	writeTSVLine(&b, headers)
	for _, row := range rows {
		writeTSVLine(&b, row)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeTSVLine(b *strings.Builder, cells []string) {
	clean := strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(clean.Replace(cell))
	}
	b.WriteByte('\n')
}

// renderForWriter picks a boxed table for terminals and TSV for pipes and
// files, so history output stays scriptable.
func renderForWriter(w io.Writer, headers []string, rows [][]string, aligns []columnAlignment) string {
	if isTerminal(w) {
		return renderTable(headers, rows, aligns)
	}
	return renderTSV(headers, rows)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
