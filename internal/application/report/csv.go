package report

import "strings"

// WriteCSV renders rows to CSV text. Every field is quoted, numerics
// included, so spreadsheet imports never re-type a column; embedded quotes
// are doubled. Header row first, "\n" after every row including the last.
func WriteCSV(headers []string, rows [][]string) string {
	var b strings.Builder
	writeCSVRow(&b, headers)
	for _, row := range rows {
		writeCSVRow(&b, row)
	}
	return b.String()
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
