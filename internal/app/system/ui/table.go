package ui

import "strconv"

// Record is anything that can be shown as one table row. Cells must be
// returned in column order.
type Record interface {
	Cells() []string
}

// Row is one rendered table row.
type Row struct {
	Cells []string
}

// Table is the view model consumed by the shared "record_table" template.
type Table struct {
	Caption string
	Headers []string
	Rows    []Row
}

// NewTable projects records into rows, one per record, in input order.
func NewTable[R Record](headers []string, records []R) Table {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{Cells: rec.Cells()})
	}
	return Table{Headers: headers, Rows: rows}
}

// Len returns the number of body rows.
func (t Table) Len() int { return len(t.Rows) }

// CountLabel formats n with the singular or plural noun, e.g. "1 alert",
// "3 alerts".
func CountLabel(n int, one, many string) string {
	if n == 1 {
		return strconv.Itoa(n) + " " + one
	}
	return strconv.Itoa(n) + " " + many
}
