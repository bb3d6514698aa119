package render

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSV writes tables with raw, unformatted values. Several tables are
// separated by an empty line.
func CSV(w io.Writer, tables []table) error {
	cw := csv.NewWriter(w)
	for i, t := range tables {
		if i > 0 {
			if err := cw.Write(nil); err != nil {
				return fmt.Errorf("writing separator: %w", err)
			}
		}
		if err := cw.Write(t.header); err != nil {
			return fmt.Errorf("writing %s header: %w", t.title, err)
		}
		for _, r := range t.rows {
			if err := cw.Write(raw(r)); err != nil {
				return fmt.Errorf("writing %s row: %w", t.title, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func raw(r []cell) []string {
	out := make([]string, len(r))
	for i, c := range r {
		if c.kind == textCell {
			out[i] = c.text
			continue
		}
		out[i] = c.value.String()
	}
	return out
}
