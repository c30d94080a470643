// journal/csv.go
package journal

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{"id", "date", "symbol", "type", "action", "price", "quantity", "fees", "comment"}

// WriteCSV writes trades as CSV, header first, in the order given.
func WriteCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, t := range trades {
		err := cw.Write([]string{
			strconv.FormatInt(t.ID, 10),
			t.Day(),
			t.Symbol,
			t.Type.String(),
			t.Action.String(),
			t.Price.String(),
			strconv.FormatInt(t.Quantity, 10),
			t.Fees.String(),
			t.Comment,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
