package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tally-dev/tally/internal/model"
)

// renderTable writes transactions as an aligned table, newest entry
// first. Query results keep file order, so display reverses them.
func renderTable(w io.Writer, txs []model.Transaction) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTIME\tDESCRIPTION\tVENDOR\tAMOUNT")
	for i := len(txs) - 1; i >= 0; i-- {
		tx := txs[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			tx.Date.Format(model.DateFormat),
			tx.Time.Format(model.TimeFormat),
			tx.Description,
			tx.Vendor,
			tx.Amount.StringFixed(2))
	}
	tw.Flush()
}
