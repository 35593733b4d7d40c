package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/models"
)

// Top returns the n best-scoring wallets ordered by score descending, wallet
// ascending. n <= 0 means all of them.
func Top(scores map[string]int, n int) []models.WalletScore {
	rows := models.SortedScores(scores)
	if n > 0 && n < len(rows) {
		rows = rows[:n]
	}
	return rows
}

// Render prints score rows in a table format. hidden is how many wallets were
// cut from the listing; when positive a trailer line mentions them.
func Render(out io.Writer, rows []models.WalletScore, hidden int) {
	if len(rows) == 0 {
		fmt.Fprintln(out, "No wallet scores to display.")
		return
	}

	if hidden > 0 {
		fmt.Fprintf(out, "Top %d of %d wallet credit scores:\n", len(rows), len(rows)+hidden)
	} else {
		fmt.Fprintln(out, "Wallet credit scores:")
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Wallet", "Score"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.Wallet, row.Score})
	}
	t.Render()

	if hidden > 0 {
		fmt.Fprintf(out, "... and %d more wallets\n", hidden)
	}
}
