package cmd

import (
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var transactionYears []int

func init() {
	transactionsCmd.Flags().IntSliceVar(&transactionYears, "year", nil, "limit to transactions in the given years")
	rootCmd.AddCommand(transactionsCmd)
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions <team> <name>",
	Short: "Show a player's transaction history.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		player, err := fetch(cmd, args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}

		transactions, err := player.TransactionsByYear(transactionYears...)
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Date", "Notes"})
		for _, transaction := range transactions {
			t.AppendRow(table.Row{transaction.FullDate(), transaction.Notes})
		}
		t.Render()
	},
}
