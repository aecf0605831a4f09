package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(contractCmd)
}

var contractCmd = &cobra.Command{
	Use:   "contract <team> <name>",
	Short: "Show a player's current contract, season by season.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		player, err := fetch(cmd, args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}
		if player.Contract == nil {
			fmt.Printf("%s has no current contract.\n", player.Name)
			return
		}
		contract := player.Contract

		fmt.Println(contract.Summary)
		fmt.Println()
		fmt.Printf("Terms: %s\n", contract.Terms)
		fmt.Printf("Average salary: %s\n", contract.AvgSalary)
		fmt.Printf("Guaranteed at signing: %s\n", contract.GtdAtSign)
		fmt.Printf("Signed using: %s\n", contract.SignedUsing)
		fmt.Printf("Free agent: %s\n", contract.FreeAgent)
		fmt.Println()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{
			"Season", "Age", "Option", "Base Salary", "Likely Inc.",
			"Unlikely Inc.", "Trade Bonus", "Cap Hit", "% of Cap",
			"Yearly Cash", "Guaranteed",
		})
		for _, year := range contract.ContractYears {
			season := year.Season
			if year.CurrentYear {
				season += " *"
			}
			t.AppendRow(table.Row{
				season, year.Age, year.Option, year.BaseSalary,
				year.LikelyIncentives, year.UnlikelyIncentives,
				year.TradeBonus, year.CapHit, year.PctOfCap,
				year.YearlyCash, year.GuaranteedMoney,
			})
		}
		t.Render()

		if len(contract.Notes) > 0 {
			fmt.Println()
			for _, note := range contract.Notes {
				fmt.Printf("- %s\n", note)
			}
		}
	},
}
