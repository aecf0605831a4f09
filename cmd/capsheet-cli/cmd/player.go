package cmd

import (
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playerCmd)
}

var playerCmd = &cobra.Command{
	Use:   "player <team> <name>",
	Short: "Show a player's biographical fields and earnings.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		player, err := fetch(cmd, args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"Name", player.Name})
		t.AppendRow(table.Row{"Position", player.Position})
		t.AppendRow(table.Row{"Team", player.Team})
		t.AppendRow(table.Row{"Age", player.Age})
		t.AppendRow(table.Row{"Experience", player.Experience})
		t.AppendRow(table.Row{"Drafted", player.Drafted})
		t.AppendRow(table.Row{"College", player.College})
		t.AppendRow(table.Row{"Agent(s)", player.Agent})
		t.AppendRow(table.Row{"Career earnings", player.CareerEarnings})
		t.AppendRow(table.Row{"Future career earnings", player.FutureCareerEarnings})
		t.AppendRow(table.Row{"Active", player.Current})
		t.Render()
	},
}
