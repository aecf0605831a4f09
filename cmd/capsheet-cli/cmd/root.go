package cmd

import (
	"fmt"
	"os"

	"capsheet-backend/lib/scrapers/spotrac"

	"github.com/spf13/cobra"
)

var BaseUrl string

var client *spotrac.Client

var byID bool

var rootCmd = &cobra.Command{
	Use:   "capsheet-cli",
	Short: "capsheet-cli looks up a player's contract, salary and transaction data.",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&byID, "by-id", false, "treat the player argument as the site's page id instead of a full name")
}

func Execute() {
	client = spotrac.NewClient(spotrac.ClientOptions{BaseURL: BaseUrl})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fetch(cmd *cobra.Command, team, player string) (*spotrac.Player, error) {
	if byID {
		return client.FetchPlayerByID(cmd.Context(), team, player)
	}
	return client.FetchPlayer(cmd.Context(), team, player)
}
