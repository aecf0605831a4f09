package spotrac

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"capsheet-backend/lib/telemetry"

	_ "embed"

	"github.com/stretchr/testify/require"
)

//go:embed testdata/zion-williamson.html
var playerPage []byte

func fixtureServer(t *testing.T) *Client {
	// the real site serves its lookalike "not found" page with a 200,
	// so the fixture server answers every path the same way
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(playerPage)
	}))
	t.Cleanup(server.Close)

	return NewClient(ClientOptions{BaseURL: server.URL + "/"})
}

func TestFetchPlayer(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/spotrac")
	defer cleanup()

	client := fixtureServer(t)
	player, err := client.FetchPlayer(context.Background(), "NOP", "Zion Williamson")
	require.NoError(t, err)

	require.Equal(t, "Zion Williamson", player.Name)
	require.Equal(t, "PF", player.Position)
	require.Equal(t, "24-58d", player.Age)
	require.Equal(t, "New Orleans Pelicans", player.Team)
	require.Equal(t, "5 Years", player.Experience)
	require.Equal(t, "2019 Rd 1, Pick 1 (NOP)", player.Drafted)
	require.Equal(t, "Duke", player.College)
	require.Equal(t, "Austin Brown", player.Agent)
	require.Equal(t, "$97,562,910", player.CareerEarnings)
	require.Equal(t, "$294,793,360", player.FutureCareerEarnings)
	require.True(t, player.Current)

	career, err := player.CareerEarningsInt()
	require.NoError(t, err)
	require.Equal(t, int64(97562910), career)
}

func TestFetchPlayerContract(t *testing.T) {
	client := fixtureServer(t)
	player, err := client.FetchPlayer(context.Background(), "New Orleans Pelicans", "Zion Williamson")
	require.NoError(t, err)
	require.NotNil(t, player.Contract)

	contract := player.Contract
	require.Equal(t,
		"Zion Williamson signed a 5 year / $197,230,450 contract with the New Orleans Pelicans, including $197,230,450 guaranteed, and an annual average salary of $39,446,090.",
		contract.Summary,
	)
	require.Equal(t, "5 yr(s) / $197,230,450", contract.Terms)
	require.Equal(t, "$39,446,090", contract.AvgSalary)
	require.Equal(t, "$197,230,450", contract.GtdAtSign)
	require.Equal(t, "Rookie Max Extension", contract.SignedUsing)
	require.Equal(t, "2028 / UFA", contract.FreeAgent)

	require.Equal(t, 5, contract.Length())
	remaining, err := contract.YearsRemaining()
	require.NoError(t, err)
	require.Equal(t, 5, remaining)

	require.Len(t, contract.Notes, 3)
	require.Equal(t, "Contains a player option for the 2027-28 season.", contract.Notes[0])
	require.Equal(t, "$10M per season protected for skill, injury and weight.", contract.Notes[1])

	first := contract.ContractYears[0]
	require.True(t, first.CurrentYear)
	require.Equal(t, "2023-24", first.Season)
	require.Equal(t, 23, first.Age)
	require.Equal(t, "$34,005,250", first.BaseSalary)
	require.Equal(t, "$0", first.TradeBonus)

	last := contract.ContractYears[4]
	require.Equal(t, "2027-28", last.Season)
	require.Equal(t, "Player", last.Option)
	require.Equal(t, "$1,000,000", contract.ContractYears[3].LikelyIncentives)
}

func TestFetchPlayerTransactions(t *testing.T) {
	client := fixtureServer(t)
	player, err := client.FetchPlayer(context.Background(), "nop", "Zion Williamson")
	require.NoError(t, err)

	require.Len(t, player.Transactions, 3)
	require.Equal(t, "Jul 6 2022", player.Transactions[0].FullDate())
	require.Equal(t,
		"Signed a 5 year $193M rookie maximum extension with New Orleans (NOP).",
		player.Transactions[0].Notes,
	)
	fromDraftYear, err := player.TransactionsByYear(2019)
	require.NoError(t, err)
	require.Len(t, fromDraftYear, 2)
}

func TestFetchPlayerBaseSalaryFallback(t *testing.T) {
	client := fixtureServer(t)
	player, err := client.FetchPlayer(context.Background(), "nop", "Zion Williamson")
	require.NoError(t, err)

	salary, ok, err := player.BaseSalary("2023-24")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "$34,005,250", salary)

	// outside the current contract, resolved from the earnings table
	salary, ok, err = player.BaseSalary("2020-21")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "$10,245,480", salary)

	_, ok, err = player.BaseSalary("2035-36")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFetchPlayerByID(t *testing.T) {
	client := fixtureServer(t)
	player, err := client.FetchPlayerByID(context.Background(), "nop", "zion-williamson-27721")
	require.NoError(t, err)
	require.Equal(t, "Zion Williamson", player.Name)
	require.True(t, player.Current)
}

func TestFetchPlayerMisspelled(t *testing.T) {
	client := fixtureServer(t)
	_, err := client.FetchPlayer(context.Background(), "nop", "Zion Williams")
	var notFound *PlayerNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "Zion Williams", notFound.Name)
}

func TestFetchPlayerUnknownTeam(t *testing.T) {
	client := fixtureServer(t)
	_, err := client.FetchPlayer(context.Background(), "Seattle Supersonics", "Zion Williamson")
	var unknownTeam *UnknownTeamError
	require.ErrorAs(t, err, &unknownTeam)
}

func TestFetchPlayerServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL + "/"})
	_, err := client.FetchPlayer(context.Background(), "nop", "Zion Williamson")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
}
