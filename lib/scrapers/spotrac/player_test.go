package spotrac

import (
	"testing"

	"capsheet-backend/lib/money"

	"github.com/stretchr/testify/require"
)

func TestValidateSeason(t *testing.T) {
	valid := []string{"2020-21", "2023-24", "1999-00", "2099-00"}
	for _, season := range valid {
		require.NoError(t, validateSeason(season), season)
	}

	invalid := []string{
		"2020-2",   // end part wrong length
		"202-21",   // start part wrong length
		"2020/21",  // no hyphen
		"2020-22",  // end year doesn't follow start year
		"20xx-21",  // non-numeric start
		"2020-2x",  // non-numeric end
		"",
	}
	for _, season := range invalid {
		err := validateSeason(season)
		var seasonErr *InvalidSeasonError
		require.ErrorAs(t, err, &seasonErr, season)
		require.Equal(t, season, seasonErr.Season)
	}
}

func testPlayer() *Player {
	return &Player{
		Name:     "Zion Williamson",
		Position: "PF",
		Age:      "24-58d",
		Team:     "New Orleans Pelicans",
		Current:  true,
		Contract: fiveYearContract(0),
		Transactions: []Transaction{
			{Month: "Jul", Day: "6", Year: "2022", Notes: "extension"},
			{Month: "Jul", Day: "1", Year: "2019", Notes: "rookie deal"},
			{Month: "Jun", Day: "20", Year: "2019", Notes: "drafted"},
		},
		earnings: []earningsRow{
			{season: "2019-20 (Age 19)", salary: "$9,757,440"},
			{season: "2020-21 (Age 20)", salary: "$10,245,480"},
		},
	}
}

func TestBaseSalary(t *testing.T) {
	player := testPlayer()

	// found in the current contract
	salary, ok, err := player.BaseSalary("2023-24")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "$34,005,250", salary)

	// found in the historical earnings table
	salary, ok, err = player.BaseSalary("2020-21")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "$10,245,480", salary)

	// well-formed but present nowhere: explicit not-found, no error
	_, ok, err = player.BaseSalary("2031-32")
	require.NoError(t, err)
	require.False(t, ok)

	// malformed season
	_, _, err = player.BaseSalary("2020-2")
	var seasonErr *InvalidSeasonError
	require.ErrorAs(t, err, &seasonErr)
}

func TestTransactionsByYear(t *testing.T) {
	player := testPlayer()

	all, err := player.TransactionsByYear()
	require.NoError(t, err)
	require.Len(t, all, 3)

	filtered, err := player.TransactionsByYear(2019)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	// page order is preserved
	require.Equal(t, "rookie deal", filtered[0].Notes)
	require.Equal(t, "drafted", filtered[1].Notes)

	both, err := player.TransactionsByYear(2022, 2019)
	require.NoError(t, err)
	require.Len(t, both, 3)

	none, err := player.TransactionsByYear(2030)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestTransactionsByYearBadYear(t *testing.T) {
	player := testPlayer()
	player.Transactions = append(player.Transactions, Transaction{
		Month: "Jul", Day: "1", Year: "20I9", Notes: "waived",
	})

	// the unfiltered log still comes back whole
	all, err := player.TransactionsByYear()
	require.NoError(t, err)
	require.Len(t, all, 4)

	// filtering has to parse every year, so the drifted one surfaces
	_, err = player.TransactionsByYear(2019)
	var formatErr *money.FormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "20I9", formatErr.Raw)
}

func TestAgeYears(t *testing.T) {
	player := testPlayer()
	age, err := player.AgeYears()
	require.NoError(t, err)
	require.Equal(t, 24, age)

	player.Age = "unknown"
	_, err = player.AgeYears()
	require.Error(t, err)
}

func TestExperienceYears(t *testing.T) {
	player := testPlayer()
	player.Experience = "5 Years"
	years, err := player.ExperienceYears()
	require.NoError(t, err)
	require.Equal(t, 5, years)

	player.Experience = "0 Years"
	years, err = player.ExperienceYears()
	require.NoError(t, err)
	require.Equal(t, 0, years)
}

func TestAvgSalary(t *testing.T) {
	player := testPlayer()
	player.Contract.AvgSalary = "$39,446,090"

	avg, err := player.AvgSalary()
	require.NoError(t, err)
	require.Equal(t, "$39,446,090", avg)

	retired := &Player{Name: "Ben Wallace"}
	_, err = retired.AvgSalary()
	require.Error(t, err)
}

func TestPlayerString(t *testing.T) {
	player := testPlayer()
	require.Contains(t, player.String(), "Zion Williamson (PF)")
	require.Contains(t, player.String(), "Current team: New Orleans Pelicans")
	require.Contains(t, player.String(), "2023-24 salary: $34,005,250")

	retired := &Player{
		Name:           "Ben Wallace",
		Position:       "C",
		Team:           "Detroit Pistons",
		CareerEarnings: "$87,916,266",
	}
	require.Contains(t, retired.String(), "Last played for: Detroit Pistons")
	require.Contains(t, retired.String(), "Career earnings: $87,916,266")
}
