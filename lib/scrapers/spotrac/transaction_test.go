package spotrac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthNumber(t *testing.T) {
	month, err := Transaction{Month: "Jul"}.MonthNumber()
	require.NoError(t, err)
	require.Equal(t, time.July, month)

	month, err = Transaction{Month: "Jan"}.MonthNumber()
	require.NoError(t, err)
	require.Equal(t, time.January, month)

	_, err = Transaction{Month: "Jly"}.MonthNumber()
	var unknownMonth *UnknownMonthError
	require.ErrorAs(t, err, &unknownMonth)
	require.Equal(t, "Jly", unknownMonth.Month)
}

func TestFullDate(t *testing.T) {
	transaction := Transaction{
		Month: "Jul",
		Day:   "6",
		Year:  "2022",
		Notes: "Signed a 5 year extension.",
	}
	require.Equal(t, "Jul 6 2022", transaction.FullDate())

	day, err := transaction.DayInt()
	require.NoError(t, err)
	require.Equal(t, 6, day)

	year, err := transaction.YearInt()
	require.NoError(t, err)
	require.Equal(t, 2022, year)
}
