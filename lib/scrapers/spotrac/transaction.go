package spotrac

import (
	"fmt"
	"strconv"
	"time"

	"capsheet-backend/lib/money"
)

var monthsByAbbrev = map[string]time.Month{
	"Jan": time.January,
	"Feb": time.February,
	"Mar": time.March,
	"Apr": time.April,
	"May": time.May,
	"Jun": time.June,
	"Jul": time.July,
	"Aug": time.August,
	"Sep": time.September,
	"Oct": time.October,
	"Nov": time.November,
	"Dec": time.December,
}

// Transaction is one entry of a player's career transaction log. Date
// parts are stored verbatim as scraped, no zero padding.
type Transaction struct {
	Month string
	Day   string
	Year  string
	Notes string
}

// MonthNumber maps the stored 3-letter month abbreviation to its 1-12
// ordinal.
func (t Transaction) MonthNumber() (time.Month, error) {
	month, ok := monthsByAbbrev[t.Month]
	if !ok {
		return 0, &UnknownMonthError{Month: t.Month}
	}
	return month, nil
}

func (t Transaction) DayInt() (int, error) {
	day, err := strconv.Atoi(t.Day)
	if err != nil {
		return 0, &money.FormatError{Kind: "day", Raw: t.Day}
	}
	return day, nil
}

func (t Transaction) YearInt() (int, error) {
	year, err := strconv.Atoi(t.Year)
	if err != nil {
		return 0, &money.FormatError{Kind: "year", Raw: t.Year}
	}
	return year, nil
}

// FullDate joins the scraped date parts with single spaces.
// E.g. "Jul 06 2022"
func (t Transaction) FullDate() string {
	return fmt.Sprintf("%s %s %s", t.Month, t.Day, t.Year)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s\n%s", t.FullDate(), t.Notes)
}
