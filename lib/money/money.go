// Package money normalizes the formatted value text the contract site
// displays (dollar amounts, cap percentages, season labels) into numeric
// types. All parsers fail with *FormatError; they never guess at
// placeholder tokens like "-", the caller substitutes those first.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatError reports value text that does not match the shape the site
// normally renders. Raw is kept verbatim so markup drift is diagnosable
// from the error alone.
type FormatError struct {
	Kind string
	Raw  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %s value %q", e.Kind, e.Raw)
}

// ParseDollars converts a displayed dollar amount like "$34,005,250"
// to its integer value.
func ParseDollars(s string) (int64, error) {
	stripped := strings.TrimPrefix(s, "$")
	stripped = strings.ReplaceAll(stripped, ",", "")
	amount, err := strconv.ParseInt(stripped, 10, 64)
	if err != nil {
		return 0, &FormatError{Kind: "currency", Raw: s}
	}
	return amount, nil
}

// ParsePercent converts a displayed percentage like "25.90%" to its
// decimal value, 0.259.
func ParsePercent(s string) (float64, error) {
	stripped := strings.TrimSuffix(s, "%")
	pct, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0, &FormatError{Kind: "percentage", Raw: s}
	}
	return pct / 100, nil
}

// ParseSeason splits a season label like "2023-24" into its start and end
// years (2023, 2024). The end year borrows the start year's century; a
// "00" suffix rolls the century over, so "1999-00" yields (1999, 2000).
func ParseSeason(s string) (int, int, error) {
	startText, suffixText, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, &FormatError{Kind: "season", Raw: s}
	}
	start, err := strconv.Atoi(startText)
	if err != nil {
		return 0, 0, &FormatError{Kind: "season", Raw: s}
	}
	suffix, err := strconv.Atoi(suffixText)
	if err != nil {
		return 0, 0, &FormatError{Kind: "season", Raw: s}
	}

	century := start / 100
	if suffixText == "00" {
		century++
	}
	return start, century*100 + suffix, nil
}
