package spotrac

import (
	"fmt"
	"strconv"
	"strings"

	"capsheet-backend/lib/htmlutil"
	"capsheet-backend/lib/money"

	"github.com/PuerkitoBio/goquery"
)

// Column positions inside a salary-table season row.
const (
	colSeason = iota
	_
	colAge
	colOption
	colBaseSalary
	colLikelyIncentives
	colUnlikelyIncentives
	colTradeBonus
	colCapHit
	colPctOfCap
	colYearlyCash
	colGuaranteedMoney

	seasonRowCells = colGuaranteedMoney + 1
)

// The contract summary lives in a homogeneous run of value spans that
// carry no distinguishing attributes, so each field is bound to a fixed
// position. Keep these in page order; if the site reorders the spans the
// count check below is the only thing standing between us and silently
// swapped fields.
const (
	spanTerms = iota
	spanAvgSalary
	spanGtdAtSign
	spanSignedUsing
	spanFreeAgent

	summarySpanCount = spanFreeAgent + 1
)

// trailing rows of the salary table that are totals and footnotes, not
// seasons
const trailingSummaryRows = 3

// Contract aggregates every contract-level field of a player's current
// contract plus its per-season rows, earliest season first.
type Contract struct {
	ContractYears []ContractYear
	Summary       string
	Terms         string
	AvgSalary     string
	GtdAtSign     string
	SignedUsing   string
	FreeAgent     string
	Notes         []string
}

func parseContract(doc *goquery.Document) (*Contract, error) {
	years, err := parseContractYears(doc)
	if err != nil {
		return nil, err
	}

	spans := doc.Find("span.playerValue")
	if spans.Length() < summarySpanCount {
		return nil, &MarkupError{
			Landmark: "span.playerValue",
			Detail: fmt.Sprintf(
				"expected at least %d summary spans, found %d",
				summarySpanCount, spans.Length(),
			),
		}
	}

	var notes []string
	doc.Find("div.contract-details li").Each(func(_ int, li *goquery.Selection) {
		notes = append(notes, htmlutil.Text(li))
	})

	return &Contract{
		ContractYears: years,
		Summary:       strings.TrimSpace(doc.Find("p.currentinfo").First().Text()),
		Terms:         htmlutil.Text(spans.Eq(spanTerms)),
		AvgSalary:     htmlutil.Text(spans.Eq(spanAvgSalary)),
		GtdAtSign:     htmlutil.Text(spans.Eq(spanGtdAtSign)),
		SignedUsing:   htmlutil.Text(spans.Eq(spanSignedUsing)),
		FreeAgent:     htmlutil.Text(spans.Eq(spanFreeAgent)),
		Notes:         notes,
	}, nil
}

func parseContractYears(doc *goquery.Document) ([]ContractYear, error) {
	rows := doc.Find("table.salaryTable.current tr")
	if rows.Length() < 1+trailingSummaryRows {
		return nil, &MarkupError{
			Landmark: "table.salaryTable.current",
			Detail:   fmt.Sprintf("expected a header and %d trailing rows, found %d rows total", trailingSummaryRows, rows.Length()),
		}
	}

	var years []ContractYear
	var rowErr error
	// skip the header row and the trailing totals/footnote rows
	rows.Slice(1, rows.Length()-trailingSummaryRows).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		year, err := parseSeasonRow(row)
		if err != nil {
			rowErr = err
			return false
		}
		years = append(years, year)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return years, nil
}

func parseSeasonRow(row *goquery.Selection) (ContractYear, error) {
	cells := row.Find("td")
	if cells.Length() < seasonRowCells {
		return ContractYear{}, &MarkupError{
			Landmark: "table.salaryTable.current td",
			Detail:   fmt.Sprintf("season row has %d cells, expected %d", cells.Length(), seasonRowCells),
		}
	}

	season := htmlutil.CellText(cells, colSeason)

	age := 0
	ageText := htmlutil.CellText(cells, colAge)
	if ageText != "" {
		parsed, err := strconv.Atoi(ageText)
		if err != nil {
			return ContractYear{}, &money.FormatError{Kind: "age", Raw: ageText}
		}
		age = parsed
	}

	return ContractYear{
		Season: season,
		Age:    age,
		// an empty option cell means no option, unlike the money
		// columns it never uses the "-" placeholder
		Option:             htmlutil.CellText(cells, colOption),
		CurrentYear:        row.Find("td.current-year").Length() > 0,
		BaseSalary:         htmlutil.CellText(cells, colBaseSalary),
		LikelyIncentives:   zeroIfPlaceholder(htmlutil.CellText(cells, colLikelyIncentives)),
		UnlikelyIncentives: zeroIfPlaceholder(htmlutil.CellText(cells, colUnlikelyIncentives)),
		TradeBonus:         zeroIfPlaceholder(htmlutil.CellText(cells, colTradeBonus)),
		CapHit:             htmlutil.CellText(cells, colCapHit),
		PctOfCap:           htmlutil.CellText(cells, colPctOfCap),
		YearlyCash:         htmlutil.CellText(cells, colYearlyCash),
		GuaranteedMoney:    htmlutil.CellText(cells, colGuaranteedMoney),
	}, nil
}

// the site renders "-" (or nothing) for incentives and bonuses a
// contract doesn't have
func zeroIfPlaceholder(s string) string {
	if s == "-" || s == "" {
		return "$0"
	}
	return s
}

// Length is the number of seasons in the contract.
func (c *Contract) Length() int {
	return len(c.ContractYears)
}

// YearsRemaining counts seasons from the first one flagged current to
// the end of the contract, inclusive.
func (c *Contract) YearsRemaining() (int, error) {
	for i, year := range c.ContractYears {
		if year.CurrentYear {
			return len(c.ContractYears) - i, nil
		}
	}
	return 0, &MarkupError{
		Landmark: "td.current-year",
		Detail:   "no season row is flagged as the current season",
	}
}

func (c *Contract) AvgSalaryInt() (int64, error) {
	return money.ParseDollars(c.AvgSalary)
}

func (c *Contract) GtdAtSignInt() (int64, error) {
	return money.ParseDollars(c.GtdAtSign)
}

// FreeAgentYear splits the free-agency field into its year and type.
// "2028 / UFA" -> (2028, "UFA")
func (c *Contract) FreeAgentYear() (int, string, error) {
	yearText, kind, found := strings.Cut(c.FreeAgent, " / ")
	if !found {
		return 0, "", &money.FormatError{Kind: "free agency", Raw: c.FreeAgent}
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return 0, "", &money.FormatError{Kind: "free agency", Raw: c.FreeAgent}
	}
	return year, kind, nil
}
