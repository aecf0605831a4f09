package spotrac

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"capsheet-backend/lib/htmlutil"
	"capsheet-backend/lib/money"
	"capsheet-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// Player aggregates everything extracted from one player page: the
// biographical fields, the current contract (nil for retired players),
// and the transaction log in page order (typically newest first).
type Player struct {
	Name       string
	Position   string
	Age        string
	Team       string
	Experience string
	Drafted    string
	College    string
	Agent      string

	CareerEarnings       string
	FutureCareerEarnings string

	Current      bool
	Contract     *Contract
	Transactions []Transaction

	// historical earnings rows, kept so BaseSalary can fall back to
	// seasons outside the current contract
	earnings []earningsRow
}

type earningsRow struct {
	season string
	salary string
}

// FetchPlayer fetches and extracts a player page, resolving the url
// from the player's full name. The page heading is compared against the
// requested name; a mismatch means the site served its lookalike "not
// found" page and the build is aborted.
func (c *Client) FetchPlayer(ctx context.Context, team, name string) (*Player, error) {
	ctx, span := tracer.Start(ctx, "FetchPlayer")
	defer span.End()

	entry, err := LookupTeam(team)
	if err != nil {
		span.SetStatus(codes.Error, "unknown team")
		return nil, err
	}

	link := c.playerURL(entry, textutil.Slug(name))
	slog.DebugContext(ctx, "fetching player page", "url", link)

	doc, err := c.fetchDocument(ctx, link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch player page")
		return nil, err
	}

	heading := pageHeading(doc)
	if textutil.NormalizeName(heading) != textutil.NormalizeName(name) {
		span.SetStatus(codes.Error, "page heading does not match requested name")
		return nil, &PlayerNotFoundError{Name: name}
	}

	player, err := parsePlayer(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse player page")
		return nil, err
	}
	return player, nil
}

// FetchPlayerByID is the variant for callers that already know the
// site's id for the player's page. No identity check is possible, the
// displayed heading becomes the player's name.
func (c *Client) FetchPlayerByID(ctx context.Context, team, id string) (*Player, error) {
	ctx, span := tracer.Start(ctx, "FetchPlayerByID")
	defer span.End()

	entry, err := LookupTeam(team)
	if err != nil {
		span.SetStatus(codes.Error, "unknown team")
		return nil, err
	}

	link := c.playerURL(entry, id)
	slog.DebugContext(ctx, "fetching player page", "url", link)

	doc, err := c.fetchDocument(ctx, link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch player page")
		return nil, err
	}

	player, err := parsePlayer(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse player page")
		return nil, err
	}
	return player, nil
}

// the heading carries a trailing site artifact after the name, trim
// anything that isn't part of a display name
func pageHeading(doc *goquery.Document) string {
	heading := htmlutil.Text(doc.Find("h1").First())
	return strings.TrimRightFunc(heading, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.'
	})
}

func parsePlayer(doc *goquery.Document) (*Player, error) {
	player := &Player{
		Name:     pageHeading(doc),
		Position: htmlutil.Text(doc.Find("span.player-item.position").First()),
		Current:  hasCurrentContractHeading(doc),
	}

	parseBioItems(doc, player)

	team, err := parseTeam(doc)
	if err != nil {
		return nil, err
	}
	player.Team = team

	earnings := doc.Find("span.earningsvalue")
	player.CareerEarnings = htmlutil.Text(earnings.First())
	player.FutureCareerEarnings = player.CareerEarnings

	if player.Current {
		contract, err := parseContract(doc)
		if err != nil {
			return nil, fmt.Errorf("parse contract: %w", err)
		}
		player.Contract = contract

		if earnings.Length() > 1 {
			player.FutureCareerEarnings = htmlutil.Text(earnings.Eq(1))
		}
	}

	transactions, err := parseTransactions(doc)
	if err != nil {
		return nil, fmt.Errorf("parse transactions: %w", err)
	}
	player.Transactions = transactions

	player.earnings = parseEarningsTable(doc)

	return player, nil
}

func hasCurrentContractHeading(doc *goquery.Document) bool {
	found := false
	doc.Find("h2").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if htmlutil.Text(h) == "Current Contract" {
			found = true
			return false
		}
		return true
	})
	return found
}

// The bio fields share one run of labeled spans. Scanning by label
// substring survives the site reordering them; a missing label just
// leaves the field absent, colleges and agents legitimately are for
// some players.
func parseBioItems(doc *goquery.Document, player *Player) {
	doc.Find("span.player-item").Each(func(_ int, span *goquery.Selection) {
		text := htmlutil.Text(span)

		if value, ok := textutil.StripLabel(text, "Age:"); ok {
			player.Age = strings.ReplaceAll(value, " ", "")
			return
		}
		if value, ok := textutil.StripLabel(text, "Exp:"); ok {
			// a rookie's experience renders as a bare label
			if value == "" {
				value = "0 Years"
			}
			player.Experience = value
			return
		}
		if value, ok := textutil.StripLabel(text, "Drafted:"); ok {
			player.Drafted = value
			return
		}
		if value, ok := textutil.StripLabel(text, "College:"); ok {
			player.College = value
			return
		}
		if value, ok := textutil.StripLabel(text, "Agent(s):"); ok {
			player.Agent = value
			return
		}
	})
}

func parseTeam(doc *goquery.Document) (string, error) {
	content := doc.Find(`meta[name="keywords"]`).AttrOr("content", "")
	parts := strings.Split(content, ", ")
	if len(parts) < 2 {
		return "", &MarkupError{
			Landmark: `meta[name="keywords"]`,
			Detail:   fmt.Sprintf("expected a comma-separated keyword list with a team, got %q", content),
		}
	}
	return parts[1], nil
}

func parseTransactions(doc *goquery.Document) ([]Transaction, error) {
	var transactions []Transaction
	var itemErr error
	doc.Find("li#transactions div.transitem").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		date := htmlutil.Text(item.Find("span.transdate").First())
		fields := strings.Fields(date)
		if len(fields) != 3 {
			itemErr = &MarkupError{
				Landmark: "span.transdate",
				Detail:   fmt.Sprintf("expected a month/day/year triple, got %q", date),
			}
			return false
		}
		transactions = append(transactions, Transaction{
			Month: fields[0],
			Day:   fields[1],
			Year:  fields[2],
			Notes: htmlutil.Text(item.Find("span.transdesc").First()),
		})
		return true
	})
	if itemErr != nil {
		return nil, itemErr
	}
	return transactions, nil
}

func parseEarningsTable(doc *goquery.Document) []earningsRow {
	var rows []earningsRow
	doc.Find("table.earningstable tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() <= 3 {
			return
		}
		rows = append(rows, earningsRow{
			season: htmlutil.CellText(cells, 0),
			salary: htmlutil.CellText(cells, 3),
		})
	})
	return rows
}

// AgeYears is the player's age in whole years, derived from the
// "23-90d" display form.
func (p *Player) AgeYears() (int, error) {
	yearsText, _, found := strings.Cut(p.Age, "-")
	if !found {
		return 0, &money.FormatError{Kind: "age", Raw: p.Age}
	}
	years, err := strconv.Atoi(yearsText)
	if err != nil {
		return 0, &money.FormatError{Kind: "age", Raw: p.Age}
	}
	return years, nil
}

// ExperienceYears is the player's experience in whole years, derived
// from the "4 Years" display form.
func (p *Player) ExperienceYears() (int, error) {
	fields := strings.Fields(p.Experience)
	if len(fields) == 0 {
		return 0, &money.FormatError{Kind: "experience", Raw: p.Experience}
	}
	years, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, &money.FormatError{Kind: "experience", Raw: p.Experience}
	}
	return years, nil
}

func (p *Player) CareerEarningsInt() (int64, error) {
	return money.ParseDollars(p.CareerEarnings)
}

func (p *Player) FutureCareerEarningsInt() (int64, error) {
	return money.ParseDollars(p.FutureCareerEarnings)
}

// AvgSalary is the average salary on the player's current contract.
func (p *Player) AvgSalary() (string, error) {
	if p.Contract == nil {
		return "", fmt.Errorf("player %s has no current contract", p.Name)
	}
	return p.Contract.AvgSalary, nil
}

// BaseSalary looks up the player's base salary for a season, checking
// the current contract first and the historical earnings table second.
// A well-formed season with no matching row anywhere is an explicit
// not-found, ok == false, not an error.
func (p *Player) BaseSalary(season string) (salary string, ok bool, err error) {
	err = validateSeason(season)
	if err != nil {
		return "", false, err
	}

	if p.Contract != nil {
		for _, year := range p.Contract.ContractYears {
			if year.Season == season {
				return year.BaseSalary, true, nil
			}
		}
	}

	for _, row := range p.earnings {
		if strings.Contains(row.season, season) {
			return row.salary, true, nil
		}
	}

	return "", false, nil
}

// a season must look like "2022-23": a 4-digit start year, a hyphen,
// and the 2-digit year directly after it
func validateSeason(season string) error {
	start, end, found := strings.Cut(season, "-")
	if !found || len(start) != 4 || len(end) != 2 {
		return &InvalidSeasonError{Season: season}
	}
	startYear, err := strconv.Atoi(start)
	if err != nil {
		return &InvalidSeasonError{Season: season}
	}
	endYear, err := strconv.Atoi(end)
	if err != nil {
		return &InvalidSeasonError{Season: season}
	}
	if (startYear%100+1)%100 != endYear {
		return &InvalidSeasonError{Season: season}
	}
	return nil
}

// TransactionsByYear filters the transaction log to the given years,
// preserving page order. No years means the full log. A transaction
// whose scraped year isn't numeric fails the whole filter, that only
// happens when the page's date markup has drifted.
func (p *Player) TransactionsByYear(years ...int) ([]Transaction, error) {
	if len(years) == 0 {
		return p.Transactions, nil
	}
	var filtered []Transaction
	for _, transaction := range p.Transactions {
		year, err := transaction.YearInt()
		if err != nil {
			return nil, fmt.Errorf("transaction %q: %w", transaction.Notes, err)
		}
		for _, want := range years {
			if year == want {
				filtered = append(filtered, transaction)
				break
			}
		}
	}
	return filtered, nil
}

func (p *Player) String() string {
	if p.Current && p.Contract != nil {
		season := ""
		salary := ""
		for _, year := range p.Contract.ContractYears {
			if year.CurrentYear {
				season = year.Season
				salary = year.BaseSalary
			}
		}
		return fmt.Sprintf(
			"%s (%s)\nCurrent team: %s\n%s salary: %s",
			p.Name, p.Position, p.Team, season, salary,
		)
	}
	return fmt.Sprintf(
		"%s (%s)\nLast played for: %s\nCareer earnings: %s",
		p.Name, p.Position, p.Team, p.CareerEarnings,
	)
}
