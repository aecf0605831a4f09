package spotrac

import "fmt"

// UnknownTeamError reports a team key that is not in the team registry.
type UnknownTeamError struct {
	Key string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("unknown team %q, check your spelling", e.Key)
}

// FetchError reports a non-success response for a player page.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s returned status %d", e.URL, e.StatusCode)
}

// PlayerNotFoundError reports that the fetched page's heading does not
// match the requested player. The site serves a lookalike "not found"
// page with a 200 status, so this is the only misspelling signal.
type PlayerNotFoundError struct {
	Name string
}

func (e *PlayerNotFoundError) Error() string {
	return fmt.Sprintf("cannot find a player page for %q, check your spelling", e.Name)
}

// InvalidSeasonError reports a caller-supplied season string that does
// not have the "2022-23" shape.
type InvalidSeasonError struct {
	Season string
}

func (e *InvalidSeasonError) Error() string {
	return fmt.Sprintf("season %q is not formatted properly, expected e.g. \"2022-23\"", e.Season)
}

// UnknownMonthError reports a transaction month abbreviation outside
// the twelve recognized ones.
type UnknownMonthError struct {
	Month string
}

func (e *UnknownMonthError) Error() string {
	return fmt.Sprintf("unrecognized month abbreviation %q", e.Month)
}

// MarkupError reports a page whose markup has drifted from the shape
// the extractors assume. Landmark names the selector or element that
// failed so the drift is diagnosable without re-scraping.
type MarkupError struct {
	Landmark string
	Detail   string
}

func (e *MarkupError) Error() string {
	return fmt.Sprintf("unexpected markup at %s: %s", e.Landmark, e.Detail)
}
