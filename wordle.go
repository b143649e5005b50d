package puzzlefetch

import "context"

// WordleAnswer is the day's Wordle answer as scraped from the aggregator.
type WordleAnswer struct {
	// Date is the local calendar date of the fetch, formatted YYYY-MM-DD.
	Date string `json:"date"`

	// Word is the 5-letter uppercase answer.
	Word string `json:"word"`

	// Puzzle is the display label, e.g. "Wordle #1234".
	Puzzle string `json:"puzzle"`
}

// Validate returns an error if the answer violates its invariants.
func (a *WordleAnswer) Validate() error {
	if a.Date == "" {
		return Errorf(EINVALID, "wordle answer date required")
	}
	if len(a.Word) != hiddenWordLength {
		return Errorf(EINVALID, "wordle answer word must be %d letters, got %q", hiddenWordLength, a.Word)
	}
	for _, r := range a.Word {
		if r < 'A' || r > 'Z' {
			return Errorf(EINVALID, "wordle answer word must be uppercase ASCII letters, got %q", a.Word)
		}
	}
	return nil
}

// WordleService fetches the day's Wordle answer.
type WordleService interface {
	// TodayAnswer fetches and extracts today's answer.
	// Returns ENOTFOUND if the page contains no qualifying answer row.
	TodayAnswer(ctx context.Context) (*WordleAnswer, error)
}
