// Package goquery provides the goquery-based Wordle answer extractor.
// The aggregator publishes answers in an HTML table and hides the word
// itself inside a display:none span; parsing sees the hidden text
// regardless of CSS.
package goquery

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/puzzlefetch"
)

// AnswersURL is the aggregator page listing recent Wordle answers.
const AnswersURL = "https://wordfinder.yourdictionary.com/wordle/answers/"

const (
	rowSelector        = "table tbody tr"
	cellSelector       = "td"
	hiddenSpanSelector = `span[style*="display:none"]`
)

// Ensure WordleService implements puzzlefetch.WordleService at compile time.
var _ puzzlefetch.WordleService = (*WordleService)(nil)

// WordleService extracts the day's Wordle answer from the aggregator's
// answers table.
type WordleService struct {
	// Fetcher retrieves the answers page.
	Fetcher puzzlefetch.Fetcher

	// URL overrides the answers page location. Defaults to AnswersURL.
	URL string

	// Now reports the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewWordleService creates a WordleService fetching the live answers page.
func NewWordleService(fetcher puzzlefetch.Fetcher) *WordleService {
	return &WordleService{
		Fetcher: fetcher,
		URL:     AnswersURL,
		Now:     time.Now,
	}
}

// TodayAnswer fetches the answers page and extracts the first row's answer.
func (s *WordleService) TodayAnswer(ctx context.Context) (*puzzlefetch.WordleAnswer, error) {
	url := s.URL
	if url == "" {
		url = AnswersURL
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	return s.extractAnswer(html)
}

// extractAnswer scans table body rows in document order and returns the
// first row whose answer cell hides a valid 5-letter word. The table
// lists the most recent puzzle first, so first-success-wins returns
// today's answer only while that ordering holds; if the source ever
// reorders, this silently returns a stale row.
func (s *WordleService) extractAnswer(html string) (*puzzlefetch.WordleAnswer, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, puzzlefetch.Errorf(puzzlefetch.EINVALID, "failed to parse answers page: %v", err)
	}

	var answer *puzzlefetch.WordleAnswer
	doc.Find(rowSelector).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find(cellSelector)

		// Cell layout: date, puzzle number, answer. Rows with fewer
		// than three cells produce empty selections and are skipped.
		// The date cell's text is not used for the result date; the
		// result always carries today's local date.
		puzzleCell := puzzlefetch.CollapseText(cells.Eq(1).Text())

		var word string
		cells.Eq(2).Find(hiddenSpanSelector).EachWithBreak(func(_ int, span *goquery.Selection) bool {
			w, ok := puzzlefetch.HiddenWord(span.Text())
			if ok {
				word = w
			}
			return !ok
		})
		if word == "" {
			return true // no qualifying span, try the next row
		}

		answer = &puzzlefetch.WordleAnswer{
			Date:   s.now().Format("2006-01-02"),
			Word:   word,
			Puzzle: puzzlefetch.FormatPuzzleLabel(puzzleCell),
		}
		return false
	})

	if answer == nil {
		return nil, puzzlefetch.Errorf(puzzlefetch.ENOTFOUND, "wordle answer not found on page")
	}

	return answer, nil
}

func (s *WordleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
