// Package puzzlefetch fetches daily puzzles from third-party web pages and
// normalizes them into stable, typed records. It scrapes the day's Wordle
// answer from a word-puzzle aggregator's answers table and the day's hard
// Sudoku from the game-data blob embedded in the puzzle provider's page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package puzzlefetch
