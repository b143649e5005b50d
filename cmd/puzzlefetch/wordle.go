package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/puzzlefetch"
)

// Run executes the wordle command.
func (c *WordleCmd) Run(deps *Dependencies) error {
	answer, err := deps.Wordle.TodayAnswer(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", puzzlefetch.ErrorMessage(err))
		return err
	}

	archivePuzzle(deps, puzzlefetch.KindWordle, answer.Date, answer)

	if c.JSON {
		encoded, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(encoded))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s (%s): %s\n", answer.Puzzle, answer.Date, answer.Word)
	return nil
}
