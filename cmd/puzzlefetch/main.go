package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/puzzlefetch"
	"github.com/fwojciec/puzzlefetch/gamedata"
	"github.com/fwojciec/puzzlefetch/goquery"
	pfhttp "github.com/fwojciec/puzzlefetch/http"
	"github.com/fwojciec/puzzlefetch/rod"
	pfslog "github.com/fwojciec/puzzlefetch/slog"
	"github.com/fwojciec/puzzlefetch/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Archive database path. Set before calling Run().
	DBPath string

	// SQLite database used by the archive service.
	DB *sqlite.DB

	// Archive service for end-to-end testing.
	Archive puzzlefetch.ArchiveService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("puzzlefetch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'puzzlefetch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open the archive database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PUZZLEFETCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Archive = sqlite.NewArchiveService(m.DB)
	deps.Archive = m.Archive

	// Wire the fetch pipelines for commands that hit the network
	command := kongCtx.Command()
	if command == "wordle" || command == "sudoku" || command == "today" {
		var fetcher puzzlefetch.Fetcher
		if cli.Browser {
			fetcher, err = rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
		} else {
			fetcher = pfhttp.NewFetcher()
		}
		defer fetcher.Close()

		logged := pfslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Wordle = goquery.NewWordleService(logged)
		deps.Sudoku = gamedata.NewSudokuService(logged)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PUZZLEFETCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "puzzlefetch.db"
	}
	dir := filepath.Join(home, ".puzzlefetch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "puzzlefetch.db")
}
