// yale-tui is an interactive romanizer. Output follows the input as it is
// typed; the labial rule, separator, interlinear view and label language are
// toggled from the keyboard. With --history-db, conversions can be saved and
// restored.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/jusunglee/yaleconv/internal/db/backend"
	"github.com/jusunglee/yaleconv/internal/history"
	"github.com/jusunglee/yaleconv/internal/i18n"
	"github.com/jusunglee/yaleconv/internal/logger"
	"github.com/jusunglee/yaleconv/internal/yale"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()
	logger.Init()

	fs := ff.NewFlagSet("yale-tui")
	var (
		historyDB  = fs.StringLong("history-db", "", "PostgreSQL URL or SQLite file for conversion history; empty disables history")
		maxHistory = fs.IntLong("max-history", history.DefaultMaxUnpinned, "unpinned history entries to keep")
		lang       = fs.StringEnumLong("lang", "label language", string(i18n.Japanese), string(i18n.Korean))
		separator  = fs.StringLong("separator", "", "initial separator")
		labial     = fs.BoolLongDefault("labial", true, "start with the labial rule on")
		printOut   = fs.BoolLong("print", "print the final output to stdout on exit")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("YALE")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	var store *history.Store
	if *historyDB != "" {
		repo, err := backend.Open(context.Background(), *historyDB)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer repo.Close()
		store = history.NewStore(repo, *maxHistory)
		logger.Info("history enabled", "backend", backend.Name(*historyDB))
	}

	m := newModel(store, i18n.Parse(*lang), yale.Options{
		LabialRule: *labial,
		Separator:  yale.NormalizeSeparator(*separator),
	})

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if *printOut {
		fmt.Println(final.(model).output())
	}
	return nil
}
