// yale romanizes Hangul from the command line. Positional arguments are
// converted as one text; with none, stdin is converted line by line.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joho/godotenv"
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
	return run(os.Args[1:], os.Stdin, os.Stdout)
}

type config struct {
	opts        yale.Options
	interlinear bool
	tabs        bool
	reference   bool
	text        []string
}

func parseFlags(args []string, stdout io.Writer) (config, error) {
	fs := ff.NewFlagSet("yale")
	var (
		separator   = fs.StringLong("separator", "", "string placed between romanized jamo (first character is used)")
		labial      = fs.BoolLongDefault("labial", true, "write ㅜ as u after ㅁ ㅂ ㅃ ㅍ")
		interlinear = fs.BoolLong("interlinear", "print each line with its romanization underneath")
		tabs        = fs.BoolLong("tabs", "replace spaces in the output with tabs")
		reference   = fs.BoolLong("reference", "print the jamo to Yale table and exit")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("YALE")); err != nil {
		fmt.Fprintf(stdout, "%s\n", ffhelp.Flags(fs))
		return config{}, err
	}

	sep := yale.NormalizeSeparator(*separator)
	if sep != *separator {
		logger.Warn("separator truncated to its first character", "given", *separator, "using", sep)
	}

	return config{
		opts: yale.Options{
			LabialRule: *labial,
			Separator:  sep,
		},
		interlinear: *interlinear,
		tabs:        *tabs,
		reference:   *reference,
		text:        fs.GetArgs(),
	}, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args, stdout)
	if errors.Is(err, ff.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	if cfg.reference {
		fmt.Fprintln(stdout, renderReference(yale.Reference()))
		return nil
	}

	if len(cfg.text) > 0 {
		return cfg.write(stdout, strings.Join(cfg.text, " "))
	}

	logger.Debug("reading stdin", "labial", cfg.opts.LabialRule, "separator", cfg.opts.Separator)
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lines := 0
	for scanner.Scan() {
		if err := cfg.write(stdout, scanner.Text()); err != nil {
			return err
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	logger.Debug("done", "lines", lines)
	return nil
}

func (c config) write(w io.Writer, text string) error {
	if c.interlinear {
		for _, line := range yale.Interlinear(text, c.opts) {
			var err error
			if c.tabs {
				_, err = fmt.Fprintln(w, line.TSV())
			} else {
				_, err = fmt.Fprintf(w, "%s\n%s\n", line.Top(), line.Bottom())
			}
			if err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		return nil
	}

	out := yale.Convert(text, c.opts)
	if c.tabs {
		out = yale.Tabify(out)
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderReference(ref yale.ReferenceTable) string {
	sections := []struct {
		title   string
		entries []yale.ReferenceEntry
	}{
		{"onset", ref.Onset},
		{"nucleus", ref.Nucleus},
		{"coda", ref.Coda},
	}

	var b strings.Builder
	for _, s := range sections {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(s.title, "yale").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		for _, e := range s.entries {
			t.Row(e.Jamo, e.Yale)
		}
		b.WriteString(t.Render())
		b.WriteString("\n")
	}
	b.WriteString(ref.Note)
	return b.String()
}
