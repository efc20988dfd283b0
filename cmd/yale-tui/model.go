package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/yaleconv/internal/history"
	"github.com/jusunglee/yaleconv/internal/i18n"
	"github.com/jusunglee/yaleconv/internal/yale"
	"github.com/samber/lo"
)

type view int

const (
	viewEdit view = iota
	viewReference
	viewHistory
)

// separators are the chips cycled with ctrl+e.
var separators = []string{"", "-", ".", "·", " "}

const opTimeout = 5 * time.Second

type model struct {
	input       textarea.Model
	opts        yale.Options
	interlinear bool
	lang        i18n.Lang
	view        view

	store   *history.Store
	entries []history.Entry
	cursor  int

	status string
	err    error
	width  int
}

type savedMsg struct{ entry history.Entry }
type historyMsg struct{ entries []history.Entry }
type errMsg struct{ err error }

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	chipStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("240"))

	activeChipStyle = chipStyle.
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	outputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func newModel(store *history.Store, lang i18n.Lang, opts yale.Options) model {
	ta := textarea.New()
	ta.Placeholder = "한글"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.Focus()

	return model{
		input: ta,
		opts:  opts,
		lang:  lang,
		store: store,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 4 {
			m.input.SetWidth(msg.Width - 4)
		}
		return m, nil

	case savedMsg:
		m.err = nil
		m.status = fmt.Sprintf("saved #%d", msg.entry.ID)
		return m, nil

	case historyMsg:
		m.err = nil
		m.entries = msg.entries
		m.cursor = min(m.cursor, max(len(m.entries)-1, 0))
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.view {
		case viewReference:
			return m.updateReference(msg)
		case viewHistory:
			return m.updateHistory(msg)
		}
		return m.updateEdit(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "ctrl+l":
		m.opts.LabialRule = !m.opts.LabialRule
		return m, nil
	case "ctrl+e":
		m.opts.Separator = nextSeparator(m.opts.Separator)
		return m, nil
	case "ctrl+t":
		m.interlinear = !m.interlinear
		return m, nil
	case "ctrl+g":
		m.lang = i18n.Toggle(m.lang)
		return m, nil
	case "ctrl+r":
		m.view = viewReference
		return m, nil
	case "ctrl+s":
		if m.store == nil || yale.TrimBlank(m.input.Value()) == "" {
			return m, nil
		}
		return m, saveCmd(m.store, m.input.Value(), m.opts)
	case "ctrl+o":
		if m.store == nil {
			return m, nil
		}
		m.view = viewHistory
		m.cursor = 0
		return m, loadCmd(m.store)
	}

	m.status = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateReference(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "ctrl+r":
		m.view = viewEdit
	}
	return m, nil
}

func (m model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "ctrl+o":
		m.view = viewEdit
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil
	case "X":
		return m, storeCmd(m.store, func(ctx context.Context, s *history.Store) error { return s.Clear(ctx) })
	}

	if len(m.entries) == 0 {
		return m, nil
	}
	selected := m.entries[m.cursor]

	switch msg.String() {
	case "enter":
		m.input.SetValue(selected.Text)
		m.opts = selected.Options
		m.view = viewEdit
		m.status = fmt.Sprintf("restored #%d", selected.ID)
	case "p":
		return m, storeCmd(m.store, func(ctx context.Context, s *history.Store) error {
			_, err := s.TogglePin(ctx, selected.ID)
			return err
		})
	case "d":
		return m, storeCmd(m.store, func(ctx context.Context, s *history.Store) error { return s.Delete(ctx, selected.ID) })
	}
	return m, nil
}

func nextSeparator(current string) string {
	i := lo.IndexOf(separators, current)
	return separators[(i+1)%len(separators)]
}

func saveCmd(store *history.Store, text string, opts yale.Options) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		entry, err := store.Add(ctx, text, opts)
		if err != nil {
			return errMsg{err}
		}
		return savedMsg{entry}
	}
}

func loadCmd(store *history.Store) tea.Cmd {
	return storeCmd(store, func(context.Context, *history.Store) error { return nil })
}

// storeCmd runs op and then reloads the list.
func storeCmd(store *history.Store, op func(context.Context, *history.Store) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := op(ctx, store); err != nil {
			return errMsg{err}
		}
		entries, err := store.List(ctx)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg{entries}
	}
}

func (m model) output() string {
	text := m.input.Value()
	if !m.interlinear {
		return yale.Convert(text, m.opts)
	}
	lines := lo.Map(yale.Interlinear(text, m.opts), func(l yale.InterlinearLine, _ int) string {
		return l.Top() + "\n" + activeStyle.Render(l.Bottom())
	})
	return strings.Join(lines, "\n\n")
}

func (m model) View() string {
	labels := i18n.For(m.lang)
	var s strings.Builder

	switch m.view {
	case viewReference:
		s.WriteString(titleStyle.Render(labels.ReferenceTitle))
		s.WriteString("\n")
		s.WriteString(renderReference(labels))
		s.WriteString("\n\n")
		s.WriteString(labelStyle.Render("esc: " + labels.Close))
		return s.String()
	case viewHistory:
		s.WriteString(titleStyle.Render(labels.HistoryTitle))
		s.WriteString("\n")
		s.WriteString(m.renderHistory(labels))
		s.WriteString("\n\n")
		s.WriteString(labelStyle.Render("enter: restore • p: pin • d: delete • X: " + labels.ClearHistory + " • esc: " + labels.Close))
		return s.String()
	}

	s.WriteString(titleStyle.Render("Yale"))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render(labels.Input))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")

	s.WriteString(m.renderOptions(labels))
	s.WriteString("\n\n")

	s.WriteString(labelStyle.Render(labels.Output))
	s.WriteString("\n")
	s.WriteString(outputStyle.Render(m.output()))
	s.WriteString("\n")

	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render("✗ " + m.err.Error()))
	case m.status != "":
		s.WriteString(completedStyle.Render("✓ " + m.status))
	}
	s.WriteString("\n")

	help := "ctrl+l labial • ctrl+e separator • ctrl+t interlinear • ctrl+r reference • ctrl+g " + labels.Toggle
	if m.store != nil {
		help += " • ctrl+s save • ctrl+o " + labels.OpenHistory
	}
	s.WriteString(labelStyle.Render(help + " • esc quit"))
	return s.String()
}

func (m model) renderOptions(labels i18n.Labels) string {
	check := func(on bool, label string) string {
		if on {
			return activeStyle.Render("[x] " + label)
		}
		return labelStyle.Render("[ ] " + label)
	}

	chips := lo.Map(separators, func(sep string, _ int) string {
		if sep == m.opts.Separator {
			return activeChipStyle.Render(i18n.SeparatorLabel(sep))
		}
		return chipStyle.Render(i18n.SeparatorLabel(sep))
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		check(m.opts.LabialRule, labels.Labial)+"   "+check(m.interlinear, labels.Interlinear),
		labelStyle.Render(labels.Separator+" ")+lipgloss.JoinHorizontal(lipgloss.Top, chips...),
	)
}

func (m model) renderHistory(labels i18n.Labels) string {
	if len(m.entries) == 0 {
		return labelStyle.Render(labels.EmptyHistory)
	}
	rows := lo.Map(m.entries, func(e history.Entry, i int) string {
		pin := "  "
		if e.Pinned {
			pin = "★ "
		}
		line := fmt.Sprintf("%s%s  %s  %s",
			pin,
			e.Preview(),
			labelStyle.Render(i18n.SeparatorLabel(e.Options.Separator)),
			labelStyle.Render(e.CreatedAt.Local().Format("01-02 15:04")),
		)
		if i == m.cursor {
			return activeStyle.Render("> ") + line
		}
		return "  " + line
	})
	return strings.Join(rows, "\n")
}

func renderReference(labels i18n.Labels) string {
	ref := yale.Reference()
	column := func(title string, entries []yale.ReferenceEntry) string {
		rows := lo.Map(entries, func(e yale.ReferenceEntry, _ int) string {
			return fmt.Sprintf("%s  %s", e.Jamo, activeStyle.Render(e.Yale))
		})
		return lipgloss.NewStyle().MarginRight(4).Render(
			lipgloss.JoinVertical(lipgloss.Left, append([]string{labelStyle.Render(title)}, rows...)...),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			column(labels.OnsetTitle, ref.Onset),
			column(labels.NucleusTitle, ref.Nucleus),
			column(labels.CodaTitle, ref.Coda),
		),
		"",
		labelStyle.Render(labels.SilentOnsetNote),
	)
}
