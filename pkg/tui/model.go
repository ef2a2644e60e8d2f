// Package tui is the Bubble Tea interface for browsing the calendar and
// recording moods.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/picker"
	"tableflip.dev/moodcal/pkg/store"
	"tableflip.dev/moodcal/pkg/tui/help"
	"tableflip.dev/moodcal/pkg/tui/theme"
)

type mode int

const (
	modeCalendar mode = iota
	modePicker
	modeGoto
	modeHelp
)

const toastTTL = 4 * time.Second

type storeChangedMsg struct {
	change store.Change
}

type watchStartedMsg struct {
	err error
}

type toastExpiredMsg struct {
	seq int
}

// Model is the calendar UI.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc

	nav    *calendar.Nav
	month  calendar.Month
	cursor entry.Date
	today  entry.Date

	flow *picker.Flow
	mode mode

	toast    *picker.Notice
	toastSeq int
	status   string

	changes     chan store.Change
	unsubscribe func()

	input textinput.Model
	help  *help.Model
	theme theme.Theme

	termWidth  int
	termHeight int
}

// New creates a UI model backed by svc, opened on the month containing now
// (clamped to the entry window).
func New(svc *app.Service, now time.Time) *Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD or YYYY-MM"
	ti.CharLimit = 10
	ti.Prompt = "go to: "

	ctx, cancel := context.WithCancel(context.Background())
	today := entry.DateOf(now)
	start := svc.InitialMonth(now)

	m := &Model{
		svc:     svc,
		ctx:     ctx,
		cancel:  cancel,
		nav:     svc.Nav(start),
		today:   today,
		changes: make(chan store.Change, 16),
		input:   ti,
		help:    help.New(60, 20),
		theme:   theme.Default(),
	}
	m.flow = svc.Picker(picker.NotifierFunc(m.notify))
	m.cursor = entry.DateOf(m.nav.Month())
	if today.SameMonth(m.cursor) {
		m.cursor = today
	}
	if unsub, err := svc.Subscribe(m.forward); err == nil {
		m.unsubscribe = unsub
	}
	m.rebuild()
	return m
}

// Run launches the UI and blocks until the user quits.
func Run(svc *app.Service) error {
	m := New(svc, time.Now())
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Close stops the watcher and store subscription.
func (m *Model) Close() {
	m.cancel()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Init starts watching the store for outside changes.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(startWatchCmd(m.ctx, m.svc), m.waitForChange())
}

func startWatchCmd(ctx context.Context, svc *app.Service) tea.Cmd {
	return func() tea.Msg {
		return watchStartedMsg{err: svc.Watch(ctx)}
	}
}

// forward runs on whichever goroutine changed the store.
func (m *Model) forward(c store.Change) {
	select {
	case m.changes <- c:
	default:
	}
}

func (m *Model) waitForChange() tea.Cmd {
	ch, done := m.changes, m.ctx.Done()
	return func() tea.Msg {
		select {
		case c := <-ch:
			return storeChangedMsg{change: c}
		case <-done:
			return nil
		}
	}
}

func (m *Model) notify(n picker.Notice) {
	m.toast = &n
	m.toastSeq++
}

func (m *Model) toastCmd() tea.Cmd {
	seq := m.toastSeq
	return tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func (m *Model) rebuild() {
	month, err := m.svc.Month(m.ctx, m.nav.Month())
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.month = month
}

// Update handles Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.SetSize(min(msg.Width-2, 80), msg.Height-4)
	case watchStartedMsg:
		if msg.err != nil && !errors.Is(msg.err, store.ErrNotWatchable) {
			m.status = "watch: " + msg.err.Error()
		}
	case storeChangedMsg:
		m.rebuild()
		cmds = append(cmds, m.waitForChange())
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
	case tea.KeyPressMsg:
		seq := m.toastSeq
		if m.handleKeyPress(msg, &cmds) {
			return m, tea.Quit
		}
		if m.toastSeq != seq {
			cmds = append(cmds, m.toastCmd())
		}
	default:
		if m.mode == modeHelp {
			cmds = append(cmds, m.help.Update(msg))
		}
	}
	return m, tea.Batch(cmds...)
}

// handleKeyPress routes keys by mode and reports whether to quit.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if msg.String() == "ctrl+c" {
		return true
	}
	switch m.mode {
	case modePicker:
		m.handlePickerKey(msg)
	case modeGoto:
		m.handleGotoKey(msg, cmds)
	case modeHelp:
		switch msg.String() {
		case "q", "esc", "?":
			m.mode = modeCalendar
		default:
			*cmds = append(*cmds, m.help.Update(msg))
		}
	default:
		return m.handleCalendarKey(msg, cmds)
	}
	return false
}

func (m *Model) handleCalendarKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "q":
		return true
	case "esc":
		m.toast = nil
	case "h", "left":
		m.moveCursor(-1)
	case "l", "right":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-7)
	case "j", "down":
		m.moveCursor(7)
	case "[", "pgup":
		m.showMonth(m.nav.Prev())
	case "]", "pgdown":
		m.showMonth(m.nav.Next())
	case "t":
		m.jump(m.today)
	case "g":
		m.mode = modeGoto
		m.input.Reset()
		*cmds = append(*cmds, m.input.Focus())
	case "enter", "space", " ":
		if m.flow.Activate(m.cursor) {
			m.toast = nil
			m.mode = modePicker
		}
	case "?":
		m.mode = modeHelp
	}
	return false
}

func (m *Model) handlePickerKey(msg tea.KeyPressMsg) {
	switch key := msg.String(); key {
	case "esc", "q":
		m.flow.Cancel()
	case "enter":
		if _, err := m.flow.Commit(); err != nil {
			return
		}
	case "left", "up", "shift+tab", "k":
		m.flow.Step(-1)
	case "right", "down", "tab", "j":
		m.flow.Step(1)
	case "1", "2", "3", "4":
		m.flow.Choose(mood.All()[int(key[0]-'1')])
	default:
		if v, err := mood.Parse(key); err == nil {
			m.flow.Choose(v)
		}
	}
	if m.flow.State() == picker.Closed {
		m.mode = modeCalendar
	}
}

func (m *Model) handleGotoKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.mode = modeCalendar
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		m.mode = modeCalendar
		d, err := entry.ParseDate(value)
		if err != nil {
			if d, err = entry.ParseMonth(value); err != nil {
				m.notify(picker.Notice{Kind: picker.Error, Title: "Unknown date", Message: value})
				return
			}
		}
		m.jump(d)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

// moveCursor shifts the cursor by days, following it across months while the
// window allows.
func (m *Model) moveCursor(days int) {
	next := m.cursor.AddDays(days)
	if next.SameMonth(m.cursor) {
		m.cursor = next
		return
	}
	m.jump(next)
}

// jump shows d's month and selects d. A month outside the window is clamped
// and the cursor lands on the nearest day of the shown month.
func (m *Model) jump(d entry.Date) {
	shown := entry.DateOf(m.nav.Jump(d.Time))
	m.rebuild()
	switch {
	case d.SameMonth(shown):
		m.cursor = d
	case d.Before(shown):
		m.cursor = shown
	default:
		m.cursor = shown.LastOfMonth()
	}
}

func (m *Model) showMonth(month time.Time) {
	first := entry.DateOf(month)
	m.rebuild()
	day := m.cursor.Day()
	if last := first.LastOfMonth().Day(); day > last {
		day = last
	}
	m.cursor = entry.NewDate(first.Year(), first.Month(), day)
}

// View renders the UI.
func (m *Model) View() string {
	if m.mode == modeHelp {
		return m.help.View()
	}

	opts := m.theme.Calendar
	opts.Today = m.today
	opts.Selected = m.cursor

	var body strings.Builder
	body.WriteString(m.theme.Panel.Title.Render(m.titleLine()))
	body.WriteString("\n\n")
	body.WriteString(calendar.Render(m.month, opts))
	body.WriteString("\n\n")
	body.WriteString(m.legendLine())

	sections := []string{m.theme.Panel.Frame.Render(body.String())}
	if m.mode == modePicker {
		sections = append(sections, m.pickerView())
	}
	if m.toast != nil {
		sections = append(sections, m.theme.Toast.For(m.toast.Kind).Render(m.toast.String()))
	}
	sections = append(sections, m.footer())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) titleLine() string {
	title := m.month.First.Format("January 2006")
	var marks []string
	if !m.nav.AtStart() {
		marks = append(marks, "[ prev")
	}
	if !m.nav.AtEnd() {
		marks = append(marks, "next ]")
	}
	if len(marks) == 0 {
		return title
	}
	return title + "   " + strings.Join(marks, "  ")
}

func (m *Model) legendLine() string {
	parts := make([]string, 0, len(mood.All())+1)
	for _, v := range mood.All() {
		parts = append(parts, theme.MoodStyle(v).Render(v.Glyph().Symbol+" "+v.String()))
	}
	parts = append(parts, "• journal  ◦ event")
	return strings.Join(parts, "  ")
}

func (m *Model) pickerView() string {
	mt := m.theme.Modal
	pending, hasPending := m.flow.Pending()

	var b strings.Builder
	b.WriteString(mt.Title.Render("How did you feel on " + m.flow.Date().Long() + "?"))
	b.WriteString("\n\n")
	opts := make([]string, 0, len(mood.All()))
	for i, v := range mood.All() {
		label := fmt.Sprintf("%d %s %s", i+1, v.Glyph().Symbol, v.Title())
		style := mt.Option.Inherit(theme.MoodStyle(v))
		if hasPending && v == pending {
			style = mt.Selected.Inherit(theme.MoodStyle(v))
		}
		opts = append(opts, style.Render(label))
	}
	b.WriteString(strings.Join(opts, " "))
	b.WriteString("\n\n")
	save := mt.Disabled.Render("enter save")
	if m.flow.CanCommit() {
		save = mt.Action.Render("enter save")
	}
	b.WriteString(save + "   esc cancel")
	return mt.Frame.Render(b.String())
}

func (m *Model) footer() string {
	ft := m.theme.Footer
	switch m.mode {
	case modeGoto:
		return ft.Prompt.Render(m.input.View())
	case modePicker:
		return ft.Help.Render("1-4 choose · ←/→ cycle · enter save · esc cancel")
	}
	line := ft.Help.Render("←↑↓→ move · [ ] month · t today · g go to · enter record · ? help · q quit")
	if m.status != "" {
		line += "\n" + ft.Status.Render(m.status)
	}
	return line
}
