// Package set records the mood of a day from the command line.
package set

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/printers"
)

type Set struct {
	Service *app.Service
	On      entry.Date
	// Mood is required unless Interactive is set.
	Mood        *mood.Mood
	Interactive bool
	JSON        bool
	Now         func() time.Time

	Stdin  io.ReadCloser
	Stdout io.WriteCloser
	Out    io.Writer

	// selectMood and promptDate replace the terminal prompts in tests.
	selectMood func(label string, glyphs []mood.Glyph, cursor int) (int, error)
	promptDate func(label, def string, validate func(string) error) (string, error)
}

func (s *Set) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not set, no service")
	}

	if s.On.IsZero() {
		if !s.Interactive {
			return errors.New("a date is required")
		}
		d, err := s.askDate()
		if err != nil {
			return err
		}
		s.On = d
	}
	if !s.Service.Eligible(s.On) {
		return fmt.Errorf("%w: %s", app.ErrIneligible, s.On.Long())
	}

	if s.Mood == nil {
		if !s.Interactive {
			return errors.New("a mood is required")
		}
		m, err := s.askMood(ctx)
		if err != nil {
			return err
		}
		s.Mood = &m
	}

	rec, err := s.Service.Record(ctx, s.On, *s.Mood)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: s.Out}
	if s.JSON {
		return pp.JSON(rec)
	}
	pp.NewLine()
	pp.Title(rec.Date.Long())
	pp.Records(rec)
	return nil
}

func (s *Set) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Set) askDate() (entry.Date, error) {
	validate := func(in string) error {
		d, err := entry.ParseDate(strings.TrimSpace(in))
		if err != nil {
			return errors.New("expected YYYY-MM-DD")
		}
		if !s.Service.Eligible(d) {
			return fmt.Errorf("outside %s", s.Service.Window)
		}
		return nil
	}

	def := entry.DateOf(s.now())
	if !s.Service.Eligible(def) {
		def = entry.DateOf(s.Service.Window.ClampMonth(s.now()))
		if !s.Service.Eligible(def) && !s.Service.Window.Start.IsZero() {
			def = s.Service.Window.Start
		}
	}

	prompt := s.promptDate
	if prompt == nil {
		prompt = s.runDatePrompt
	}
	raw, err := prompt("Day", def.Key(), validate)
	if err != nil {
		return entry.Date{}, err
	}
	return entry.ParseDate(strings.TrimSpace(raw))
}

func (s *Set) askMood(ctx context.Context) (mood.Mood, error) {
	all := mood.All()
	glyphs := make([]mood.Glyph, 0, len(all))
	for _, m := range all {
		glyphs = append(glyphs, m.Glyph())
	}

	cursor := 0
	if current, ok, err := s.Service.Mood(ctx, s.On); err == nil && ok {
		cursor = int(current)
	}

	sel := s.selectMood
	if sel == nil {
		sel = s.runMoodSelect
	}
	i, err := sel(fmt.Sprintf("How did you feel on %s", s.On.Long()), glyphs, cursor)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(all) {
		return 0, fmt.Errorf("no mood at index %d", i)
	}
	return all[i], nil
}

func (s *Set) runMoodSelect(label string, glyphs []mood.Glyph, cursor int) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Symbol }} {{ .Meaning | cyan }}",
		Inactive: "   {{ .Symbol }} {{ .Meaning }}",
		Selected: "➜  {{ .Symbol }} {{ .Meaning | green }}",
		Details: `
key: {{ .Key }}`,
	}

	searcher := func(input string, index int) bool {
		g := glyphs[index]
		input = strings.ToLower(strings.TrimSpace(input))
		return strings.Contains(g.Meaning, input) || g.Key == input
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     glyphs,
		Templates: templates,
		Size:      len(glyphs),
		CursorPos: cursor,
		Searcher:  searcher,
		Stdin:     s.stdin(),
		Stdout:    s.stdout(),
	}
	i, _, err := prompt.Run()
	return i, err
}

func (s *Set) runDatePrompt(label, def string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Validate:  validate,
		Stdin:     s.stdin(),
		Stdout:    s.stdout(),
	}
	return prompt.Run()
}

func (s *Set) stdin() io.ReadCloser {
	if s.Stdin != nil {
		return s.Stdin
	}
	return os.Stdin
}

func (s *Set) stdout() io.WriteCloser {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

// NopCloser returns a WriteCloser with a no-op Close method wrapping w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
