// Package terminal runs an App on a tcell screen.
package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/hotkey/internal/app"
	"github.com/dshills/hotkey/internal/logging"
)

const helpText = "Tab/Shift+Tab: focus  Ctrl+C: quit"

// Screen renders an App and feeds it key presses from a tcell screen.
type Screen struct {
	screen tcell.Screen
	app    *app.App
	logger *logging.Logger
	title  string

	styleNormal  tcell.Style
	styleFocused tcell.Style
	styleBound   tcell.Style
	styleTitle   tcell.Style
	styleStatus  tcell.Style
}

// New creates a Screen. The tcell screen must already be initialized;
// the caller owns its lifecycle.
func New(screen tcell.Screen, a *app.App, logger *logging.Logger, title string) *Screen {
	if logger == nil {
		logger = logging.NullLogger
	}
	return &Screen{
		screen:       screen,
		app:          a,
		logger:       logger.WithComponent("terminal"),
		title:        title,
		styleNormal:  tcell.StyleDefault,
		styleFocused: tcell.StyleDefault.Reverse(true),
		styleBound:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
		styleTitle:   tcell.StyleDefault.Bold(true),
		styleStatus:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
}

// Run is shorthand for New(screen, a, logger, "hotkey").Run(ctx).
func Run(ctx context.Context, screen tcell.Screen, a *app.App, logger *logging.Logger) error {
	return New(screen, a, logger, "hotkey").Run(ctx)
}

// Run processes events until the app quits or ctx is cancelled. All key
// handling happens on the calling goroutine.
func (s *Screen) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	s.draw()
	for {
		ev := s.screen.PollEvent()
		switch e := ev.(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			s.handleKey(e)
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if s.app.Quitting() {
			return nil
		}
		s.draw()
	}
}

func (s *Screen) handleKey(e *tcell.EventKey) {
	id, mods, ok := Convert(e)
	if !ok {
		s.logger.Debug("ignoring key %s", e.Name())
		return
	}
	s.logger.Debug("key %q mods=%s", id, mods)
	s.app.HandleKey(id, mods)
}

func (s *Screen) draw() {
	s.screen.Clear()
	width, height := s.screen.Size()

	y := 0
	s.drawText(0, y, width, s.styleTitle, s.title)
	y++

	status := s.app.Status()
	bottom := height - len(status) - 1

	for _, line := range s.app.Lines() {
		if y >= bottom {
			break
		}
		text := strings.Repeat("  ", line.Depth) + line.Label
		if line.Listeners > 0 {
			text += fmt.Sprintf(" [%d]", line.Listeners)
		}

		style := s.styleNormal
		switch {
		case line.Focused:
			style = s.styleFocused
		case line.Listeners > 0:
			style = s.styleBound
		}
		s.drawText(0, y, width, style, text)
		y++
	}

	for i, msg := range status {
		s.drawText(0, bottom+i, width, s.styleStatus, msg)
	}
	s.drawText(0, height-1, width, s.styleNormal, helpText)

	s.screen.Show()
}

// drawText draws text at (x, y), clipped to width columns.
func (s *Screen) drawText(x, y, width int, style tcell.Style, text string) {
	if y < 0 {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x += w
	}
}
