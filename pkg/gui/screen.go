package gui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

// ErrNotTerminal is returned when the game is not attached to a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Screen draws frames on a terminal and reads guesses from its keyboard. The
// terminal is held from NewScreen until Close. All methods but Interrupt and
// Close belong to the goroutine running the game.
type Screen struct {
	S     tcell.Screen
	Theme Theme

	frame     Frame
	closeOnce sync.Once
}

// NewScreen takes over the terminal behind s: alternate screen, raw input and
// no cursor.
func NewScreen(s tcell.Screen, t Theme) (*Screen, error) {
	// frames are laid out with box drawing characters one column wide, so
	// they are painted that way too
	runewidth.DefaultCondition.EastAsianWidth = false

	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.SetStyle(t.Style())
	s.HideCursor()
	s.Clear()

	return &Screen{S: s, Theme: t}, nil
}

// Close gives the terminal back. It is safe to call more than once.
func (sc *Screen) Close() {
	sc.closeOnce.Do(func() {
		sc.S.Fini()
	})
}

// Interrupt wakes up a blocked ReadGuess or Pause, which then report a cancel.
func (sc *Screen) Interrupt() {
	_ = sc.S.PostEvent(tcell.NewEventInterrupt(nil))
}

// Update renders c and draws it. Drawing on a tcell screen cannot fail, the
// error is there for other displays.
func (sc *Screen) Update(c Content) error {
	sc.frame = c.RenderTheme(sc.Theme)
	sc.Draw()
	return nil
}

// Draw paints the current frame centred on the screen.
func (sc *Screen) Draw() {
	sc.S.Clear()
	w, h := sc.S.Size()
	for _, p := range sc.frame.Place(w, h) {
		tview.Print(sc.S, p.Text, p.X, p.Y, p.MaxWidth, tview.AlignLeft, sc.Theme.Foreground)
	}
	sc.S.Show()
}

// ReadGuess blocks until a character is typed. ok is false when the player
// cancels the game with Esc or Ctrl-C, or the screen is interrupted. Other keys
// beep and are ignored.
func (sc *Screen) ReadGuess() (r rune, ok bool, err error) {
	for {
		switch ev := sc.S.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return 0, false, nil
		case *tcell.EventResize:
			sc.resize()
		case *tcell.EventKey:
			action, r := classifyKey(ev)
			switch action {
			case KeyGuess:
				return r, true, nil
			case KeyCancel:
				return 0, false, nil
			default:
				_ = sc.S.Beep()
			}
		}
	}
}

// Pause waits for any key press.
func (sc *Screen) Pause() error {
	for {
		switch sc.S.PollEvent().(type) {
		case nil, *tcell.EventInterrupt, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			sc.resize()
		}
	}
}

func (sc *Screen) resize() {
	sc.S.Sync()
	sc.Draw()
}
