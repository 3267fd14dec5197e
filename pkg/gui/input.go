package gui

import (
	"github.com/gdamore/tcell/v2"
)

type KeyAction int

const (
	// KeyReject is any key that is neither a guess nor a way out
	KeyReject KeyAction = iota
	KeyGuess
	KeyCancel
)

type keybinding struct {
	k tcell.Key
	a KeyAction
}

var keybindings = []keybinding{
	{k: tcell.KeyEscape, a: KeyCancel},
	{k: tcell.KeyCtrlC, a: KeyCancel},
}

// classifyKey decides what a key press means to the game. Characters typed
// with no modifier other than shift are guesses.
func classifyKey(ev *tcell.EventKey) (KeyAction, rune) {
	k := ev.Key()
	for _, bind := range keybindings {
		if bind.k == k {
			return bind.a, 0
		}
	}

	if k != tcell.KeyRune {
		return KeyReject, 0
	}
	if ev.Modifiers()&^tcell.ModShift != 0 {
		return KeyReject, 0
	}
	return KeyGuess, ev.Rune()
}
