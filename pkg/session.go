package pkg

import (
	"fmt"

	"github.com/qnkhuat/hangterm/pkg/gui"
	"github.com/qnkhuat/hangterm/pkg/hangman"
	"github.com/qnkhuat/hangterm/pkg/words"
	"github.com/rs/zerolog"
)

// Display is where a session draws its frames and reads guesses from.
type Display interface {
	// ReadGuess blocks until a guess is typed. ok is false if the player
	// gave up.
	ReadGuess() (r rune, ok bool, err error)
	Update(gui.Content) error
	// Pause waits for any key.
	Pause() error
}

// Session plays one game of hangman on a Display.
type Session struct {
	Hint string
	Game *hangman.Game
	Log  zerolog.Logger
}

func NewSession(w words.Word, log zerolog.Logger) (*Session, error) {
	game, err := hangman.New(w.Word, hangman.ASCIIAlphabet)
	if err != nil {
		return nil, err
	}
	return &Session{Hint: w.Hint, Game: game, Log: log}, nil
}

// Run plays until the game ends or the player gives up. Once the game is
// over the final frame stays up until a key is pressed.
func (s *Session) Run(d Display) error {
	c := s.content(knownDisplay(s.Game.KnownLetters()), gui.StartMessage())
	if err := d.Update(c); err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	for {
		guess, ok, err := d.ReadGuess()
		if err != nil {
			return fmt.Errorf("read guess: %w", err)
		}
		if !ok {
			s.Log.Info().Msg("Player gave up")
			return nil
		}

		res := s.Game.Guess(guess)
		s.Log.Debug().
			Str("guess", string(guess)).
			Stringer("response", res.Kind).
			Int("count", res.Count).
			Msg("Guess")

		display := knownDisplay(s.Game.KnownLetters())
		var msg gui.Message
		switch res.Kind {
		case hangman.GoodGuess:
			for i, cd := range display {
				if cd.Kind == gui.DisplayPlain && cd.Char == res.Guess {
					display[i] = gui.Highlighted(cd.Char)
				}
			}
			msg = gui.GoodGuessMessage(res.Guess, res.Count)
		case hangman.BadGuess:
			msg = gui.BadGuessMessage(res.Guess)
		case hangman.AlreadyGuessed:
			msg = gui.AlreadyGuessedMessage(res.Guess)
		case hangman.InvalidGuess:
			msg = gui.InvalidGuessMessage(res.Guess)
		default:
			msg = gui.InvalidGuessMessage(guess)
		}

		fate := s.Game.Fate()
		if fate != nil {
			if fate.Won {
				msg = gui.WonMessage()
			} else {
				for i, cd := range display {
					if cd.Kind == gui.DisplayBlank {
						display[i] = gui.Highlighted(fate.Lost.Word[i])
					}
				}
				msg = gui.LostMessage()
			}
		}

		c := s.content(display, msg)
		if err := d.Update(c); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		if c.GameOver {
			s.Log.Info().Bool("won", fate.Won).Str("gallows", s.Game.Gallows().String()).Msg("Game over")
			if err := d.Pause(); err != nil {
				return fmt.Errorf("pause: %w", err)
			}
			return nil
		}
	}
}

func (s *Session) content(display []gui.CharDisplay, msg gui.Message) gui.Content {
	letters := s.Game.Letters()
	opts := make([]gui.LetterOption, len(letters))
	for i, l := range letters {
		opts[i] = gui.LetterOption{Char: l.Char, Available: !l.Guessed}
	}

	return gui.Content{
		Hint:         s.Hint,
		Gallows:      s.Game.Gallows(),
		GuessOptions: opts,
		WordDisplay:  display,
		Message:      msg,
		GameOver:     msg.IsGameOver(),
	}
}

func knownDisplay(known []rune) []gui.CharDisplay {
	out := make([]gui.CharDisplay, len(known))
	for i, r := range known {
		if r == hangman.Hidden {
			out[i] = gui.Blank()
		} else {
			out[i] = gui.Plain(r)
		}
	}
	return out
}
