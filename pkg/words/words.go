// Package words picks the secret word for a game, either a fixed one or a
// random record from a word list.
//
// A word list is comma separated text without a header. The first field of
// each record is the word and the optional second field is its hint. Fields
// are trimmed and records may have any number of fields.
package words

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

//go:embed words.csv
var builtin string

var (
	ErrNoWords   = errors.New("no words found")
	ErrEmptyWord = errors.New("word is empty")
)

// Word is a secret word and the hint shown with it. Hint may be empty.
type Word struct {
	Word string
	Hint string
}

// Source produces a secret word.
type Source interface {
	Fetch(rng *rand.Rand) (Word, error)
}

type builtinSource struct{}

// Builtin draws from the word list compiled into the binary.
func Builtin() Source { return builtinSource{} }

func (builtinSource) Fetch(rng *rand.Rand) (Word, error) {
	w, err := Choose(strings.NewReader(builtin), rng)
	if err != nil {
		panic(fmt.Sprintf("builtin word list: %v", err))
	}
	return w, nil
}

type fixedSource Word

// Fixed always returns word with the given hint.
func Fixed(word, hint string) Source {
	return fixedSource{Word: word, Hint: hint}
}

func (s fixedSource) Fetch(*rand.Rand) (Word, error) {
	if strings.TrimSpace(s.Word) == "" {
		return Word{}, ErrEmptyWord
	}
	return Word(s), nil
}

type fileSource string

// File draws from the word list at path. A path of "-" reads standard input.
func File(path string) Source { return fileSource(path) }

func (s fileSource) Fetch(rng *rand.Rand) (Word, error) {
	var r io.Reader = os.Stdin
	if s != "-" {
		f, err := os.Open(string(s))
		if err != nil {
			return Word{}, fmt.Errorf("failed to open words file: %w", err)
		}
		defer f.Close()
		r = f
	}

	w, err := Choose(r, rng)
	if err != nil {
		return Word{}, fmt.Errorf("failed to read words file: %w", err)
	}
	return w, nil
}

// Choose reads every record from r and returns one of them picked uniformly
// at random. Records with a blank word are skipped.
func Choose(r io.Reader, rng *rand.Rand) (Word, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var (
		chosen Word
		seen   int
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Word{}, err
		}

		w := Word{Word: strings.TrimSpace(record[0])}
		if w.Word == "" {
			continue
		}
		if len(record) > 1 {
			w.Hint = strings.TrimSpace(record[1])
		}

		seen++
		if rng.Intn(seen) == 0 {
			chosen = w
		}
	}
	if seen == 0 {
		return Word{}, ErrNoWords
	}
	return chosen, nil
}
