package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/hangterm/pkg"
	"github.com/qnkhuat/hangterm/pkg/gui"
	"github.com/qnkhuat/hangterm/pkg/words"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var version = "dev"

const usage = `Usage: hangterm [options]

Play hangman in the terminal.

Options:
  -w, --word WORD         use WORD as the secret word
  -H, --hint TEXT         show TEXT as a hint; needs --word
  -f, --words-file PATH   pick a random word from the CSV file at PATH ("-" for stdin)
      --log PATH          append debug logs to PATH
      --log-level LEVEL   log level (default "info")
  -h, --help              show this help
  -V, --version           show the version
`

// errUsage marks errors caused by bad command line arguments.
var errUsage = errors.New("usage")

type options struct {
	word      string
	hint      string
	wordsFile string
	logPath   string
	logLevel  string
	version   bool
}

func parseFlags(args []string, stdout io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("hangterm", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }

	fs.StringVar(&o.word, "w", "", "")
	fs.StringVar(&o.word, "word", "", "")
	fs.StringVar(&o.hint, "H", "", "")
	fs.StringVar(&o.hint, "hint", "", "")
	fs.StringVar(&o.wordsFile, "f", "", "")
	fs.StringVar(&o.wordsFile, "words-file", "", "")
	fs.StringVar(&o.logPath, "log", "", "")
	fs.StringVar(&o.logLevel, "log-level", "info", "")
	fs.BoolVar(&o.version, "V", false, "")
	fs.BoolVar(&o.version, "version", false, "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return o, err
		}
		return o, fmt.Errorf("%w: %v", errUsage, err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	wordSet := set["w"] || set["word"]

	switch {
	case fs.NArg() > 0:
		return o, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	case wordSet && o.wordsFile != "":
		return o, fmt.Errorf("%w: --word and --words-file cannot be used together", errUsage)
	case (set["H"] || set["hint"]) && !wordSet:
		return o, fmt.Errorf("%w: --hint requires --word", errUsage)
	case wordSet && strings.TrimSpace(o.word) == "":
		return o, fmt.Errorf("%w: %v", errUsage, words.ErrEmptyWord)
	}
	if _, err := zerolog.ParseLevel(o.logLevel); err != nil {
		return o, fmt.Errorf("%w: invalid log level %q", errUsage, o.logLevel)
	}
	return o, nil
}

func (o options) source() words.Source {
	switch {
	case o.word != "":
		return words.Fixed(o.word, o.hint)
	case o.wordsFile != "":
		return words.File(o.wordsFile)
	default:
		return words.Builtin()
	}
}

// checkTerminal fails unless the game can both draw on stdout and read keys
// from stdin. stdin is not checked when it carries the word list.
func checkTerminal(stdin, stdout *os.File, stdinUsed bool) error {
	if !term.IsTerminal(int(stdout.Fd())) {
		return fmt.Errorf("standard output is %w", gui.ErrNotTerminal)
	}
	if !stdinUsed && !term.IsTerminal(int(stdin.Fd())) {
		return fmt.Errorf("standard input is %w", gui.ErrNotTerminal)
	}
	return nil
}

func newRand() *rand.Rand {
	var seed int64
	if err := binary.Read(crand.Reader, binary.LittleEndian, &seed); err != nil {
		panic(err)
	}
	return rand.New(rand.NewSource(seed))
}

func printError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "hangterm: %v\n", err)
}

func run(args []string, stdin, stdout *os.File, stderr io.Writer) int {
	o, err := parseFlags(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		printError(stderr, err)
		return 2
	}
	if o.version {
		fmt.Fprintf(stdout, "hangterm %s\n", version)
		return 0
	}

	log, closer, err := pkg.InitLog(o.logPath, o.logLevel, "game")
	if err != nil {
		printError(stderr, err)
		return 1
	}
	defer closer.Close()

	w, err := o.source().Fetch(newRand())
	if err != nil {
		printError(stderr, err)
		return 1
	}
	session, err := pkg.NewSession(w, log)
	if err != nil {
		printError(stderr, err)
		return 1
	}

	if err := checkTerminal(stdin, stdout, o.wordsFile == "-"); err != nil {
		printError(stderr, err)
		return 1
	}
	if err := play(session, log); err != nil {
		log.Error().Err(err).Msg("Game failed")
		printError(stderr, err)
		return 1
	}
	return 0
}

func play(session *pkg.Session, log zerolog.Logger) error {
	ts, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen, err := gui.NewScreen(ts, gui.ThemeBasic)
	if err != nil {
		return err
	}
	defer screen.Close()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	done := make(chan struct{})
	defer close(done)
	go interruptOnSignal(sigc, done, screen.Interrupt, log)

	return session.Run(screen)
}

// interruptOnSignal calls interrupt on the first signal from sigc. It returns
// after that or once done is closed.
func interruptOnSignal(sigc <-chan os.Signal, done <-chan struct{}, interrupt func(), log zerolog.Logger) {
	select {
	case sig := <-sigc:
		log.Info().Str("signal", sig.String()).Msg("Interrupted")
		interrupt()
	case <-done:
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
