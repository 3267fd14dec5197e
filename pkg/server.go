package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gossh "golang.org/x/crypto/ssh"
)

// ServerConfig configures the SSH front door. Every field can be set from the
// environment or a .env file.
type ServerConfig struct {
	Addr        string        `env:"HANGTERM_SSH_ADDR" envDefault:":2222"`
	Binary      string        `env:"HANGTERM_BINARY,required"`
	HostKey     string        `env:"HANGTERM_HOST_KEY"`
	IdleTimeout time.Duration `env:"HANGTERM_IDLE_TIMEOUT" envDefault:"5m"`
	WordsFile   string        `env:"HANGTERM_WORDS_FILE"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadServerConfig reads the given .env files, or ./.env when none are given,
// and then the environment. Missing files are ignored.
func LoadServerConfig(files ...string) (ServerConfig, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ServerConfig{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.HostKey == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ServerConfig{}, err
		}
		cfg.HostKey = path.Join(homeDir, ".ssh", "id_rsa")
	}
	return cfg, nil
}

// Server runs a game in a pseudo-terminal for every SSH session.
type Server struct {
	*ssh.Server
	Config ServerConfig
	Log    zerolog.Logger
}

func NewServer(cfg ServerConfig, log zerolog.Logger) (*Server, error) {
	server := &Server{Config: cfg, Log: log}
	s := &ssh.Server{
		Addr:        cfg.Addr,
		IdleTimeout: cfg.IdleTimeout,
		Handler:     server.handle,
		PtyCallback: func(ctx ssh.Context, req ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if cfg.HostKey != "" {
		if err := s.SetOption(ssh.HostKeyFile(cfg.HostKey)); err != nil {
			return nil, fmt.Errorf("host key: %w", err)
		}
	}
	server.Server = s
	return server, nil
}

// command builds the game process for a client with the environment environ
// and a terminal of type term.
func (s *Server) command(ctx context.Context, environ []string, term string) *exec.Cmd {
	var args []string
	if s.Config.WordsFile != "" {
		args = append(args, "--words-file", s.Config.WordsFile)
	}
	cmd := exec.CommandContext(ctx, s.Config.Binary, args...)
	cmd.Env = append(append([]string(nil), environ...), fmt.Sprintf("TERM=%s", term))
	return cmd
}

func (s *Server) handle(sshSession ssh.Session) {
	log := s.Log.With().
		Str("session", petname.Generate(2, "-")).
		Str("user", sshSession.User()).
		Str("remote", sshSession.RemoteAddr().String()).
		Logger()

	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		log.Info().Msg("Refused session without a terminal")
		io.WriteString(sshSession, "failed to start hangman: non-interactive terminals are not supported\n")
		sshSession.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := s.command(cmdCtx, sshSession.Environ(), ptyReq.Term)
	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		log.Error().Err(err).Msg("Failed to start game")
		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sshSession.Exit(1)
		return
	}
	defer f.Close()
	log.Info().Int("pid", cmd.Process.Pid).Str("term", ptyReq.Term).Msg("Game started")

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				log.Debug().Err(err).Msg("Failed to resize terminal")
			}
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	status := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			status = exitErr.ExitCode()
		} else {
			status = 1
		}
	}
	log.Info().Int("status", status).Msg("Game ended")
	sshSession.Exit(status)
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}
