package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/you-not-fish/labo/internal/config"
	"github.com/you-not-fish/labo/internal/pipeline"
)

const replHelp = `Each line is run as a complete program; variables do not carry over.
Commands:
  :help   show this message
  :notc   toggle static type checking
  :quit   leave the session
`

// session evaluates REPL input. It is separate from the line editor so it
// can be driven from tests.
type session struct {
	conf pipeline.Config
	out  io.Writer
	d    *diagnostics
}

// eval handles one line of input and reports whether the session should
// end.
func (s *session) eval(line string) (quit bool) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case strings.HasPrefix(line, ":"):
		return s.command(line)
	}

	if err := pipeline.Run("<repl>", strings.NewReader(line), s.out, s.conf); err != nil {
		s.d.report(err)
	}
	return false
}

func (s *session) command(cmd string) (quit bool) {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprint(s.out, replHelp)
	case ":notc":
		s.conf.NoTypecheck = !s.conf.NoTypecheck
		state := "on"
		if s.conf.NoTypecheck {
			state = "off"
		}
		fmt.Fprintf(s.out, "type checking %s\n", state)
	default:
		fmt.Fprintf(s.out, "unknown command %s. Type :help for help.\n", cmd)
	}
	return false
}

// historyPath resolves the configured history file; "" disables history.
func historyPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, name)
}

// runREPL reads programs line by line until EOF or :quit.
func runREPL(conf *config.Config, pconf pipeline.Config, stdout io.Writer, d *diagnostics) int {
	fmt.Fprintf(stdout, "Labo %s. Type :help for help.\n", Version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath(conf.HistoryFile)
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	s := &session{conf: pconf, out: stdout, d: d}
	for {
		line, err := ln.Prompt("labo> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(stdout)
			return 0
		}
		if err != nil {
			d.fatal(err)
			return 1
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if s.eval(line) {
			return 0
		}
	}
}
