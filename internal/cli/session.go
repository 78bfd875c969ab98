// Package cli runs the interactive sessions that tune word scores: playing
// through solver output one word at a time, and reviewing a finished puzzle.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/beedazzle/internal/utils"
	"github.com/bastiangx/beedazzle/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/samber/lo"
)

// ErrAborted is returned when the user interrupts a session.
var ErrAborted = errors.New("session aborted")

// LineReader is the prompt source. *readline.Instance satisfies it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

// NewReadline opens a readline prompt on in/out. An empty historyFile
// disables history.
func NewReadline(in io.ReadCloser, out io.Writer, historyFile string) (LineReader, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "q",
		Stdin:           in,
		Stdout:          out,
	})
	if err != nil {
		return nil, fmt.Errorf("open prompt: %w", err)
	}
	return l, nil
}

// Stats counts the score changes a session applied.
type Stats struct {
	Accepted int
	Rejected int
}

// Session applies accept/reject feedback from a user to a trie.
type Session struct {
	trie  *trie.Trie
	in    LineReader
	out   io.Writer
	style lipgloss.Style
	color bool
}

// NewSession creates a session reading answers from in and writing
// messages to out.
func NewSession(t *trie.Trie, in LineReader, out io.Writer, color bool) *Session {
	return &Session{
		trie:  t,
		in:    in,
		out:   out,
		style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		color: color,
	}
}

func (s *Session) highlight(word string) string {
	if !s.color {
		return word
	}
	return s.style.Render(word)
}

// readLine maps readline's end conditions onto io.EOF and ErrAborted.
func (s *Session) readLine(prompt string) (string, error) {
	s.in.SetPrompt(prompt)
	line, err := s.in.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrAborted
	case err != nil:
		return "", io.EOF
	}
	return line, nil
}

// Play asks about every word in turn. "y" (or an empty answer) accepts the
// word and "n" rejects it. EOF stops early; changes made so far stay.
func (s *Session) Play(words []string) (Stats, error) {
	var stats Stats
	for _, word := range words {
		for {
			line, err := s.readLine(fmt.Sprintf("Is %s a word? Y/n: ", s.highlight(word)))
			if errors.Is(err, io.EOF) {
				return stats, nil
			}
			if err != nil {
				return stats, err
			}

			answer := strings.ToLower(strings.TrimSpace(line))
			if answer == "" || answer == "y" {
				if err := s.trie.AcceptWord(word); err != nil {
					return stats, err
				}
				stats.Accepted++
				break
			}
			if answer == "n" {
				if err := s.trie.RejectWord(word); err != nil {
					return stats, err
				}
				stats.Rejected++
				break
			}
			fmt.Fprintln(s.out, "Input not understood, try again")
		}
	}
	return stats, nil
}

// Retrospective collects the words a finished puzzle accepted. Entry ends
// with "q" or EOF; a line holding a single space drops the last word.
// Entered words are accepted and every other word the solver finds for
// letters and center is rejected.
func (s *Session) Retrospective(letters string, center rune) (Stats, error) {
	var stats Stats
	solved, err := s.trie.Solve(letters, center)
	if err != nil {
		return stats, err
	}

	entered, err := s.collectWords()
	if err != nil {
		return stats, err
	}

	for _, word := range entered {
		if err := s.trie.AcceptWord(word); err != nil {
			log.Warnf("Skipping %q: %v", word, err)
			continue
		}
		stats.Accepted++
	}
	for _, word := range lo.Without(solved, entered...) {
		if err := s.trie.RejectWord(word); err != nil {
			return stats, err
		}
		stats.Rejected++
	}
	return stats, nil
}

func (s *Session) collectWords() ([]string, error) {
	var entered []string
	prompt := "Please enter the first word: "
	for {
		line, err := s.readLine(prompt)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		prompt = "Next word: "

		if line == " " {
			if len(entered) > 0 {
				entered = entered[:len(entered)-1]
			}
			continue
		}
		word := utils.NormalizeWord(line)
		if word == "q" {
			break
		}
		if word == "" {
			continue
		}
		entered = append(entered, word)
	}
	return lo.Uniq(entered), nil
}
