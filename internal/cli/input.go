// Package cli is an interactive lookup loop for trying the dictionaries from
// a terminal.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/lingvo/pkg/grammar"
	"github.com/bastiangx/lingvo/pkg/morph"
	"github.com/bastiangx/lingvo/pkg/server"
	"github.com/bastiangx/lingvo/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	inexactStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

const help = `commands:
  <word>          similar lookup of an adjective
  =<word>         exact lookup, every homonym
  ~<word>         adverb lookup
  ?<prefix>       complete a headword
  :help           this text`

// InputHandler reads one command per line and prints the results.
type InputHandler struct {
	engine       *server.Engine
	in           io.Reader
	out          io.Writer
	logger       *log.Logger
	suggestLimit int
}

// NewInputHandler creates a handler reading from in and printing to out.
func NewInputHandler(engine *server.Engine, in io.Reader, out io.Writer, logger *log.Logger, limit int) *InputHandler {
	return &InputHandler{
		engine:       engine,
		in:           in,
		out:          out,
		logger:       logger,
		suggestLimit: limit,
	}
}

// Start runs the loop until the input ends.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, "lingvo CLI, type :help for commands (Ctrl+D to exit)")
	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

func (h *InputHandler) handleInput(line string) {
	start := time.Now()
	defer func() {
		h.logger.Debugf("Took [ %v ] for %q", time.Since(start), line)
	}()

	switch {
	case line == ":help":
		fmt.Fprintln(h.out, help)
	case strings.HasPrefix(line, "?"):
		h.complete(line[1:])
	case strings.HasPrefix(line, "="):
		h.lookup(suggest.KindAdjective, server.ModeAll, line[1:])
	case strings.HasPrefix(line, "~"):
		h.lookup(suggest.KindAdverb, server.ModeOne, line[1:])
	default:
		h.lookup(suggest.KindAdjective, server.ModeSimilar, line)
	}
}

func (h *InputHandler) complete(prefix string) {
	suggestions, err := h.engine.Complete(prefix, h.suggestLimit)
	if err != nil {
		h.logger.Error(err)
		return
	}
	if len(suggestions) == 0 {
		fmt.Fprintf(h.out, "no headwords start with %q\n", prefix)
		return
	}
	for i, s := range suggestions {
		fmt.Fprintf(h.out, "%2d. %s %s\n", i+1, wordStyle.Render(s.Word), labelStyle.Render(strings.Join(s.Kinds, ", ")))
	}
}

func (h *InputHandler) lookup(kind, mode, word string) {
	words, err := h.engine.Lookup(kind, mode, word, "", h.suggestLimit)
	if err != nil {
		h.logger.Error(err)
		return
	}
	if len(words) == 0 {
		fmt.Fprintf(h.out, "%q not found\n", word)
		return
	}
	for _, p := range words {
		h.printParadigm(p)
	}
}

func (h *InputHandler) printParadigm(p morph.Paradigm) {
	header := wordStyle.Render(p.Word) + " " + labelStyle.Render(p.Comparability)
	if p.Inexact {
		header += " " + inexactStyle.Render("~"+p.Key)
	}
	fmt.Fprintln(h.out, header)

	for _, g := range grammar.AllGenders {
		forms, ok := p.Forms[g.String()]
		if !ok {
			continue
		}
		row := make([]string, 0, len(grammar.Cases))
		for _, c := range grammar.Cases {
			row = append(row, forms[c.String()])
		}
		fmt.Fprintf(h.out, "  %-18s %s\n", labelStyle.Render(g.String()), strings.Join(row, " "))
	}
	if len(p.Short) > 0 {
		row := make([]string, 0, len(grammar.Genders))
		for _, g := range grammar.Genders {
			if f, ok := p.Short[g.String()]; ok {
				row = append(row, f)
			}
		}
		fmt.Fprintf(h.out, "  %-18s %s\n", labelStyle.Render("short"), strings.Join(row, " "))
	}
	if len(p.Comparatives) > 0 {
		row := make([]string, 0, len(grammar.Comparisons))
		for _, c := range grammar.Comparisons {
			if f, ok := p.Comparatives[c.String()]; ok {
				row = append(row, f)
			}
		}
		fmt.Fprintf(h.out, "  %-18s %s\n", labelStyle.Render("comparative"), strings.Join(row, " "))
	}
}
