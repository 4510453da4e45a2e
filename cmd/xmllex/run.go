package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-isatty"

	"github.com/db47h/xmllex/internal/pool"
	"github.com/db47h/xmllex/internal/store"
	"github.com/db47h/xmllex/lexer"
	"github.com/db47h/xmllex/token"
)

func run(c *cli) error {
	var st *store.Store
	if c.Store != "" {
		var err error
		st, err = store.Open(c.Store, slog.Default())
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}

	// A single Pool outlives every lexOnce call, including every re-lex
	// in --watch mode, so the *lexer.Lexer each call drives is recycled
	// rather than freshly allocated per scan.
	p, err := pool.New(4)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if err := lexOnce(c, st, p); err != nil {
		return err
	}
	if !c.Watch {
		return nil
	}
	return watch(c, st, p)
}

func lexOnce(c *cli, st *store.Store, p *pool.Pool) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.File, err)
	}

	ph := newPrintHost(c.File, data, c.HTML, !c.NoColor && isatty.IsTerminal(os.Stdout.Fd()))
	var h lexer.Host = ph
	if st != nil {
		st.NewRun(c.HTML, ph.HTMLScript, ph.HTMLStyle)
		h = teeHost{print: ph, store: st}
	}

	id, l := p.Begin()
	defer p.End(id)

	start := time.Now()
	l.Advance(h, data, nil)
	elapsed := time.Since(start)

	fmt.Fprintf(os.Stderr, "%s: %s in %s (%d events)\n",
		c.File, humanize.Bytes(uint64(len(data))), elapsed, ph.count)

	errored := l.Current() == lexer.MachineError
	if st != nil {
		st.Finish(errored)
	}
	if errored {
		fmt.Fprintln(os.Stderr, ph.errorReport())
		return fmt.Errorf("lexing %s: stopped in the error machine after %d events", c.File, ph.count)
	}
	return nil
}

// watch re-lexes the file every time fsnotify reports a write,
// grounded on connerohnesorge-spectr's internal/track.Watcher.
func watch(c *cli, st *store.Store, p *pool.Pool) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(c.File); err != nil {
		return fmt.Errorf("watch %s: %w", c.File, err)
	}
	slog.Info("watching for changes", "file", c.File)

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := lexOnce(c, st, p); err != nil {
				slog.Error("lex failed", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "err", err)
		}
	}
}

// teeHost fans every lexer.Host call out to both a printHost and a
// store.Store, so a run with --store set is displayed and recorded from
// the same Advance call. HTML/HTMLScript/HTMLStyle are answered by
// printHost alone: store.Store's own answers are wired to the same
// printHost methods via NewRun, so either source agrees.
type teeHost struct {
	print *printHost
	store *store.Store
}

func (t teeHost) Emit(kind lexer.Kind, start, end int, buf []byte, enc any) {
	t.print.Emit(kind, start, end, buf, enc)
	t.store.Emit(kind, start, end, buf, enc)
}

func (t teeHost) EmitSimple(kind lexer.Kind) {
	t.print.EmitSimple(kind)
	t.store.EmitSimple(kind)
}

func (t teeHost) AdvanceLine(n int) {
	t.print.AdvanceLine(n)
	t.store.AdvanceLine(n)
}

func (t teeHost) HTML() bool       { return t.print.HTML() }
func (t teeHost) HTMLScript() bool { return t.print.HTMLScript() }
func (t teeHost) HTMLStyle() bool  { return t.print.HTMLStyle() }

var kindStyles = map[lexer.Kind]lipgloss.Style{
	lexer.KindText:        lipgloss.NewStyle(),
	lexer.KindElementName: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
	lexer.KindElementNS:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	lexer.KindAttribute:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	lexer.KindAttributeNS: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	lexer.KindStringBody:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	lexer.KindCommentBody: lipgloss.NewStyle().Faint(true),
}

// printHost is a lexer.Host that writes one line per event to stdout,
// colorized by kind when color is enabled. It also builds a token.File
// line index from the bytes it sees, so a run that ends in the error
// machine can report a line:column position with a caret, instead of just
// a raw byte count.
type printHost struct {
	html    bool
	color   bool
	count   int
	lastElt string

	file       *token.File
	data       []byte
	nextLine   int
	lastOffset int
}

func newPrintHost(name string, data []byte, html, color bool) *printHost {
	return &printHost{
		html:     html,
		color:    color,
		file:     token.NewFile(name),
		data:     data,
		nextLine: 2,
	}
}

func (p *printHost) render(kind lexer.Kind, text string) string {
	line := kind.String()
	if text != "" {
		line += " " + fmt.Sprintf("%q", text)
	}
	if !p.color {
		return line
	}
	style, ok := kindStyles[kind]
	if !ok {
		return line
	}
	return style.Render(line)
}

func (p *printHost) Emit(kind lexer.Kind, start, end int, buf []byte, enc any) {
	p.count++
	text := string(buf[start:end])
	if kind == lexer.KindElementName {
		p.lastElt = text
	}
	for i := start; i < end; i++ {
		if buf[i] == '\n' {
			p.file.AddLine(token.Pos(i+1), p.nextLine)
			p.nextLine++
		}
	}
	p.lastOffset = end
	fmt.Println(p.render(kind, text))
}

func (p *printHost) EmitSimple(kind lexer.Kind) {
	p.count++
	fmt.Println(p.render(kind, ""))
}

func (p *printHost) AdvanceLine(n int) {}

func (p *printHost) HTML() bool       { return p.html }
func (p *printHost) HTMLScript() bool { return p.html && p.lastElt == "script" }
func (p *printHost) HTMLStyle() bool  { return p.html && p.lastElt == "style" }

// errorReport renders a line:column diagnostic with a caret at the byte
// offset of the last token emitted before the scan entered the error
// machine — the lexer itself reports no offset for a malformed
// construct, so this is the closest approximation reachable through the
// Host interface.
func (p *printHost) errorReport() string {
	pos := p.file.Position(token.Pos(p.lastOffset))
	lineStart := p.file.LinePos(pos.Line)
	if lineStart < 0 || int(lineStart) > len(p.data) {
		return pos.String()
	}
	lineEnd := len(p.data)
	if next := p.file.LinePos(pos.Line + 1); next >= 0 {
		lineEnd = int(next) - 1
	}
	line := string(p.data[lineStart:lineEnd])
	col := token.CaretColumn(line, p.lastOffset-int(lineStart))
	return fmt.Sprintf("%s\n%s\n%s^", pos, line, strings.Repeat(" ", col))
}
