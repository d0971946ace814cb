package subtitle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mgpai22/srtlint/internal/logging"
)

const (
	byteOrderMark  = "\ufeff"
	rangeDelimiter = "-->"
)

type lexState uint8

const (
	stateCounter lexState = iota
	stateTime
	stateSub
)

// cursor walks the input lines; done() is the only end-of-input condition.
type cursor struct {
	lines []string
	pos   int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.lines)
}

func (c *cursor) current() (string, bool) {
	if c.done() {
		return "", false
	}
	return c.lines[c.pos], true
}

// 1-based number of the current line
func (c *cursor) lineNumber() int {
	return c.pos + 1
}

func (c *cursor) advance() {
	if !c.done() {
		c.pos++
	}
}

type counterMark struct {
	value uint64
	line  int
}

// Lexer turns the lines of a SubRip file into tokens. A Lexer is single use:
// Lex consumes its input.
type Lexer struct {
	cur    cursor
	state  lexState
	opts   Options
	log    *logging.Logger
	issues int
	last   counterMark
}

// NewLexer prepares lines for tokenizing. The caller's slice is not modified.
func NewLexer(lines []string, opts Options) (*Lexer, error) {
	log := opts.logger()

	if len(lines) == 0 {
		log.Error("File is empty.")
		return nil, ErrEmptyInput
	}

	input := make([]string, len(lines), len(lines)+1)
	copy(input, lines)

	// the trailing blank line terminates the final block
	if input[len(input)-1] != "" {
		if opts.Verbose {
			log.Info("Re-added extra empty line at the end as it was removed unintentionally.")
		}
		input = append(input, "")
	}

	if strings.HasPrefix(input[0], byteOrderMark) {
		input[0] = strings.TrimPrefix(input[0], byteOrderMark)
		if opts.Verbose {
			log.Info("Detected BOM.")
		}
	}

	return &Lexer{
		cur:   cursor{lines: input},
		state: stateCounter,
		opts:  opts,
		log:   log,
	}, nil
}

// Lex returns the token stream, always terminated by an EOF token, and the
// number of non-fatal issues found. Fatal problems are logged once and
// returned as a *SyntaxError.
func (l *Lexer) Lex() ([]Token, int, error) {
	var tokens []Token

	for !l.cur.done() {
		next, emitted, err := l.step()
		if err != nil {
			l.log.Error("%v", err)
			return nil, l.issues, err
		}
		tokens = append(tokens, emitted...)
		l.state = next
	}

	tokens = append(tokens, EOFToken())
	return tokens, l.issues, nil
}

func (l *Lexer) step() (lexState, []Token, error) {
	switch l.state {
	case stateCounter:
		return l.lexCounter()
	case stateTime:
		return l.lexTime()
	default:
		return l.lexSub()
	}
}

func (l *Lexer) lexCounter() (lexState, []Token, error) {
	line, _ := l.cur.current()
	n := l.cur.lineNumber()

	value, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return stateCounter, nil, &SyntaxError{
			Line: n,
			Err:  fmt.Errorf("%w but the line has unexpected values: %q", ErrMalformedCounter, line),
		}
	}

	if value != l.last.value+1 {
		l.issues++
		l.log.Warning(
			"(line %d) The last sequential subtitle count was %d (line %d), but now we're at %d. Check your file, something possibly went wrong.",
			n, l.last.value, l.last.line, value,
		)
	}

	if l.opts.Strict && l.last == (counterMark{}) && value != 1 {
		l.log.Warning(
			"(line %d) This is supposed to be the first subtitle in this file but the sequential counter is not `1` (found `%d`).",
			n, value,
		)
	}

	l.last = counterMark{value: value, line: n}
	l.cur.advance()
	return stateTime, []Token{CountToken(value, n)}, nil
}

func (l *Lexer) lexTime() (lexState, []Token, error) {
	line, _ := l.cur.current()
	n := l.cur.lineNumber()

	parts := strings.Split(line, rangeDelimiter)
	if len(parts) != 2 {
		return stateTime, nil, &SyntaxError{
			Line: n,
			Err:  fmt.Errorf("%w after the sequential counter: %q", ErrMalformedTimeRange, line),
		}
	}

	start, err := l.decodeTimestamp(strings.TrimSpace(parts[0]), n)
	if err != nil {
		return stateTime, nil, err
	}
	end, err := l.decodeTimestamp(strings.TrimSpace(parts[1]), n)
	if err != nil {
		return stateTime, nil, err
	}

	l.cur.advance()
	return stateSub, []Token{StartTimeToken(start, n), EndTimeToken(end, n)}, nil
}

func (l *Lexer) lexSub() (lexState, []Token, error) {
	start := l.cur.lineNumber()
	var lines []string

	for {
		line, ok := l.cur.current()
		if !ok {
			break
		}
		l.cur.advance()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return stateCounter, []Token{SubtitleToken(lines, start)}, nil
}

func (l *Lexer) decodeTimestamp(s string, line int) (uint64, error) {
	ms, canonical, err := ParseTimestamp(s)
	if err != nil {
		return 0, &SyntaxError{Line: line, Err: err}
	}

	if l.opts.Strict && !canonical {
		l.issues++
		l.log.Warning("(line %d) Padding on digits is not OK. Expected 00:00:00,000 (found `%s`).", line, s)
	}

	return ms, nil
}
