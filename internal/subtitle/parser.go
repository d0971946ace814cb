package subtitle

import (
	"fmt"
	"time"

	"github.com/mgpai22/srtlint/internal/logging"
)

// Parser assembles a token stream into records.
type Parser struct {
	tokens []Token
	pos    int
	opts   Options
	log    *logging.Logger
	issues int
}

func NewParser(tokens []Token, opts Options) *Parser {
	return &Parser{
		tokens: tokens,
		opts:   opts,
		log:    opts.logger(),
	}
}

// Parse returns the sealed records, the total number of text lines and the
// number of non-fatal issues. The error is only ever an internal consistency
// failure wrapping ErrIncompleteRecord.
func (p *Parser) Parse() ([]Record, int, int, error) {
	var (
		records    []Record
		totalLines int
		buf        recordBuffer
	)

	for ; p.pos < len(p.tokens); p.pos++ {
		tok := p.tokens[p.pos]

		switch tok.Kind {
		case TokenCount:
			buf.id = tok.Value
			buf.hasID = true

		case TokenStartTime:
			buf.start = time.Duration(tok.Value) * time.Millisecond
			buf.hasStart = true

		case TokenEndTime:
			if !buf.hasID || !buf.hasStart {
				return nil, totalLines, p.issues, p.incomplete(tok, "end time before counter or start time")
			}
			buf.end = time.Duration(tok.Value) * time.Millisecond
			buf.hasEnd = true

			if p.opts.Strict && buf.start == buf.end {
				p.issues++
				p.log.Warning(
					"(subtitle #%d, line %d) Timestamps appear to be the same, this might be unintended.",
					buf.id, tok.Line,
				)
			}

		case TokenSubtitle:
			if !buf.complete() {
				return nil, totalLines, p.issues, p.incomplete(tok, "text without counter and time range")
			}
			totalLines += len(tok.Lines)

			if p.opts.Strict {
				p.issues += checkMarkup(tok.Lines, tok.Line, p.log)
			}

			records = append(records, buf.seal(tok.Lines))
			buf.reset()

		case TokenEOF:
			return records, totalLines, p.issues, nil
		}
	}

	return records, totalLines, p.issues, nil
}

func (p *Parser) incomplete(tok Token, detail string) error {
	err := &SyntaxError{
		Line: tok.Line,
		Err:  fmt.Errorf("%w: %s at token %s", ErrIncompleteRecord, detail, tok),
	}
	p.log.Error("%v", err)
	return err
}
