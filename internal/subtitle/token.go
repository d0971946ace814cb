package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

type TokenKind uint8

const (
	TokenCount TokenKind = iota
	TokenStartTime
	TokenEndTime
	TokenSubtitle
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenCount:
		return "Count"
	case TokenStartTime:
		return "StartTime"
	case TokenEndTime:
		return "EndTime"
	case TokenSubtitle:
		return "Subtitle"
	case TokenEOF:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Token is one lexical unit of a SubRip file. Value holds the counter for
// TokenCount and milliseconds for the time tokens; Lines is only set for
// TokenSubtitle. Line is the 1-based source line (the first text line for
// TokenSubtitle, zero for TokenEOF).
type Token struct {
	Kind  TokenKind
	Value uint64
	Lines []string
	Line  int
}

func CountToken(value uint64, line int) Token {
	return Token{Kind: TokenCount, Value: value, Line: line}
}

func StartTimeToken(ms uint64, line int) Token {
	return Token{Kind: TokenStartTime, Value: ms, Line: line}
}

func EndTimeToken(ms uint64, line int) Token {
	return Token{Kind: TokenEndTime, Value: ms, Line: line}
}

func SubtitleToken(lines []string, startingLine int) Token {
	return Token{Kind: TokenSubtitle, Lines: lines, Line: startingLine}
}

func EOFToken() Token {
	return Token{Kind: TokenEOF}
}

// String renders the token as e.g. Count(1,1) or Subtitle(["a" "b"],3).
func (t Token) String() string {
	switch t.Kind {
	case TokenCount, TokenStartTime, TokenEndTime:
		return fmt.Sprintf("%s(%d,%d)", t.Kind, t.Value, t.Line)
	case TokenSubtitle:
		quoted := make([]string, len(t.Lines))
		for i, l := range t.Lines {
			quoted[i] = strconv.Quote(l)
		}
		return fmt.Sprintf("%s([%s],%d)", t.Kind, strings.Join(quoted, " "), t.Line)
	default:
		return t.Kind.String()
	}
}
