package subtitle

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mgpai22/srtlint/internal/logging"
	"github.com/mgpai22/srtlint/internal/source"
)

func observedOptions(verbose, strict bool) (Options, *observer.ObservedLogs) {
	core, logs := observer.New(logging.SuccessLevel)
	return Options{
		Verbose: verbose,
		Strict:  strict,
		Logger:  logging.New(core, verbose),
	}, logs
}

func lex(t *testing.T, input string, opts Options) ([]Token, int, error) {
	t.Helper()
	lines, err := source.Decode(strings.NewReader(input), "")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	lexer, err := NewLexer(lines, opts)
	if err != nil {
		t.Fatalf("NewLexer failed: %v", err)
	}
	return lexer.Lex()
}

// builds n contiguous, well-formed blocks
func wellFormed(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		sb.WriteString(strings.Join([]string{
			strconv.Itoa(i),
			"00:00:01,000 --> 00:00:02,500",
			"line one",
			"line two",
			"",
		}, "\n"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestNewLexerEmptyInput(t *testing.T) {
	opts, logs := observedOptions(false, false)

	_, err := NewLexer(nil, opts)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if logs.FilterLevelExact(zapcore.ErrorLevel).Len() != 1 {
		t.Errorf("expected the fatal error to be logged once")
	}
}

func TestNewLexerDoesNotMutateInput(t *testing.T) {
	lines := []string{"\ufeff1", "00:00:01,000 --> 00:00:02,000", "hi"}
	snapshot := append([]string(nil), lines...)

	if _, err := NewLexer(lines, Options{}); err != nil {
		t.Fatalf("NewLexer failed: %v", err)
	}
	if !reflect.DeepEqual(lines, snapshot) {
		t.Errorf("input was modified: %q", lines)
	}
}

func TestNewLexerVerboseNotes(t *testing.T) {
	opts, logs := observedOptions(true, false)

	lexer, err := NewLexer([]string{"\ufeff1", "00:00:01,000 --> 00:00:02,000", "hi"}, opts)
	if err != nil {
		t.Fatalf("NewLexer failed: %v", err)
	}

	infos := logs.FilterLevelExact(zapcore.InfoLevel).All()
	if len(infos) != 2 {
		t.Fatalf("expected 2 info notes, got %d", len(infos))
	}
	if !strings.Contains(infos[0].Message, "empty line") {
		t.Errorf("expected trailing line note first, got %q", infos[0].Message)
	}
	if infos[1].Message != "Detected BOM." {
		t.Errorf("expected BOM note, got %q", infos[1].Message)
	}

	tokens, issues, err := lexer.Lex()
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	if issues != 0 {
		t.Errorf("expected 0 issues, got %d", issues)
	}
	if !reflect.DeepEqual(tokens[0], CountToken(1, 1)) {
		t.Errorf("BOM was not stripped: %s", tokens[0])
	}
}

func TestNewLexerQuietWithoutVerbose(t *testing.T) {
	opts, logs := observedOptions(false, false)

	if _, err := NewLexer([]string{"\ufeff1"}, opts); err != nil {
		t.Fatalf("NewLexer failed: %v", err)
	}
	if logs.Len() != 0 {
		t.Errorf("expected no log output, got %d entries", logs.Len())
	}
}

func TestLexWellFormedBlocks(t *testing.T) {
	for _, n := range []int{1, 2, 5, 9} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			tokens, issues, err := lex(t, wellFormed(n), Options{Strict: true})
			if err != nil {
				t.Fatalf("Lex failed: %v", err)
			}
			if issues != 0 {
				t.Errorf("expected 0 issues, got %d", issues)
			}
			if len(tokens) != 4*n+1 {
				t.Fatalf("expected %d tokens, got %d", 4*n+1, len(tokens))
			}

			order := []TokenKind{TokenCount, TokenStartTime, TokenEndTime, TokenSubtitle}
			for i, tok := range tokens[:len(tokens)-1] {
				if tok.Kind != order[i%4] {
					t.Errorf("token %d: expected %s, got %s", i, order[i%4], tok.Kind)
				}
			}
			if tokens[len(tokens)-1].Kind != TokenEOF {
				t.Errorf("expected trailing Eof, got %s", tokens[len(tokens)-1])
			}
		})
	}
}

func TestLexBlockLineNumbers(t *testing.T) {
	input := "1\n00:00:01,000 --> 00:00:02,000\nfirst\nsecond\n\n2\n00:00:03,000 --> 00:00:04,000\nthird\n"

	tokens, _, err := lex(t, input, Options{})
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}

	want := []Token{
		CountToken(1, 1),
		StartTimeToken(1000, 2),
		EndTimeToken(2000, 2),
		SubtitleToken([]string{"first", "second"}, 3),
		CountToken(2, 6),
		StartTimeToken(3000, 7),
		EndTimeToken(4000, 7),
		SubtitleToken([]string{"third"}, 8),
		EOFToken(),
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("tokens mismatch\n got: %v\nwant: %v", tokens, want)
	}
}

func TestLexCounterGapIsNonFatal(t *testing.T) {
	input := strings.Join([]string{
		"1", "00:00:01,000 --> 00:00:02,000", "a", "",
		"2", "00:00:03,000 --> 00:00:04,000", "b", "",
		"4", "00:00:05,000 --> 00:00:06,000", "c", "",
	}, "\n")
	opts, logs := observedOptions(false, false)

	tokens, issues, err := lex(t, input, opts)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	if issues < 1 {
		t.Errorf("expected at least 1 issue, got %d", issues)
	}
	if len(tokens) != 13 {
		t.Errorf("expected 13 tokens, got %d", len(tokens))
	}

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if !strings.Contains(warnings[0].Message, "was 2 (line 5), but now we're at 4") {
		t.Errorf("warning does not name both counters: %q", warnings[0].Message)
	}
}

func TestLexFirstCounter(t *testing.T) {
	tests := []struct {
		name         string
		strict       bool
		wantIssues   int
		wantWarnings int
	}{
		{"lenient", false, 1, 1},
		{"strict", true, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, logs := observedOptions(false, tt.strict)

			_, issues, err := lex(t, "3\n00:00:01,000 --> 00:00:02,000\nx\n", opts)
			if err != nil {
				t.Fatalf("Lex failed: %v", err)
			}
			if issues != tt.wantIssues {
				t.Errorf("expected %d issues, got %d", tt.wantIssues, issues)
			}
			if got := logs.FilterLevelExact(zapcore.WarnLevel).Len(); got != tt.wantWarnings {
				t.Errorf("expected %d warnings, got %d", tt.wantWarnings, got)
			}
		})
	}
}

func TestLexPadding(t *testing.T) {
	input := "1\n0:00:01,000 --> 00:00:02,5\nx\n"

	_, issues, err := lex(t, input, Options{Strict: true})
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	if issues != 2 {
		t.Errorf("expected one issue per badly padded timestamp, got %d", issues)
	}

	_, issues, err = lex(t, input, Options{})
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	if issues != 0 {
		t.Errorf("padding must only be checked in strict mode, got %d issues", issues)
	}
}

func TestLexFatalErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{"counter not a number", "one\n00:00:01,000 --> 00:00:02,000\nx\n", ErrMalformedCounter, 1},
		{"signed counter", "+1\n00:00:01,000 --> 00:00:02,000\nx\n", ErrMalformedCounter, 1},
		{"counter with spaces", " 1\n00:00:01,000 --> 00:00:02,000\nx\n", ErrMalformedCounter, 1},
		{"blank line in counter position", "1\n00:00:01,000 --> 00:00:02,000\nx\n\n\n", ErrMalformedCounter, 5},
		{"missing arrow", "1\n00:00:01,000 00:00:02,000\nx\n", ErrMalformedTimeRange, 2},
		{"two arrows", "1\n00:00:01,000 --> 00:00:02,000 --> 00:00:03,000\nx\n", ErrMalformedTimeRange, 2},
		{"too few colons", "1\n00:01,000 --> 00:00:02,000\nx\n", ErrInvalidTimestampShape, 2},
		{"too many colons", "1\n00:00:00:01,000 --> 00:00:02,000\nx\n", ErrInvalidTimestampShape, 2},
		{"no comma", "1\n00:00:01.000 --> 00:00:02,000\nx\n", ErrInvalidTimestampShape, 2},
		{"field not a number", "1\n00:0a:01,000 --> 00:00:02,000\nx\n", ErrInvalidTimestampField, 2},
		{"millis not a number", "1\n00:00:01,000 --> 00:00:02,xyz\nx\n", ErrInvalidTimestampField, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, logs := observedOptions(false, true)

			tokens, _, err := lex(t, tt.input, opts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tokens != nil {
				t.Errorf("expected no tokens on failure, got %v", tokens)
			}

			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected *SyntaxError, got %T", err)
			}
			if syntaxErr.Line != tt.wantLine {
				t.Errorf("expected line %d, got %d", tt.wantLine, syntaxErr.Line)
			}
			if got := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); got != 1 {
				t.Errorf("expected the error to be logged once, got %d", got)
			}
		})
	}
}

func TestLexExtraTrailingBlankLines(t *testing.T) {
	opts, logs := observedOptions(false, false)

	_, _, err := lex(t, wellFormed(2)+"\n", opts)
	if !errors.Is(err, ErrMalformedCounter) {
		t.Fatalf("expected ErrMalformedCounter, got %v", err)
	}

	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) || syntaxErr.Line != 11 {
		t.Errorf("expected the second trailing blank line (11) to be reported, got %v", err)
	}
	if got := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); got != 1 {
		t.Errorf("expected the error to be logged once, got %d", got)
	}
}

func TestLexEmptyTextBlock(t *testing.T) {
	tokens, _, err := lex(t, "1\n00:00:01,000 --> 00:00:02,000\n\n", Options{})
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	if len(tokens) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(tokens))
	}
	if tokens[3].Kind != TokenSubtitle || len(tokens[3].Lines) != 0 || tokens[3].Line != 3 {
		t.Errorf("unexpected subtitle token %s", tokens[3])
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{CountToken(1, 1), "Count(1,1)"},
		{StartTimeToken(136612, 2), "StartTime(136612,2)"},
		{EndTimeToken(139376, 2), "EndTime(139376,2)"},
		{SubtitleToken([]string{"a", "b c"}, 3), `Subtitle(["a" "b c"],3)`},
		{EOFToken(), "Eof"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
