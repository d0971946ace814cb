package subtitle

// Result holds everything the two pipeline stages produce.
type Result struct {
	Tokens      []Token
	Records     []Record
	TotalLines  int
	LexIssues   int
	ParseIssues int
}

// Check tokenizes and parses lines, logging one summary per stage. A fatal
// error in either stage stops the run before any later summary is logged.
func Check(lines []string, opts Options) (*Result, error) {
	log := opts.logger()

	lexer, err := NewLexer(lines, opts)
	if err != nil {
		return nil, err
	}

	tokens, lexIssues, err := lexer.Lex()
	if err != nil {
		return nil, err
	}

	if lexIssues > 0 {
		log.Warning("File is semantically OK except for %d issue(s).", lexIssues)
	} else {
		log.Success("File is semantically OK.")
	}

	records, totalLines, parseIssues, err := NewParser(tokens, opts).Parse()
	if err != nil {
		return nil, err
	}

	if parseIssues > 0 {
		log.Warning("File is structurally OK except for %d issue(s). Read %d line(s).", parseIssues, totalLines)
	} else {
		log.Success("File is structurally OK. Read %d line(s).", totalLines)
	}

	return &Result{
		Tokens:      tokens,
		Records:     records,
		TotalLines:  totalLines,
		LexIssues:   lexIssues,
		ParseIssues: parseIssues,
	}, nil
}
