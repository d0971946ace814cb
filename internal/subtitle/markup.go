package subtitle

import "github.com/mgpai22/srtlint/internal/logging"

func isStyleLetter(c byte) bool {
	return c == 'i' || c == 'b' || c == 'u'
}

func isOpeningTag(line string, i int) bool {
	return i+3 <= len(line) &&
		line[i] == '<' && isStyleLetter(line[i+1]) && line[i+2] == '>'
}

func isClosingTag(line string, i int) bool {
	return i+4 <= len(line) &&
		line[i] == '<' && line[i+1] == '/' && isStyleLetter(line[i+2]) && line[i+3] == '>'
}

// checkMarkup reports unbalanced <i>, <b> and <u> tags across the lines of one
// block and returns the number of issues found. Pairing is positional only:
// any closing tag closes the most recent opening tag regardless of its letter.
func checkMarkup(lines []string, startingLine int, log *logging.Logger) int {
	var (
		open   []int
		issues int
	)

	for idx, line := range lines {
		n := startingLine + idx

		for i := 0; i+3 <= len(line); i++ {
			switch {
			case isOpeningTag(line, i):
				open = append(open, n)
			case isClosingTag(line, i):
				if len(open) == 0 {
					issues++
					log.Warning("(line %d) Found a stray closing markup tag with nothing open.", n)
					continue
				}
				open = open[:len(open)-1]
			}
		}
	}

	if len(open) > 0 {
		issues++
		for _, n := range open {
			log.Warning("(line %d) Unclosed markup tag.", n)
		}
	}

	return issues
}
