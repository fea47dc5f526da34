package property

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	minSquareFootage = 100
	maxSquareFootage = 50000
)

// squareNumber is a whole number, either comma grouped or a plain digit run.
const squareNumber = `\b(\d{1,3}(?:,\d{3})+|\d+)`

// squareFootagePatterns are tried in order; the first capture group holds the number.
var squareFootagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)` + squareNumber + `\s*(?:sq\.?\s*ft\.?|sqft|square\s*feet)`),
	regexp.MustCompile(`(?i)` + squareNumber + `\s*sq`),
	regexp.MustCompile(`(?i)square\s*footage[:\s]*` + squareNumber),
	regexp.MustCompile(`(?i)` + squareNumber + `\s*square`),
}

// ExtractSquareFootage finds a plausible living-area figure in free-form page
// text. Only the first match of each pattern is considered, and a value outside
// [100, 50000] moves the search on to the next pattern.
func ExtractSquareFootage(text string) (int, bool) {
	for _, re := range squareFootagePatterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 || m[1] == "" {
			continue
		}
		n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		if n >= minSquareFootage && n <= maxSquareFootage {
			return n, true
		}
	}
	return 0, false
}
