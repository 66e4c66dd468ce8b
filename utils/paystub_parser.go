package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// contextRadius is how far a context window reaches to each side of a
	// matched label phrase. Windows never cross a line break.
	contextRadius = 40

	// trailingSearch is how far past the label the secondary value search
	// reaches when the context window holds no numeric token. Unlike the
	// context window it runs across line breaks.
	trailingSearch = 80
)

// moneyPattern matches an amount with optional currency symbol, comma
// thousands grouping and up to two decimal places. The capture group holds
// the numeric token without the symbol.
var moneyPattern = regexp.MustCompile(`\$?\s?([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{1,2})?)`)

// FieldMatch is the best surviving candidate for one field.
type FieldMatch struct {
	Raw    string // numeric token exactly as it appeared
	Window string // context window the candidate was scored against
	Score  int    // 0-100 similarity between label phrase and window
}

// ExtractFields scans raw pay-stub text for every label phrase in the
// dictionary and returns the best value candidate per field. For each
// occurrence of a phrase the surrounding context window is searched for a
// money token; if the window has none, a secondary search runs over the
// text right after the label. Candidates are scored by comparing the
// phrase against the window, and a later candidate replaces an earlier
// one only with a strictly higher score. Fields with no candidate are
// absent from the result.
func ExtractFields(text string, labels LabelDictionary) map[Field]FieldMatch {
	results := make(map[Field]FieldMatch)
	for field, phrases := range labels {
		if match, ok := bestMatch(text, phrases); ok {
			results[field] = match
		}
	}
	return results
}

func bestMatch(text string, phrases []string) (FieldMatch, bool) {
	var best FieldMatch
	found := false

	for _, phrase := range phrases {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
		for _, loc := range re.FindAllStringIndex(text, -1) {
			window := contextWindow(text, loc[0], loc[1])

			token, ok := findMoneyToken(window)
			if !ok {
				token, ok = findMoneyToken(trailingWindow(text, loc[1]))
			}
			if !ok {
				continue
			}

			score := PartialRatio(strings.ToLower(phrase), strings.ToLower(window))
			if !found || score > best.Score {
				best = FieldMatch{Raw: token, Window: window, Score: score}
				found = true
			}
		}
	}

	return best, found
}

// contextWindow returns the text around a label occurrence, reaching at
// most contextRadius bytes to each side and stopping at line breaks.
func contextWindow(text string, start, end int) string {
	lo := start - contextRadius
	if lo < 0 {
		lo = 0
	}
	if i := strings.LastIndexByte(text[lo:start], '\n'); i >= 0 {
		lo += i + 1
	}

	hi := end + contextRadius
	if hi > len(text) {
		hi = len(text)
	}
	if i := strings.IndexByte(text[end:hi], '\n'); i >= 0 {
		hi = end + i
	}

	return text[lo:hi]
}

func trailingWindow(text string, end int) string {
	hi := end + trailingSearch
	if hi > len(text) {
		hi = len(text)
	}
	return text[end:hi]
}

func findMoneyToken(window string) (string, bool) {
	m := moneyPattern.FindStringSubmatch(window)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseAmount converts a matched token like "$1,234.56" into a float.
// Callers keep the raw token when parsing fails.
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount token")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return value, nil
}

// ExtractPayPeriod extracts the pay period from stub text, preferring a
// month name with a year, then a bare month, then MM/YYYY.
func ExtractPayPeriod(text string) string {
	months := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
		"Jan", "Feb", "Mar", "Apr", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}

	textLower := strings.ToLower(text)
	for _, month := range months {
		if strings.Contains(textLower, strings.ToLower(month)) {
			yearRegex := regexp.MustCompile(`(?i)` + month + `[\s\-,]*(\d{4})`)
			if matches := yearRegex.FindStringSubmatch(text); len(matches) > 1 {
				return month + " " + matches[1]
			}
			return month
		}
	}

	dateRegex := regexp.MustCompile(`(\d{1,2})[/-](\d{4})`)
	if matches := dateRegex.FindStringSubmatch(text); len(matches) > 2 {
		return matches[1] + "/" + matches[2]
	}

	return ""
}

// ExtractEmployeeName extracts the employee name from stub text by looking
// for a "Name:"-style label. The value usually sits on the same line; the
// previous line is a fallback for stacked layouts.
func ExtractEmployeeName(text string) string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lower := strings.ToLower(line)

		if strings.Contains(lower, "name") && strings.Contains(line, ":") {
			name := cleanName(extractNameAfterLabel(line))
			if isCleanName(name) {
				return name
			}

			if i > 0 {
				candidate := cleanName(strings.TrimSpace(lines[i-1]))
				if isCleanName(candidate) {
					return candidate
				}
			}
		}
	}

	return ""
}

func cleanName(s string) string {
	if s == "" {
		return s
	}
	parts := strings.Fields(s)

	stopWords := map[string]bool{
		"employee": true,
		"gross":    true,
		"net":      true,
		"pay":      true,
		"earnings": true,
		"hours":    true,
		"rate":     true,
		"period":   true,
		"dept":     true,
		"ssn":      true,
		"id":       true,
	}

	clean := []string{}
	for _, p := range parts {
		l := strings.ToLower(p)
		if stopWords[l] {
			break // stop reading further noise
		}
		clean = append(clean, p)
		if len(clean) == 2 { // cap at 2 words: First + Last
			break
		}
	}

	return strings.Join(clean, " ")
}

func isCleanName(s string) bool {
	if s == "" {
		return false
	}
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return false
	}
	for _, p := range parts {
		if !regexp.MustCompile(`^[A-Za-z]+$`).MatchString(p) {
			return false
		}
	}
	return true
}

func extractNameAfterLabel(line string) string {
	re := regexp.MustCompile(`(?i)name\s*:\s*([A-Za-z ]+)`)
	if matches := re.FindStringSubmatch(line); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return ""
}
