// csv_header_analyzer.go
package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
)

type HeaderAnalysis struct {
	Headers        []string // final sanitized headers
	FirstRowIsData bool     // whether the first row already holds data
	FirstDataRow   []string
}

// AnalyzeHeaders inspects the first CSV row and decides whether it is a
// header row or data. Header names are sanitized to safe lowercase
// identifiers; when the row is data, column_N names are generated instead.
func AnalyzeHeaders(firstRow []string) *HeaderAnalysis {
	if len(firstRow) == 0 {
		return nil
	}

	result := &HeaderAnalysis{
		Headers:        make([]string, len(firstRow)),
		FirstRowIsData: false,
		FirstDataRow:   firstRow,
	}

	headerLikeCount := 0
	for _, field := range firstRow {
		if isLikelyHeader(field) {
			headerLikeCount++
		}
	}

	// Majority vote: if most fields look like names, treat the row as headers
	if float64(headerLikeCount)/float64(len(firstRow)) >= 0.5 {
		result.FirstRowIsData = false
		for i, header := range firstRow {
			result.Headers[i] = cleanHeaderName(header, i)
		}
	} else {
		result.FirstRowIsData = true
		for i := range firstRow {
			result.Headers[i] = generateColumnName(i)
		}
	}

	result.Headers = ValidateHeaders(result.Headers)
	return result
}

// isLikelyHeader decides whether the text looks like a column name rather
// than a value: not a number, not a date, and mostly letters.
func isLikelyHeader(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return false
	}

	datePatterns := []string{
		`^\d{4}-\d{2}-\d{2}$`,
		`^\d{2}/\d{2}/\d{4}$`,
		`^\d{2}\.\d{2}\.\d{4}$`,
		`^\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}$`,
		`^\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}\.\d+$`,
	}
	for _, pattern := range datePatterns {
		if matched, _ := regexp.MatchString(pattern, text); matched {
			return false
		}
	}

	letters := 0
	digits := 0
	specials := 0
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		case unicode.IsSpace(r):
		default:
			specials++
		}
	}

	totalChars := letters + digits + specials
	if totalChars == 0 {
		return false
	}
	return letters > 0 && float64(letters)/float64(totalChars) >= 0.3
}

func generateColumnName(index int) string {
	return fmt.Sprintf("column_%d", index+1)
}

// ValidateHeaders deduplicates header names by appending a counter suffix.
func ValidateHeaders(headers []string) []string {
	seen := make(map[string]int)
	result := make([]string, len(headers))

	for i, header := range headers {
		originalHeader := header
		counter := 1
		for {
			if count, exists := seen[header]; exists {
				header = fmt.Sprintf("%s_%d", originalHeader, counter)
				counter++
			} else {
				seen[header] = count + 1
				break
			}
		}
		result[i] = header
	}

	return result
}

// cleanHeaderName transliterates and sanitizes a header into a safe lowercase
// identifier, falling back to a generated column_N name.
func cleanHeaderName(header string, index int) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return generateColumnName(index)
	}

	// Station and constituent names come from field sheets and can carry
	// accents or non-latin characters; transliterate before sanitizing.
	cleaned := replaceSpecialSymbols(unidecode.Unidecode(header))

	if cleaned == "" {
		return generateColumnName(index)
	}
	if !isLikelyHeader(header) {
		return generateColumnName(index)
	}
	return strings.ToLower(cleaned)
}

// replaceSpecialSymbols replaces every non-alphanumeric run with a single
// underscore and trims leading/trailing underscores.
func replaceSpecialSymbols(input string) string {
	re := regexp.MustCompile("[^a-zA-Z0-9]+")
	processedString := re.ReplaceAllString(input, "_")
	processedString = strings.ReplaceAll(processedString, "__", "_")
	return strings.Trim(processedString, "_")
}
