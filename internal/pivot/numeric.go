package pivot

import (
	"regexp"
	"strconv"
	"strings"
)

// Matches the first numeric run in a string: an optional leading minus,
// digit groups separated by comma or space, an optional decimal tail.
// Covers "32", "32.5", "1,234.56", "1 234,56", "32,5", "-32.5".
var numberPattern = regexp.MustCompile(`-?\d{1,3}(?:[,\s]\d{3})*(?:[.,]\d+)?|-?\d+[.,]\d+|-?\d+`)

// Everything that is not part of a number: used by the fallback cleanup.
var nonNumericPattern = regexp.MustCompile(`[^\d\s,.\-]`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// ExtractNumeric pulls a numeric value out of free text that may carry units,
// thousands separators or a locale-specific decimal mark ("32 m²", "1 234,56 m²",
// "1,234.56 m³"). It is the single source of truth for numeric coercion in both
// pivot modes. ok is false when no number could be extracted; values are never
// silently coerced to zero.
//
// Separator disambiguation, in priority order:
//   - both "." and "," present: comma is a thousands separator
//   - space and "," present: space is thousands, comma is decimal
//   - a single "," followed by at most two digits: comma is decimal,
//     otherwise (or with multiple commas) thousands
//   - only spaces: thousands separators
func ExtractNumeric(value string) (float64, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, false
	}

	if match := numberPattern.FindString(s); match != "" {
		hasDot := strings.Contains(match, ".")
		hasComma := strings.Contains(match, ",")
		hasSpace := strings.ContainsAny(match, " \t")

		switch {
		case hasDot && hasComma:
			// "1,234.56"
			match = strings.ReplaceAll(match, ",", "")
		case hasSpace && hasComma:
			// "1 234,56"
			match = whitespacePattern.ReplaceAllString(match, "")
			match = strings.ReplaceAll(match, ",", ".")
		case hasComma:
			parts := strings.Split(match, ",")
			if len(parts) == 2 && len(parts[1]) <= 2 {
				// "32,5"
				match = strings.ReplaceAll(match, ",", ".")
			} else {
				// "1,234" or "1,234,567"
				match = strings.ReplaceAll(match, ",", "")
			}
		case hasSpace:
			match = whitespacePattern.ReplaceAllString(match, "")
		}

		if n, err := strconv.ParseFloat(match, 64); err == nil {
			return n, true
		}
	}

	// Fallback: strip everything non-numeric and retry with commas as dots.
	cleaned := nonNumericPattern.ReplaceAllString(s, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, "")
	if n, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return n, true
	}
	return 0, false
}
