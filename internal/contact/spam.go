package contact

import (
	"regexp"
	"strings"
	"unicode"
)

// spamKeywords is deliberately short and lenient: this form receives real
// business inquiries and a false positive is worse than a missed one.
var spamKeywords = regexp.MustCompile(`(?i)\b(?:viagra|cialis|casino|lottery|winner|click here|free money|make money|weight loss)\b`)

var scriptTokens = regexp.MustCompile(`(?i)\b(?:script|javascript|onclick|onload)\b`)

const (
	maxLinks     = 5
	maxRepeatRun = 15
	maxCapsRatio = 0.5
)

// IsSpam scores the raw message body against the spam heuristics. Only the
// message is scored, never the subject.
func IsSpam(message string) bool {
	if spamKeywords.MatchString(message) {
		return true
	}

	links := strings.Count(message, "http://") + strings.Count(message, "https://")
	if links > maxLinks {
		return true
	}

	if longestCharRun(message) > maxRepeatRun {
		return true
	}

	if strings.ContainsAny(message, "<>{}") || scriptTokens.MatchString(message) {
		return true
	}

	return capsRatio(message) > maxCapsRatio
}

// longestCharRun returns the longest run of one repeated non-space
// character in s.
func longestCharRun(s string) int {
	longest, run := 0, 0
	var prev rune
	for _, r := range s {
		if unicode.IsSpace(r) {
			run = 0
		} else if r == prev {
			run++
		} else {
			run = 1
		}
		prev = r
		if run > longest {
			longest = run
		}
	}
	return longest
}

// capsRatio returns the share of letters in s that are uppercase. A body
// with no letters at all scores zero.
func capsRatio(s string) float64 {
	var caps, letters int
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				caps++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(caps) / float64(letters)
}
