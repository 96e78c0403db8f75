package crypto

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// punctuationChars is the ASCII punctuation set used by the scorer. It is a
// superset of symbolChars, so every generated symbol counts as special.
const punctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// StrengthLabel is the three-level strength classification.
type StrengthLabel string

const (
	Weak     StrengthLabel = "Weak"
	Moderate StrengthLabel = "Moderate"
	Strong   StrengthLabel = "Strong"
)

// Labels lists every label from weakest to strongest.
var Labels = []StrengthLabel{Weak, Moderate, Strong}

// Display colors for each label.
const (
	ColorWeak     = "red"
	ColorModerate = "orange"
	ColorStrong   = "green"
)

const (
	strongThreshold   = 6
	moderateThreshold = 4

	goodLength   = 12
	decentLength = 8

	// MaxScore is 3 points for length plus one per character class.
	MaxScore = 7
)

// StrengthReport is the outcome of scoring a password.
type StrengthReport struct {
	Label    StrengthLabel
	Color    string
	Score    int
	Feedback []string
}

type classCheck struct {
	has  func(rune) bool
	pass string
	fail string
}

var classChecks = []classCheck{
	{unicode.IsUpper, "✅ Contains uppercase letters", "❌ Missing uppercase letters"},
	{unicode.IsLower, "✅ Contains lowercase letters", "❌ Missing lowercase letters"},
	{unicode.IsDigit, "✅ Contains numbers", "❌ Missing numbers"},
	{isPunctuation, "✅ Contains special characters", "❌ Missing special characters"},
}

func isPunctuation(r rune) bool {
	return strings.ContainsRune(punctuationChars, r)
}

// CheckStrength scores a password on length and character variety.
// Feedback holds one line per check, in a fixed order.
func CheckStrength(password string) StrengthReport {
	score := 0
	feedback := make([]string, 0, 1+len(classChecks))

	switch n := utf8.RuneCountInString(password); {
	case n >= goodLength:
		score += 3
		feedback = append(feedback, "✅ Good length (12+ characters)")
	case n >= decentLength:
		score += 2
		feedback = append(feedback, "✅ Decent length (8+ characters)")
	default:
		feedback = append(feedback, "❌ Password is too short (less than 8 characters)")
	}

	for _, check := range classChecks {
		if strings.ContainsFunc(password, check.has) {
			score++
			feedback = append(feedback, check.pass)
		} else {
			feedback = append(feedback, check.fail)
		}
	}

	label, color := classify(score)
	return StrengthReport{
		Label:    label,
		Color:    color,
		Score:    score,
		Feedback: feedback,
	}
}

func classify(score int) (StrengthLabel, string) {
	switch {
	case score >= strongThreshold:
		return Strong, ColorStrong
	case score >= moderateThreshold:
		return Moderate, ColorModerate
	default:
		return Weak, ColorWeak
	}
}
