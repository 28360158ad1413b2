// Package passgen generates random passwords and passphrases and scores
// password strength. All randomness comes from crypto/rand.
package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	// Symbols is the symbol alphabet used for generation and for the
	// strength analyzer's special-character check.
	Symbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Characters that are easy to misread (zero vs O, one vs l vs I).
	similarChars = "0O1lI"
	// Characters that trip up shells, URLs, and some password fields.
	ambiguousChars = "{}[]()/\\'\"`~,;.<>"
)

// Options controls which character classes a generated password draws from.
// Lowercase letters are always included.
type Options struct {
	Length           int
	Uppercase        bool
	Digits           bool
	Symbols          bool
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
}

// DefaultOptions enables every character class at 16 characters.
func DefaultOptions() Options {
	return Options{Length: 16, Uppercase: true, Digits: true, Symbols: true}
}

// Generate builds a random password per opts. At least one character from
// each enabled class is guaranteed, then the remainder is drawn from the
// combined pool and the result shuffled so the guaranteed characters do not
// cluster at the front.
func Generate(opts Options) (string, error) {
	if opts.Length < 4 {
		return "", fmt.Errorf("password length must be at least 4, got %d", opts.Length)
	}

	strip := func(set string) string {
		if opts.ExcludeSimilar {
			set = removeAny(set, similarChars)
		}
		if opts.ExcludeAmbiguous {
			set = removeAny(set, ambiguousChars)
		}
		return set
	}

	classes := []string{strip(lowercase)}
	if opts.Uppercase {
		classes = append(classes, strip(uppercase))
	}
	if opts.Digits {
		classes = append(classes, strip(digits))
	}
	if opts.Symbols {
		sym := strip(Symbols)
		if sym == "" {
			return "", fmt.Errorf("symbol set is empty after exclusions")
		}
		classes = append(classes, sym)
	}
	if len(classes) > opts.Length {
		return "", fmt.Errorf("length %d cannot cover %d character classes", opts.Length, len(classes))
	}

	pool := strings.Join(classes, "")
	out := make([]byte, 0, opts.Length)
	for _, class := range classes {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < opts.Length {
		c, err := pick(pool)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// passphraseWords is the word bank for Passphrase. Short, common nouns that
// are easy to type and remember.
var passphraseWords = []string{
	"apple", "banana", "cherry", "dragon", "eagle", "forest", "garden",
	"house", "island", "jungle", "knight", "ladder", "mountain", "ocean",
	"palace", "queen", "river", "sunset", "tower", "umbrella", "village",
	"wizard", "yellow", "zebra", "castle", "bridge", "crystal", "diamond",
}

// Passphrase joins wordCount distinct random words with separator,
// capitalizing each word when capitalize is set.
func Passphrase(wordCount int, separator string, capitalize bool) (string, error) {
	if wordCount < 1 || wordCount > len(passphraseWords) {
		return "", fmt.Errorf("word count must be between 1 and %d, got %d", len(passphraseWords), wordCount)
	}
	// Sample without replacement via a partial Fisher-Yates over indices.
	idx := make([]int, len(passphraseWords))
	for i := range idx {
		idx[i] = i
	}
	words := make([]string, 0, wordCount)
	for i := 0; i < wordCount; i++ {
		n, err := randInt(len(idx) - i)
		if err != nil {
			return "", err
		}
		j := i + n
		idx[i], idx[j] = idx[j], idx[i]
		w := passphraseWords[idx[i]]
		if capitalize {
			w = strings.ToUpper(w[:1]) + w[1:]
		}
		words = append(words, w)
	}
	return strings.Join(words, separator), nil
}

// Analysis is the result of a strength check. Score runs 0-100; Band is a
// human label derived from it.
type Analysis struct {
	Score    int
	Band     string
	Length   int
	Feedback []string
}

// Analyze scores a password out of 100. Length and character variety earn
// points; repeated runs, keyboard/alphabet sequences, and known weak
// passwords cost them. Feedback lists concrete improvements.
func Analyze(password string) Analysis {
	a := Analysis{Length: len(password)}

	// Length: up to 40 points, 12+ characters earns the full allotment.
	switch {
	case a.Length >= 12:
		a.Score += 40
	case a.Length >= 8:
		a.Score += 25
	case a.Length >= 4:
		a.Score += 10
		a.Feedback = append(a.Feedback, "use at least 8 characters")
	default:
		a.Feedback = append(a.Feedback, "use at least 8 characters")
	}

	// Character classes: 10 points each.
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(Symbols, r):
			hasSymbol = true
		}
	}
	for _, c := range []struct {
		ok   bool
		hint string
	}{
		{hasLower, "add lowercase letters"},
		{hasUpper, "add uppercase letters"},
		{hasDigit, "add digits"},
		{hasSymbol, "add symbols"},
	} {
		if c.ok {
			a.Score += 10
		} else {
			a.Feedback = append(a.Feedback, c.hint)
		}
	}

	// No doubled characters earns 10; a run costs the bonus. The pattern
	// bonuses only apply at a usable length so trivial strings cannot
	// collect points for patterns they are too short to contain.
	repeated := false
	prev := rune(-1)
	for _, r := range password {
		if r == prev {
			repeated = true
			break
		}
		prev = r
	}
	if repeated {
		a.Feedback = append(a.Feedback, "avoid repeated consecutive characters")
	} else if a.Length >= 8 {
		a.Score += 10
	}

	// Common weak substrings and passwords.
	lower := strings.ToLower(password)
	penalized := false
	for _, pat := range []string{"123", "abc", "qwe", "password", "admin", "letmein", "welcome"} {
		if strings.Contains(lower, pat) {
			penalized = true
			break
		}
	}
	if !penalized {
		if a.Length >= 8 {
			a.Score += 10
		}
	} else {
		a.Score -= 15
		a.Feedback = append(a.Feedback, "avoid common patterns and words")
	}

	if a.Score < 0 {
		a.Score = 0
	}
	if a.Score > 100 {
		a.Score = 100
	}

	switch {
	case a.Score >= 80:
		a.Band = "Very Strong"
	case a.Score >= 65:
		a.Band = "Strong"
	case a.Score >= 50:
		a.Band = "Good"
	case a.Score >= 35:
		a.Band = "Fair"
	case a.Score >= 20:
		a.Band = "Weak"
	default:
		a.Band = "Very Weak"
	}
	return a
}

func removeAny(set, drop string) string {
	var b strings.Builder
	for _, r := range set {
		if !strings.ContainsRune(drop, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading randomness: %w", err)
	}
	return int(v.Int64()), nil
}

func pick(set string) (byte, error) {
	i, err := randInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
