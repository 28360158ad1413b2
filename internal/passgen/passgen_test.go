package passgen

import (
	"strings"
	"testing"
	"unicode"
)

func TestGenerateClassGuarantees(t *testing.T) {
	opts := DefaultOptions()
	for i := 0; i < 50; i++ {
		pw, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(pw) != opts.Length {
			t.Fatalf("length = %d, want %d", len(pw), opts.Length)
		}
		var lower, upper, digit, symbol bool
		for _, r := range pw {
			switch {
			case unicode.IsLower(r):
				lower = true
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			case strings.ContainsRune(Symbols, r):
				symbol = true
			}
		}
		if !lower || !upper || !digit || !symbol {
			t.Fatalf("password %q missing a guaranteed class (lower=%v upper=%v digit=%v symbol=%v)",
				pw, lower, upper, digit, symbol)
		}
	}
}

func TestGenerateLowercaseOnly(t *testing.T) {
	pw, err := Generate(Options{Length: 12})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, r := range pw {
		if !unicode.IsLower(r) {
			t.Fatalf("password %q contains non-lowercase %q", pw, r)
		}
	}
}

func TestGenerateExcludeSimilar(t *testing.T) {
	opts := DefaultOptions()
	opts.Symbols = false
	opts.ExcludeSimilar = true
	for i := 0; i < 20; i++ {
		pw, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if strings.ContainsAny(pw, "0O1lI") {
			t.Fatalf("password %q contains a similar-looking character", pw)
		}
	}
}

func TestGenerateTooShort(t *testing.T) {
	if _, err := Generate(Options{Length: 3}); err == nil {
		t.Fatal("expected error for length 3")
	}
}

func TestPassphrase(t *testing.T) {
	p, err := Passphrase(4, "-", true)
	if err != nil {
		t.Fatalf("Passphrase: %v", err)
	}
	words := strings.Split(p, "-")
	if len(words) != 4 {
		t.Fatalf("word count = %d, want 4", len(words))
	}
	seen := map[string]bool{}
	for _, w := range words {
		if w == "" {
			t.Fatalf("empty word in %q", p)
		}
		if !unicode.IsUpper(rune(w[0])) {
			t.Errorf("word %q not capitalized", w)
		}
		lw := strings.ToLower(w)
		if seen[lw] {
			t.Fatalf("repeated word %q in %q", w, p)
		}
		seen[lw] = true
	}
}

func TestPassphraseBadCount(t *testing.T) {
	if _, err := Passphrase(0, "-", false); err == nil {
		t.Fatal("expected error for word count 0")
	}
	if _, err := Passphrase(1000, "-", false); err == nil {
		t.Fatal("expected error for oversized word count")
	}
}

func TestAnalyzeBands(t *testing.T) {
	cases := []struct {
		password string
		band     string
	}{
		{"Tr!ck9-Lamp#Vault7", "Very Strong"},
		{"password123", "Weak"},
		{"xy", "Very Weak"},
	}
	for _, tc := range cases {
		a := Analyze(tc.password)
		if a.Band != tc.band {
			t.Errorf("Analyze(%q).Band = %q (score %d), want %q", tc.password, a.Band, a.Score, tc.band)
		}
	}
}

func TestAnalyzeFeedback(t *testing.T) {
	a := Analyze("aaaa")
	if a.Score >= 50 {
		t.Fatalf("score for %q = %d, want < 50", "aaaa", a.Score)
	}
	var sawRepeat, sawLength bool
	for _, f := range a.Feedback {
		if strings.Contains(f, "repeated") {
			sawRepeat = true
		}
		if strings.Contains(f, "8 characters") {
			sawLength = true
		}
	}
	if !sawRepeat || !sawLength {
		t.Fatalf("feedback %v missing repeat/length hints", a.Feedback)
	}
}

func TestAnalyzeStrongHasNoFeedback(t *testing.T) {
	a := Analyze("G7#mpx!Qz2@Wd8")
	if len(a.Feedback) != 0 {
		t.Fatalf("unexpected feedback for strong password: %v", a.Feedback)
	}
	if a.Score != 100 {
		t.Fatalf("score = %d, want 100", a.Score)
	}
}
