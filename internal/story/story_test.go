package story

import (
	"math/rand"
	"strings"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	a, err := NewGenerator(rand.NewSource(7)).Generate(nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := NewGenerator(rand.NewSource(7)).Generate(nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a != b {
		t.Fatalf("same seed produced different stories:\n%s\n---\n%s", a, b)
	}
	if a == "" || strings.Contains(a, "{{") {
		t.Fatalf("story looks unrendered: %q", a)
	}
}

func TestGenerateOverrides(t *testing.T) {
	g := NewGenerator(rand.NewSource(1))
	out, err := g.Generate(map[string]string{"hero": "Captain Biscuit"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out, "Captain Biscuit") {
		t.Fatalf("override not applied:\n%s", out)
	}
}

func TestGenerateUnknownRole(t *testing.T) {
	g := NewGenerator(rand.NewSource(1))
	if _, err := g.Generate(map[string]string{"villain": "x"}); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestRoles(t *testing.T) {
	roles := Roles()
	if len(roles) != 6 {
		t.Fatalf("Roles() = %v, want 6 entries", roles)
	}
	for i := 1; i < len(roles); i++ {
		if roles[i-1] >= roles[i] {
			t.Fatalf("roles not sorted: %v", roles)
		}
	}
}

func TestForestAdventureValid(t *testing.T) {
	a := ForestAdventure()
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	start, err := a.Scene(a.Start)
	if err != nil {
		t.Fatalf("Scene: %v", err)
	}
	if len(start.Choices) == 0 {
		t.Fatal("start scene should offer choices")
	}
	// Every playthrough must be able to terminate.
	var hasEnding bool
	for _, s := range a.Scenes {
		if len(s.Choices) == 0 {
			hasEnding = true
		}
	}
	if !hasEnding {
		t.Fatal("adventure has no ending scenes")
	}
}

func TestAdventureUnknownScene(t *testing.T) {
	if _, err := ForestAdventure().Scene("basement"); err == nil {
		t.Fatal("expected error for unknown scene")
	}
}
