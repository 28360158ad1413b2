// Package story generates short mad-lib stories from templates and word
// banks, and carries a small branching adventure played from the CLI.
package story

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"text/template"
)

// bank holds the word pools a template draws from.
var bank = map[string][]string{
	"hero":      {"a brave knight", "a curious wizard", "a retired pirate", "a clever fox", "an absent-minded inventor"},
	"place":     {"a mysterious forest", "an abandoned lighthouse", "a floating castle", "a bustling night market", "a library between worlds"},
	"object":    {"a glowing map", "a rusty key", "a talking compass", "an ancient cookbook", "a bottle of starlight"},
	"creature":  {"a friendly dragon", "a grumpy troll", "a singing owl", "a tiny giant", "a ghost with good manners"},
	"adjective": {"unexpected", "shimmering", "forgotten", "ridiculous", "legendary"},
	"ending":    {"and was never bored again", "and told the tale for years", "and kept the secret forever", "and finally made it home", "and laughed all the way back"},
}

// templates are the mad-lib story shapes. Fields are filled from bank.
var templates = []string{
	"Once upon a time, {{.hero}} wandered into {{.place}}. " +
		"There, half-buried in the ground, lay {{.object}}. " +
		"Before long {{.creature}} appeared, demanding to know who had found the {{.adjective}} treasure. " +
		"They struck a deal, shared an adventure, {{.ending}}.",
	"Nobody believed that {{.place}} was real until {{.hero}} returned carrying {{.object}}. " +
		"The {{.adjective}} journey had not been easy: {{.creature}} guarded every path. " +
		"Still, our hero prevailed, {{.ending}}.",
	"{{.hero}} woke up one morning to find {{.object}} on the doorstep. " +
		"A note attached read: bring this to {{.place}} before sunset. " +
		"Guided by {{.creature}} through {{.adjective}} terrain, the delivery was made just in time, {{.ending}}.",
}

// Generator produces stories. The rand source is injected so output is
// deterministic under test.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator seeds a Generator from src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Roles lists the word-bank roles a custom word can override, sorted.
func Roles() []string {
	roles := make([]string, 0, len(bank))
	for r := range bank {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}

// Generate fills a random template from the word banks. Entries in
// overrides replace the named role's random pick, so callers can pin the
// hero or the place.
func (g *Generator) Generate(overrides map[string]string) (string, error) {
	for role := range overrides {
		if _, ok := bank[role]; !ok {
			return "", fmt.Errorf("unknown role %q (known: %s)", role, strings.Join(Roles(), ", "))
		}
	}
	words := make(map[string]string, len(bank))
	for role, pool := range bank {
		if v, ok := overrides[role]; ok && v != "" {
			words[role] = v
			continue
		}
		words[role] = pool[g.rng.Intn(len(pool))]
	}
	text := templates[g.rng.Intn(len(templates))]
	tmpl, err := template.New("story").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing story template: %w", err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, words); err != nil {
		return "", fmt.Errorf("rendering story: %w", err)
	}
	return sb.String(), nil
}
