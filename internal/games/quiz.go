package games

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Question is one multiple-choice quiz question. Correct is a 0-based index
// into Options.
type Question struct {
	Prompt      string   `yaml:"question"`
	Options     []string `yaml:"options"`
	Correct     int      `yaml:"correct"`
	Explanation string   `yaml:"explanation"`
}

// Deck is a named set of questions.
type Deck struct {
	Name      string     `yaml:"name"`
	Questions []Question `yaml:"questions"`
}

// Validate checks that every question has at least two options and a
// correct index in range.
func (d *Deck) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("deck has no name")
	}
	if len(d.Questions) == 0 {
		return fmt.Errorf("deck %q has no questions", d.Name)
	}
	for i, q := range d.Questions {
		if q.Prompt == "" {
			return fmt.Errorf("deck %q question %d has no prompt", d.Name, i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("deck %q question %d needs at least two options", d.Name, i+1)
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("deck %q question %d correct index %d out of range", d.Name, i+1, q.Correct)
		}
	}
	return nil
}

// BuiltinDeck returns the general-knowledge starter deck.
func BuiltinDeck() *Deck {
	return &Deck{
		Name: "general",
		Questions: []Question{
			{
				Prompt:      "What is the capital of France?",
				Options:     []string{"London", "Berlin", "Paris", "Madrid"},
				Correct:     2,
				Explanation: "Paris is the capital and largest city of France.",
			},
			{
				Prompt:      "Which planet is known as the Red Planet?",
				Options:     []string{"Venus", "Mars", "Jupiter", "Saturn"},
				Correct:     1,
				Explanation: "Mars is called the Red Planet due to iron oxide on its surface.",
			},
			{
				Prompt:      "What is 15 + 27?",
				Options:     []string{"40", "41", "42", "43"},
				Correct:     2,
				Explanation: "15 + 27 = 42",
			},
			{
				Prompt:      "Who painted the Mona Lisa?",
				Options:     []string{"Van Gogh", "Picasso", "Da Vinci", "Michelangelo"},
				Correct:     2,
				Explanation: "Leonardo da Vinci painted the Mona Lisa in the early 16th century.",
			},
			{
				Prompt:      "What is the largest mammal in the world?",
				Options:     []string{"African Elephant", "Blue Whale", "Giraffe", "Hippopotamus"},
				Correct:     1,
				Explanation: "The blue whale is the largest mammal and animal on Earth.",
			},
		},
	}
}

// LoadDecks reads every *.yaml deck in dir. A missing directory yields no
// decks and no error. Invalid decks are skipped and reported.
func LoadDecks(dir string) ([]*Deck, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("reading decks dir: %w", err)}
	}
	var decks []*Deck
	var errs []error
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("reading %s: %w", name, err))
			continue
		}
		var d Deck
		if err := yaml.Unmarshal(data, &d); err != nil {
			errs = append(errs, fmt.Errorf("parsing %s: %w", name, err))
			continue
		}
		if d.Name == "" {
			d.Name = strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
		}
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		decks = append(decks, &d)
	}
	sort.Slice(decks, func(i, j int) bool { return decks[i].Name < decks[j].Name })
	return decks, errs
}

// AnswerResult describes the outcome of one answered question.
type AnswerResult struct {
	Correct       bool
	CorrectOption string
	Explanation   string
}

// QuizSession walks a deck question by question and tracks the score.
type QuizSession struct {
	ID      string
	deck    *Deck
	index   int
	correct int
}

// NewQuizSession starts a session over deck, assigning it a fresh uuid.
func NewQuizSession(deck *Deck) (*QuizSession, error) {
	if err := deck.Validate(); err != nil {
		return nil, err
	}
	return &QuizSession{ID: uuid.NewString(), deck: deck}, nil
}

// Deck returns the deck this session runs.
func (s *QuizSession) Deck() *Deck { return s.deck }

// Question returns the current question, or false when the deck is done.
func (s *QuizSession) Question() (Question, bool) {
	if s.index >= len(s.deck.Questions) {
		return Question{}, false
	}
	return s.deck.Questions[s.index], true
}

// Progress returns the 1-based current question number and the total.
func (s *QuizSession) Progress() (int, int) {
	n := s.index + 1
	if n > len(s.deck.Questions) {
		n = len(s.deck.Questions)
	}
	return n, len(s.deck.Questions)
}

// Answer submits a 0-based option index for the current question and
// advances the session.
func (s *QuizSession) Answer(option int) (AnswerResult, error) {
	q, ok := s.Question()
	if !ok {
		return AnswerResult{}, ErrGameOver
	}
	if option < 0 || option >= len(q.Options) {
		return AnswerResult{}, fmt.Errorf("answer must be between 1 and %d", len(q.Options))
	}
	s.index++
	res := AnswerResult{
		Correct:       option == q.Correct,
		CorrectOption: q.Options[q.Correct],
		Explanation:   q.Explanation,
	}
	if res.Correct {
		s.correct++
	}
	return res, nil
}

// Done reports whether every question has been answered.
func (s *QuizSession) Done() bool { return s.index >= len(s.deck.Questions) }

// Score returns correct answers, total questions, and percent correct.
func (s *QuizSession) Score() (correct, total int, percent float64) {
	total = len(s.deck.Questions)
	if total > 0 {
		percent = float64(s.correct) / float64(total) * 100
	}
	return s.correct, total, percent
}

// GradeBand maps a percent score to a verdict.
func GradeBand(percent float64) string {
	switch {
	case percent >= 80:
		return "Excellent"
	case percent >= 60:
		return "Good"
	default:
		return "Keep studying"
	}
}

// ScoreRecorder persists game results. *store.LocalStore satisfies it.
type ScoreRecorder interface {
	RecordScore(game, player string, score int, details string) error
}

// Record writes the session outcome through rec. Percent correct is the
// recorded score; the details column carries deck name and session id.
func (s *QuizSession) Record(rec ScoreRecorder, player string) error {
	correct, total, percent := s.Score()
	details := fmt.Sprintf("deck=%s correct=%d/%d session=%s", s.deck.Name, correct, total, s.ID)
	return rec.RecordScore("quiz", player, int(percent), details)
}
