package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/games"
	"tinkerbox/internal/logging"
)

var (
	playQuizDeck string
	scoresGame   string
	scoresLimit  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a terminal game",
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// findDeck picks a quiz deck by name: the builtin deck plus any *.yaml decks
// in the configured decks dir. Empty name means builtin.
func findDeck(name string) (*games.Deck, error) {
	builtin := games.BuiltinDeck()
	if name == "" || strings.EqualFold(name, builtin.Name) {
		return builtin, nil
	}
	decks, errs := games.LoadDecks(cfg.DecksDir(homeDir))
	for _, err := range errs {
		logger.Warn("Skipping invalid deck", zap.Error(err))
	}
	names := []string{builtin.Name}
	for _, d := range decks {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
		names = append(names, d.Name)
	}
	return nil, fmt.Errorf("unknown deck %q (have: %s)", name, strings.Join(names, ", "))
}

var playQuizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Multiple-choice quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := findDeck(playQuizDeck)
		if err != nil {
			return err
		}
		session, err := games.NewQuizSession(deck)
		if err != nil {
			return err
		}
		final, err := tea.NewProgram(ui.NewQuizModel(session, styles)).Run()
		if err != nil {
			return fmt.Errorf("quiz failed: %w", err)
		}
		m := final.(ui.QuizModel)
		if !m.Session().Done() {
			return nil // quit mid-game, nothing to record
		}

		correct, total, percent := m.Session().Score()
		fmt.Printf("%s %d/%d (%.0f%%) — %s\n", styles.Info.Render("Final score:"),
			correct, total, percent, games.GradeBand(percent))

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		logging.Games("Quiz finished: player=%s deck=%s score=%.0f%%", player, deck.Name, percent)
		return m.Session().Record(st, player)
	},
}

var playHangmanCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Guess the word before the gallows fill",
	RunE: func(cmd *cobra.Command, args []string) error {
		game := games.NewHangman(newRNG())
		final, err := tea.NewProgram(ui.NewHangmanModel(game, styles)).Run()
		if err != nil {
			return fmt.Errorf("hangman failed: %w", err)
		}
		g := final.(ui.HangmanModel).Game()
		if !g.Won() && !g.Lost() {
			return nil
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		// Score is guesses remaining, so a clean win ranks highest and a
		// loss records zero.
		score := 0
		outcome := "lost"
		if g.Won() {
			score = g.Remaining()
			outcome = "won"
		}
		logging.Games("Hangman finished: player=%s word=%s outcome=%s", player, g.Word(), outcome)
		return st.RecordScore("hangman", player, score,
			fmt.Sprintf("word=%s outcome=%s wrong=%d", g.Word(), outcome, g.Wrong()))
	},
}

var playGuessCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess a number between 1 and 100",
	RunE: func(cmd *cobra.Command, args []string) error {
		game := games.NewGuessGame(newRNG())
		final, err := tea.NewProgram(ui.NewGuessModel(game, styles)).Run()
		if err != nil {
			return fmt.Errorf("guess failed: %w", err)
		}
		g := final.(ui.GuessModel).Game()
		if !g.Solved() {
			return nil
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		// Fewer attempts should rank higher, so store the negated count.
		logging.Games("Guess finished: player=%s attempts=%d", player, g.Attempts())
		return st.RecordScore("guess", player, -g.Attempts(),
			fmt.Sprintf("secret=%d attempts=%d", g.Secret(), g.Attempts()))
	},
}

var playTicTacToeCmd = &cobra.Command{
	Use:     "tictactoe",
	Aliases: []string{"ttt"},
	Short:   "Two-player tic-tac-toe",
	RunE: func(cmd *cobra.Command, args []string) error {
		game := games.NewTicTacToe()
		if _, err := tea.NewProgram(ui.NewTicTacToeModel(game, styles)).Run(); err != nil {
			return fmt.Errorf("tictactoe failed: %w", err)
		}
		return nil
	},
}

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "High score tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		gamesToShow := []string{"quiz", "hangman", "guess"}
		if scoresGame != "" {
			gamesToShow = []string{scoresGame}
		}
		for _, game := range gamesToShow {
			scores, err := st.TopScores(game, scoresLimit)
			if err != nil {
				return err
			}
			if len(scores) == 0 {
				continue
			}
			table := ui.NewSimpleTable(fmt.Sprintf("Top %s scores", game),
				[]string{"Player", "Score", "Details", "Played"})
			for _, s := range scores {
				table.AddRow(s.Player, strconv.Itoa(s.Score), s.Details,
					s.PlayedAt.Format("2006-01-02 15:04"))
			}
			fmt.Print(table.View(styles))
		}
		return nil
	},
}

func init() {
	playQuizCmd.Flags().StringVar(&playQuizDeck, "deck", "", "Quiz deck name (default: builtin)")
	scoresCmd.Flags().StringVar(&scoresGame, "game", "", "Only one game's table")
	scoresCmd.Flags().IntVar(&scoresLimit, "limit", 10, "Rows per table")

	playCmd.AddCommand(playQuizCmd, playHangmanCmd, playGuessCmd, playTicTacToeCmd)
}
