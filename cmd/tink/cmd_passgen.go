package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/passgen"
)

var (
	passgenLength    int
	passgenCount     int
	passgenNoUpper   bool
	passgenNoDigits  bool
	passgenNoSymbols bool
	passgenNoSimilar bool
	passgenNoAmbig   bool
	phraseWords      int
	phraseSeparator  string
	phraseCapitalize bool
)

var passgenCmd = &cobra.Command{
	Use:   "passgen",
	Short: "Generate random passwords",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := passgen.Options{
			Length:           passgenLength,
			Uppercase:        !passgenNoUpper,
			Digits:           !passgenNoDigits,
			Symbols:          !passgenNoSymbols,
			ExcludeSimilar:   passgenNoSimilar,
			ExcludeAmbiguous: passgenNoAmbig,
		}
		for i := 0; i < passgenCount; i++ {
			pw, err := passgen.Generate(opts)
			if err != nil {
				return err
			}
			fmt.Println(pw)
		}
		return nil
	},
}

var passgenPhraseCmd = &cobra.Command{
	Use:   "phrase",
	Short: "Generate a word-based passphrase",
	RunE: func(cmd *cobra.Command, args []string) error {
		for i := 0; i < passgenCount; i++ {
			p, err := passgen.Passphrase(phraseWords, phraseSeparator, phraseCapitalize)
			if err != nil {
				return err
			}
			fmt.Println(p)
		}
		return nil
	},
}

var passgenCheckCmd = &cobra.Command{
	Use:   "check [password]",
	Short: "Score a password's strength",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := passgen.Analyze(args[0])
		table := ui.NewSimpleTable("Password strength", []string{"Check", "Result"})
		table.AddRow("Score", strconv.Itoa(a.Score)+"/100")
		table.AddRow("Rating", a.Band)
		table.AddRow("Length", strconv.Itoa(a.Length))
		fmt.Print(table.View(styles))
		for _, tip := range a.Feedback {
			fmt.Println(styles.Muted.Render("• " + tip))
		}
		return nil
	},
}

func init() {
	passgenCmd.PersistentFlags().IntVarP(&passgenCount, "count", "c", 1, "How many to generate")
	passgenCmd.Flags().IntVarP(&passgenLength, "length", "l", 16, "Password length")
	passgenCmd.Flags().BoolVar(&passgenNoUpper, "no-upper", false, "Skip uppercase letters")
	passgenCmd.Flags().BoolVar(&passgenNoDigits, "no-digits", false, "Skip digits")
	passgenCmd.Flags().BoolVar(&passgenNoSymbols, "no-symbols", false, "Skip symbols")
	passgenCmd.Flags().BoolVar(&passgenNoSimilar, "no-similar", false, "Skip look-alike characters (0O1lI)")
	passgenCmd.Flags().BoolVar(&passgenNoAmbig, "no-ambiguous", false, "Skip shell-hostile characters")
	passgenPhraseCmd.Flags().IntVarP(&phraseWords, "words", "w", 4, "Words in the phrase")
	passgenPhraseCmd.Flags().StringVarP(&phraseSeparator, "separator", "s", "-", "Word separator")
	passgenPhraseCmd.Flags().BoolVar(&phraseCapitalize, "capitalize", false, "Capitalize each word")

	passgenCmd.AddCommand(passgenPhraseCmd, passgenCheckCmd)
}
