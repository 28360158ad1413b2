package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tinkerbox/internal/story"
)

var (
	storySeed  int64
	storyRoles []string
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Generated stories and a branching adventure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return storyGenerateCmd.RunE(cmd, nil)
	},
}

var storyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a short random story",
	Long: `Generate a story from random template fills. Pin a role with
--role, e.g. --role hero=Grace --role place="a lighthouse".
Known roles: ` + strings.Join(story.Roles(), ", ") + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		overrides := make(map[string]string, len(storyRoles))
		for _, pair := range storyRoles {
			key, value, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("bad --role %q, want role=value", pair)
			}
			overrides[key] = value
		}
		seed := storySeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		text, err := story.NewGenerator(rand.NewSource(seed)).Generate(overrides)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

var storyAdventureCmd = &cobra.Command{
	Use:   "adventure",
	Short: "Play the forest adventure",
	RunE: func(cmd *cobra.Command, args []string) error {
		adv := story.ForestAdventure()
		if err := adv.Validate(); err != nil {
			return err
		}
		fmt.Println(styles.Title.Render(adv.Title))
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)
		key := adv.Start
		for {
			scene, err := adv.Scene(key)
			if err != nil {
				return err
			}
			fmt.Println(styles.Body.Render(scene.Text))
			if len(scene.Choices) == 0 {
				fmt.Println()
				fmt.Println(styles.Success.Render("The End."))
				return nil
			}
			fmt.Println()
			for i, c := range scene.Choices {
				fmt.Printf("  %d) %s\n", i+1, c.Text)
			}
			fmt.Print(styles.Prompt.Render("> "))

			line, err := reader.ReadString('\n')
			if err != nil {
				return nil // EOF ends the story quietly
			}
			pick, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || pick < 1 || pick > len(scene.Choices) {
				fmt.Println(styles.Warning.Render(fmt.Sprintf("Pick a number from 1 to %d.", len(scene.Choices))))
				continue
			}
			key = scene.Choices[pick-1].Next
			fmt.Println()
		}
	},
}

func init() {
	storyGenerateCmd.Flags().StringArrayVar(&storyRoles, "role", nil, "Pin a role, role=value (repeatable)")
	storyGenerateCmd.Flags().Int64Var(&storySeed, "seed", 0, "Random seed (0 = time-based)")

	storyCmd.AddCommand(storyGenerateCmd, storyAdventureCmd)
}
