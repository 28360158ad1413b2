package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/logging"
	"tinkerbox/internal/organizer"
)

var (
	organizeDryRun  bool
	organizeExclude []string
)

func organizerOptions() organizer.Options {
	exclude := cfg.Organizer.Exclude
	if len(organizeExclude) > 0 {
		exclude = organizeExclude
	}
	return organizer.Options{
		Exclude:    exclude,
		DryRun:     organizeDryRun || cfg.Organizer.DryRun,
		MaxWorkers: cfg.Organizer.MaxWorkers,
	}
}

func runOrganize(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	opts := organizerOptions()
	moves, err := organizer.Organize(root, opts)
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		fmt.Println(styles.Muted.Render("Nothing to organize."))
		return nil
	}
	verb := "Moved"
	if opts.DryRun {
		verb = "Would move"
	}
	for _, m := range moves {
		fmt.Printf("%s %s → %s\n", styles.Info.Render(verb),
			filepath.Base(m.From), mustRel(root, m.To))
	}
	logging.Organizer("Organized %s: %d moves (dry-run=%v)", root, len(moves), opts.DryRun)
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ %d files", len(moves))))
	return nil
}

var organizeCmd = &cobra.Command{
	Use:   "organize [dir]",
	Short: "Sort a directory's files into category folders",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrganize,
}

var organizeRunCmd = &cobra.Command{
	Use:   "run [dir]",
	Short: "Sort a directory's files into category folders",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrganize,
}

func mustRel(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

var organizeAnalyzeCmd = &cobra.Command{
	Use:   "analyze [dir]",
	Short: "Summarize a tree by category without moving anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		a, err := organizer.Analyze(cmd.Context(), root, organizerOptions())
		if err != nil {
			return err
		}

		table := ui.NewSimpleTable(fmt.Sprintf("%s — %d files, %s", root,
			a.TotalFiles, organizer.HumanSize(a.TotalSize)),
			[]string{"Category", "Files", "Size"})
		cats := make([]string, 0, len(a.Categories))
		for cat := range a.Categories {
			cats = append(cats, cat)
		}
		sort.Slice(cats, func(i, j int) bool {
			return a.Categories[cats[i]].Size > a.Categories[cats[j]].Size
		})
		for _, cat := range cats {
			stat := a.Categories[cat]
			table.AddRow(cat, strconv.Itoa(stat.Count), organizer.HumanSize(stat.Size))
		}
		fmt.Print(table.View(styles))

		if len(a.Largest) > 0 {
			big := ui.NewSimpleTable("Largest files", []string{"File", "Category", "Size"})
			for _, f := range a.Largest {
				big.AddRow(mustRel(root, f.Path), f.Category, organizer.HumanSize(f.Size))
			}
			fmt.Print(big.View(styles))
		}
		return nil
	},
}

var organizeWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Keep organizing as new files arrive (Ctrl-C to stop)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		opts := organizerOptions()
		opts.DryRun = false // watch always moves

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		moves, errs, err := organizer.Watch(ctx, root, opts)
		if err != nil {
			return err
		}
		fmt.Println(styles.Info.Render("Watching " + root))
		for {
			select {
			case m, ok := <-moves:
				if !ok {
					return nil
				}
				fmt.Printf("%s %s → %s\n", styles.Success.Render("✓"),
					filepath.Base(m.From), mustRel(root, m.To))
			case err, ok := <-errs:
				if !ok {
					return nil
				}
				logger.Warn("Watch error", zap.Error(err))
			case <-ctx.Done():
				return nil
			}
		}
	},
}

func init() {
	organizeCmd.PersistentFlags().BoolVar(&organizeDryRun, "dry-run", false, "Plan moves without touching files")
	organizeCmd.PersistentFlags().StringSliceVar(&organizeExclude, "exclude", nil, "Glob patterns to skip (overrides config)")

	organizeCmd.AddCommand(organizeRunCmd, organizeAnalyzeCmd, organizeWatchCmd)
}
