package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/calc"
)

var (
	calcNoHistory    bool
	calcHistoryLimit int
)

var calcCmd = &cobra.Command{
	Use:   "calc [expression...]",
	Short: "Evaluate \"<number> <op> <number>\"",
	Long: `Evaluate a binary expression, e.g. 'tink calc 2 + 3' or
'tink calc 2 ^ 10'. Results are kept in history unless --no-history.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := joinArgs(args)

		var engine *calc.Engine
		if calcNoHistory {
			engine = calc.New(nil)
		} else {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			engine = calc.New(st)
		}

		result, err := engine.Eval(expr)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", expr, calc.FormatResult(result))
		return nil
	},
}

var calcHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Recent calculations",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := st.CalcHistory(calcHistoryLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println(styles.Muted.Render("No history yet."))
			return nil
		}
		table := ui.NewSimpleTable("Calculation history", []string{"Expression", "Result"})
		for _, e := range entries {
			table.AddRow(e[0], e[1])
		}
		fmt.Print(table.View(styles))
		return nil
	},
}

func init() {
	calcCmd.Flags().BoolVar(&calcNoHistory, "no-history", false, "Do not record this calculation")
	calcHistoryCmd.Flags().IntVar(&calcHistoryLimit, "limit", 20, "Rows to show")

	calcCmd.AddCommand(calcHistoryCmd)
}
