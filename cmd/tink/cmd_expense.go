package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/store"
)

var (
	expenseCategory   string
	expenseDate       string
	expenseListFilter string
	reportStart       string
	reportEnd         string
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Track spending",
	RunE: func(cmd *cobra.Command, args []string) error {
		return expenseListCmd.RunE(cmd, nil)
	},
}

var expenseAddCmd = &cobra.Command{
	Use:   "add [amount] [description]",
	Short: "Record an expense",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("bad amount %q", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.AddExpense(store.Expense{
			Amount:      amount,
			Description: joinArgs(args[1:]),
			Category:    expenseCategory,
			Date:        expenseDate,
		})
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Recorded expense #%d", id)))
		return nil
	},
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, optionally by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		var expenses []store.Expense
		if expenseListFilter != "" {
			expenses, err = st.ExpensesByCategory(expenseListFilter)
		} else {
			expenses, err = st.ListExpenses()
		}
		if err != nil {
			return err
		}
		if len(expenses) == 0 {
			fmt.Println(styles.Muted.Render("No expenses recorded."))
			return nil
		}
		var total float64
		table := ui.NewSimpleTable("Expenses", []string{"ID", "Date", "Category", "Description", "Amount"})
		for _, e := range expenses {
			total += e.Amount
			table.AddRow(strconv.FormatInt(e.ID, 10), e.Date, e.Category, e.Description,
				fmt.Sprintf("%.2f", e.Amount))
		}
		fmt.Print(table.View(styles))
		fmt.Printf("%s %.2f\n", styles.Bold.Render("Total:"), total)
		return nil
	},
}

var expenseMonthCmd = &cobra.Command{
	Use:     "month [YYYY-MM]",
	Aliases: []string{"summary"},
	Short:   "Summarize one month (default: current)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, month := time.Now().Year(), time.Now().Month()
		if len(args) == 1 {
			t, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("bad month %q, want YYYY-MM", args[0])
			}
			year, month = t.Year(), t.Month()
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sum, err := st.ExpenseMonthlySummary(year, month)
		if err != nil {
			return err
		}
		fmt.Println(styles.Title.Render(fmt.Sprintf("%s %d", month, year)))
		fmt.Printf("%d expenses · %.2f total\n\n", sum.Count, sum.Total)
		if len(sum.ByCategory) > 0 {
			table := ui.NewSimpleTable("By category", []string{"Category", "Total"})
			for cat, total := range sum.ByCategory {
				table.AddRow(cat, fmt.Sprintf("%.2f", total))
			}
			fmt.Print(table.View(styles))
		}
		return nil
	},
}

var expenseCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Break down all spending by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		breakdown, err := st.ExpenseCategoryAnalysis()
		if err != nil {
			return err
		}
		if len(breakdown) == 0 {
			fmt.Println(styles.Muted.Render("No expenses recorded."))
			return nil
		}
		table := ui.NewSimpleTable("Spending by category",
			[]string{"Category", "Total", "Count", "Average", "Share"})
		for _, b := range breakdown {
			table.AddRow(b.Category, fmt.Sprintf("%.2f", b.Total), strconv.Itoa(b.Count),
				fmt.Sprintf("%.2f", b.Average), fmt.Sprintf("%.1f%%", b.Percent))
		}
		fmt.Print(table.View(styles))
		return nil
	},
}

var expenseReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a spending report for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		start, end := reportStart, reportEnd
		if start == "" {
			start = time.Now().AddDate(0, -1, 0).Format("2006-01-02")
		}
		if end == "" {
			end = time.Now().Format("2006-01-02")
		}
		md, err := st.ExpenseReport(start, end)
		if err != nil {
			return err
		}
		fmt.Print(ui.RenderMarkdown(md, styles))
		return nil
	},
}

func init() {
	expenseAddCmd.Flags().StringVar(&expenseCategory, "category", "General", "Expense category")
	expenseAddCmd.Flags().StringVar(&expenseDate, "date", "", "Date (YYYY-MM-DD, default today)")
	expenseListCmd.Flags().StringVar(&expenseListFilter, "category", "", "Filter by category")
	expenseReportCmd.Flags().StringVar(&reportStart, "from", "", "Start date (YYYY-MM-DD, default a month ago)")
	expenseReportCmd.Flags().StringVar(&reportEnd, "to", "", "End date (YYYY-MM-DD, default today)")

	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseMonthCmd)
	expenseCmd.AddCommand(expenseCategoriesCmd)
	expenseCmd.AddCommand(expenseReportCmd)
}
