package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tinkerbox/internal/logging"
)

// Expense is a row in the expenses table. Date is YYYY-MM-DD.
type Expense struct {
	ID          int64
	Amount      float64
	Description string
	Category    string
	Date        string
}

// AddExpense inserts an expense and returns its id. Amount must be positive
// and the date must be YYYY-MM-DD (today when empty).
func (s *LocalStore) AddExpense(e Expense) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.Amount <= 0 {
		return 0, fmt.Errorf("expense amount must be positive, got %.2f", e.Amount)
	}
	if strings.TrimSpace(e.Description) == "" {
		return 0, fmt.Errorf("expense description required")
	}
	if e.Category == "" {
		e.Category = "misc"
	}
	if e.Date == "" {
		e.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return 0, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", e.Date)
	}

	res, err := s.db.Exec(
		"INSERT INTO expenses (amount, description, category, date) VALUES (?, ?, ?, ?)",
		e.Amount, e.Description, e.Category, e.Date,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add expense: %w", err)
	}
	id, _ := res.LastInsertId()
	logging.StoreDebug("Added expense %d: %.2f %s", id, e.Amount, e.Category)
	return id, nil
}

// ListExpenses returns all expenses, newest date first.
func (s *LocalStore) ListExpenses() ([]Expense, error) {
	return s.queryExpenses("SELECT id, amount, description, category, date FROM expenses ORDER BY date DESC, id DESC")
}

// ExpensesByCategory returns expenses in one category, newest first.
func (s *LocalStore) ExpensesByCategory(category string) ([]Expense, error) {
	return s.queryExpenses(
		"SELECT id, amount, description, category, date FROM expenses WHERE category = ? ORDER BY date DESC, id DESC",
		category)
}

// ExpensesByDateRange returns expenses with start <= date <= end.
func (s *LocalStore) ExpensesByDateRange(start, end string) ([]Expense, error) {
	return s.queryExpenses(
		"SELECT id, amount, description, category, date FROM expenses WHERE date >= ? AND date <= ? ORDER BY date",
		start, end)
}

// MonthlySummary sums expenses for one calendar month, split by category.
type MonthlySummary struct {
	Year       int
	Month      time.Month
	Total      float64
	Count      int
	ByCategory map[string]float64
}

// ExpenseMonthlySummary aggregates one month of expenses.
func (s *LocalStore) ExpenseMonthlySummary(year int, month time.Month) (MonthlySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := MonthlySummary{Year: year, Month: month, ByCategory: make(map[string]float64)}
	prefix := fmt.Sprintf("%04d-%02d", year, int(month))

	rows, err := s.db.Query(
		`SELECT category, COUNT(*), SUM(amount) FROM expenses WHERE date LIKE ? || '%' GROUP BY category`,
		prefix,
	)
	if err != nil {
		return sum, fmt.Errorf("failed to summarize month: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cat string
		var n int
		var total float64
		if err := rows.Scan(&cat, &n, &total); err != nil {
			continue
		}
		sum.ByCategory[cat] = total
		sum.Total += total
		sum.Count += n
	}
	return sum, rows.Err()
}

// CategoryBreakdown holds aggregate numbers for one expense category.
type CategoryBreakdown struct {
	Category string
	Total    float64
	Count    int
	Average  float64
	Percent  float64
}

// ExpenseCategoryAnalysis aggregates the whole table by category, sorted by
// total descending. Percent is the share of the overall total.
func (s *LocalStore) ExpenseCategoryAnalysis() ([]CategoryBreakdown, error) {
	timer := logging.StartTimer(logging.CategoryStore, "ExpenseCategoryAnalysis")
	defer timer.Stop()

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT category, COUNT(*), SUM(amount), AVG(amount) FROM expenses GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("failed to analyze categories: %w", err)
	}
	defer rows.Close()

	var breakdown []CategoryBreakdown
	var grand float64
	for rows.Next() {
		var b CategoryBreakdown
		if err := rows.Scan(&b.Category, &b.Count, &b.Total, &b.Average); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		grand += b.Total
		breakdown = append(breakdown, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range breakdown {
		if grand > 0 {
			breakdown[i].Percent = breakdown[i].Total / grand * 100
		}
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Total > breakdown[j].Total })
	return breakdown, nil
}

// ExpenseReport renders a markdown report for the optional date range.
// Empty bounds mean the whole table.
func (s *LocalStore) ExpenseReport(start, end string) (string, error) {
	var expenses []Expense
	var err error
	if start != "" || end != "" {
		if start == "" {
			start = "0000-01-01"
		}
		if end == "" {
			end = "9999-12-31"
		}
		expenses, err = s.ExpensesByDateRange(start, end)
	} else {
		expenses, err = s.ListExpenses()
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# Expense Report\n\n")
	if len(expenses) == 0 {
		b.WriteString("No expenses recorded.\n")
		return b.String(), nil
	}

	var total float64
	byCat := make(map[string]float64)
	for _, e := range expenses {
		total += e.Amount
		byCat[e.Category] += e.Amount
	}

	fmt.Fprintf(&b, "- Entries: %d\n", len(expenses))
	fmt.Fprintf(&b, "- Total: %.2f\n", total)
	fmt.Fprintf(&b, "- Average: %.2f\n\n", total/float64(len(expenses)))

	b.WriteString("## By category\n\n")
	b.WriteString("| Category | Total | Share |\n|---|---|---|\n")
	cats := make([]string, 0, len(byCat))
	for c := range byCat {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return byCat[cats[i]] > byCat[cats[j]] })
	for _, c := range cats {
		fmt.Fprintf(&b, "| %s | %.2f | %.1f%% |\n", c, byCat[c], byCat[c]/total*100)
	}

	b.WriteString("\n## Recent entries\n\n")
	limit := len(expenses)
	if limit > 10 {
		limit = 10
	}
	for _, e := range expenses[:limit] {
		fmt.Fprintf(&b, "- %s  %.2f  %s (%s)\n", e.Date, e.Amount, e.Description, e.Category)
	}

	return b.String(), nil
}

func (s *LocalStore) queryExpenses(query string, args ...interface{}) ([]Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Description, &e.Category, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
