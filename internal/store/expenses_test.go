package store

import (
	"strings"
	"testing"
	"time"
)

func TestAddExpenseValidation(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddExpense(Expense{Amount: -5, Description: "x", Category: "food"}); err == nil {
		t.Error("Expected error for negative amount")
	}
	if _, err := s.AddExpense(Expense{Amount: 0, Description: "x"}); err == nil {
		t.Error("Expected error for zero amount")
	}
	if _, err := s.AddExpense(Expense{Amount: 5, Description: ""}); err == nil {
		t.Error("Expected error for empty description")
	}
	if _, err := s.AddExpense(Expense{Amount: 5, Description: "x", Date: "junk"}); err == nil {
		t.Error("Expected error for malformed date")
	}

	// Empty date defaults to today
	id, err := s.AddExpense(Expense{Amount: 5, Description: "coffee", Category: "food"})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if id == 0 {
		t.Error("Expected non-zero id")
	}
}

func TestExpenseQueries(t *testing.T) {
	s := newTestStore(t)

	add := func(amount float64, cat, date string) {
		t.Helper()
		if _, err := s.AddExpense(Expense{Amount: amount, Description: cat + " spend", Category: cat, Date: date}); err != nil {
			t.Fatalf("AddExpense failed: %v", err)
		}
	}
	add(10, "food", "2030-03-01")
	add(20, "food", "2030-03-15")
	add(30, "rent", "2030-03-01")
	add(40, "food", "2030-04-02")

	byCat, err := s.ExpensesByCategory("food")
	if err != nil {
		t.Fatal(err)
	}
	if len(byCat) != 3 {
		t.Errorf("Expected 3 food expenses, got %d", len(byCat))
	}

	ranged, err := s.ExpensesByDateRange("2030-03-01", "2030-03-31")
	if err != nil {
		t.Fatal(err)
	}
	if len(ranged) != 3 {
		t.Errorf("Expected 3 expenses in March, got %d", len(ranged))
	}

	sum, err := s.ExpenseMonthlySummary(2030, time.March)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Total != 60 || sum.Count != 3 {
		t.Errorf("Unexpected monthly summary: %+v", sum)
	}
	if sum.ByCategory["food"] != 30 || sum.ByCategory["rent"] != 30 {
		t.Errorf("Unexpected category split: %v", sum.ByCategory)
	}
}

func TestExpenseCategoryAnalysis(t *testing.T) {
	s := newTestStore(t)

	for _, e := range []Expense{
		{Amount: 75, Description: "rent", Category: "rent", Date: "2030-01-01"},
		{Amount: 15, Description: "a", Category: "food", Date: "2030-01-02"},
		{Amount: 10, Description: "b", Category: "food", Date: "2030-01-03"},
	} {
		if _, err := s.AddExpense(e); err != nil {
			t.Fatal(err)
		}
	}

	breakdown, err := s.ExpenseCategoryAnalysis()
	if err != nil {
		t.Fatalf("ExpenseCategoryAnalysis failed: %v", err)
	}
	if len(breakdown) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(breakdown))
	}
	// rent (75) sorts before food (25)
	if breakdown[0].Category != "rent" || breakdown[0].Percent != 75 {
		t.Errorf("Unexpected top category: %+v", breakdown[0])
	}
	if breakdown[1].Count != 2 || breakdown[1].Average != 12.5 {
		t.Errorf("Unexpected food aggregate: %+v", breakdown[1])
	}
}

func TestExpenseReport(t *testing.T) {
	s := newTestStore(t)

	report, err := s.ExpenseReport("", "")
	if err != nil {
		t.Fatalf("ExpenseReport failed: %v", err)
	}
	if !strings.Contains(report, "No expenses recorded") {
		t.Errorf("Empty report should say so, got:\n%s", report)
	}

	if _, err := s.AddExpense(Expense{Amount: 12.5, Description: "pizza", Category: "food", Date: "2030-05-01"}); err != nil {
		t.Fatal(err)
	}
	report, err = s.ExpenseReport("2030-05-01", "2030-05-31")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Expense Report", "pizza", "food", "12.50"} {
		if !strings.Contains(report, want) {
			t.Errorf("Report missing %q:\n%s", want, report)
		}
	}
}
