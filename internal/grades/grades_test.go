package grades

import (
	"math"
	"strings"
	"testing"
)

func seededBook(t *testing.T) *Book {
	t.Helper()
	b := NewBook()
	if err := b.AddStudent("S001", "Alice Johnson"); err != nil {
		t.Fatalf("AddStudent: %v", err)
	}
	if err := b.AddStudent("S002", "Bob Smith"); err != nil {
		t.Fatalf("AddStudent: %v", err)
	}
	for _, g := range []struct {
		id, subject string
		grade       float64
	}{
		{"S001", "Math", 85}, {"S001", "Math", 90},
		{"S001", "Science", 78}, {"S001", "English", 92},
		{"S002", "Math", 88}, {"S002", "Science", 94},
	} {
		if err := b.AddGrade(g.id, g.subject, g.grade); err != nil {
			t.Fatalf("AddGrade: %v", err)
		}
	}
	return b
}

func TestAverages(t *testing.T) {
	b := seededBook(t)
	s, err := b.Student("S001")
	if err != nil {
		t.Fatalf("Student: %v", err)
	}
	if got := s.SubjectAverage("Math"); got != 87.5 {
		t.Errorf("SubjectAverage(Math) = %v, want 87.5", got)
	}
	if got := s.OverallAverage(); math.Abs(got-86.25) > 1e-9 {
		t.Errorf("OverallAverage = %v, want 86.25", got)
	}
	if got := b.ClassAverage("Math"); math.Abs(got-87.666666666) > 1e-6 {
		t.Errorf("ClassAverage(Math) = %v, want ~87.67", got)
	}
	if got := b.ClassAverage("History"); got != 0 {
		t.Errorf("ClassAverage(History) = %v, want 0", got)
	}
}

func TestGradeValidation(t *testing.T) {
	b := seededBook(t)
	if err := b.AddGrade("S001", "Math", 101); err == nil {
		t.Error("expected error for grade > 100")
	}
	if err := b.AddGrade("S001", "Math", -1); err == nil {
		t.Error("expected error for negative grade")
	}
	if err := b.AddGrade("S001", "", 50); err == nil {
		t.Error("expected error for empty subject")
	}
	if err := b.AddGrade("nope", "Math", 50); err == nil {
		t.Error("expected error for unknown student")
	}
}

func TestDuplicateStudent(t *testing.T) {
	b := seededBook(t)
	if err := b.AddStudent("S001", "Imposter"); err == nil {
		t.Fatal("expected error for duplicate student id")
	}
}

func TestLetter(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{95, "A"}, {90, "A"}, {89.9, "B"}, {80, "B"},
		{75, "C"}, {65, "D"}, {59.9, "F"}, {0, "F"},
	}
	for _, tc := range cases {
		if got := Letter(tc.avg); got != tc.want {
			t.Errorf("Letter(%v) = %q, want %q", tc.avg, got, tc.want)
		}
	}
}

func TestReport(t *testing.T) {
	b := seededBook(t)
	report, err := b.Report("S001")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	for _, want := range []string{"Alice Johnson", "| Math |", "87.5", "Overall average: 86.2", "(B)"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if _, err := b.Report("ghost"); err == nil {
		t.Fatal("expected error for unknown student")
	}
}

func TestStudentsOrder(t *testing.T) {
	b := seededBook(t)
	students := b.Students()
	if len(students) != 2 || students[0].ID != "S001" || students[1].ID != "S002" {
		t.Fatalf("unexpected student order: %+v", students)
	}
}
