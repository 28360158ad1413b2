// Package grades is a small grade book: students, per-subject grade lists,
// averages, and a markdown report card.
package grades

import (
	"fmt"
	"sort"
	"strings"
)

// Student holds one student's grades keyed by subject.
type Student struct {
	ID     string
	Name   string
	Grades map[string][]float64
}

// Book manages students by ID.
type Book struct {
	students map[string]*Student
	order    []string
}

// NewBook returns an empty grade book.
func NewBook() *Book {
	return &Book{students: make(map[string]*Student)}
}

// AddStudent registers a student. Duplicate IDs are rejected.
func (b *Book) AddStudent(id, name string) error {
	if id == "" || name == "" {
		return fmt.Errorf("student id and name are required")
	}
	if _, ok := b.students[id]; ok {
		return fmt.Errorf("student %q already exists", id)
	}
	b.students[id] = &Student{ID: id, Name: name, Grades: make(map[string][]float64)}
	b.order = append(b.order, id)
	return nil
}

// AddGrade appends a grade for a student's subject. Grades must be 0-100.
func (b *Book) AddGrade(id, subject string, grade float64) error {
	s, ok := b.students[id]
	if !ok {
		return fmt.Errorf("student %q not found", id)
	}
	if grade < 0 || grade > 100 {
		return fmt.Errorf("grade must be between 0 and 100, got %v", grade)
	}
	if subject == "" {
		return fmt.Errorf("subject is required")
	}
	s.Grades[subject] = append(s.Grades[subject], grade)
	return nil
}

// Student returns the student with the given ID.
func (b *Book) Student(id string) (*Student, error) {
	s, ok := b.students[id]
	if !ok {
		return nil, fmt.Errorf("student %q not found", id)
	}
	return s, nil
}

// Students lists students in registration order.
func (b *Book) Students() []*Student {
	out := make([]*Student, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.students[id])
	}
	return out
}

// SubjectAverage computes a student's average in one subject, zero when the
// student has no grades there.
func (s *Student) SubjectAverage(subject string) float64 {
	return mean(s.Grades[subject])
}

// OverallAverage computes the student's average across every recorded grade.
func (s *Student) OverallAverage() float64 {
	var all []float64
	for _, g := range s.Grades {
		all = append(all, g...)
	}
	return mean(all)
}

// ClassAverage computes the average over every student's grades in subject.
func (b *Book) ClassAverage(subject string) float64 {
	var all []float64
	for _, s := range b.students {
		all = append(all, s.Grades[subject]...)
	}
	return mean(all)
}

// Letter maps a 0-100 average to a letter grade.
func Letter(average float64) string {
	switch {
	case average >= 90:
		return "A"
	case average >= 80:
		return "B"
	case average >= 70:
		return "C"
	case average >= 60:
		return "D"
	default:
		return "F"
	}
}

// Report renders a markdown report card for one student.
func (b *Book) Report(id string) (string, error) {
	s, ok := b.students[id]
	if !ok {
		return "", fmt.Errorf("student %q not found", id)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Grade Report: %s\n\n", s.Name)
	fmt.Fprintf(&sb, "Student ID: `%s`\n\n", s.ID)
	if len(s.Grades) == 0 {
		sb.WriteString("_No grades recorded._\n")
		return sb.String(), nil
	}
	sb.WriteString("| Subject | Grades | Average | Letter |\n")
	sb.WriteString("|---------|--------|---------|--------|\n")
	subjects := make([]string, 0, len(s.Grades))
	for subject := range s.Grades {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	for _, subject := range subjects {
		avg := s.SubjectAverage(subject)
		fmt.Fprintf(&sb, "| %s | %s | %.1f | %s |\n",
			subject, joinGrades(s.Grades[subject]), avg, Letter(avg))
	}
	overall := s.OverallAverage()
	fmt.Fprintf(&sb, "\n**Overall average: %.1f (%s)**\n", overall, Letter(overall))
	return sb.String(), nil
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func joinGrades(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.1f", v), "0"), ".")
	}
	return strings.Join(parts, ", ")
}
