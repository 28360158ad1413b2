package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/grades"
)

// classFile is the YAML layout for a class roster:
//
//	students:
//	  - id: s1
//	    name: Ada
//	    grades:
//	      math: [92, 88]
type classFile struct {
	Students []struct {
		ID     string               `yaml:"id"`
		Name   string               `yaml:"name"`
		Grades map[string][]float64 `yaml:"grades"`
	} `yaml:"students"`
}

func loadBook(path string) (*grades.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class file: %w", err)
	}
	var cf classFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("invalid class file %s: %w", path, err)
	}
	book := grades.NewBook()
	for _, s := range cf.Students {
		if err := book.AddStudent(s.ID, s.Name); err != nil {
			return nil, err
		}
		for subject, vals := range s.Grades {
			for _, g := range vals {
				if err := book.AddGrade(s.ID, subject, g); err != nil {
					return nil, fmt.Errorf("student %s: %w", s.ID, err)
				}
			}
		}
	}
	return book, nil
}

var gradesCmd = &cobra.Command{
	Use:   "grades [class.yaml]",
	Short: "Grade book over a YAML class roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := loadBook(args[0])
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable("Class overview", []string{"ID", "Student", "Average", "Letter"})
		for _, s := range book.Students() {
			avg := s.OverallAverage()
			table.AddRow(s.ID, s.Name, strconv.FormatFloat(avg, 'f', 1, 64), grades.Letter(avg))
		}
		fmt.Print(table.View(styles))
		return nil
	},
}

var gradesReportCmd = &cobra.Command{
	Use:   "report [class.yaml] [student-id]",
	Short: "Full report card for one student",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := loadBook(args[0])
		if err != nil {
			return err
		}
		report, err := book.Report(args[1])
		if err != nil {
			return err
		}
		fmt.Print(ui.RenderMarkdown(report, styles))
		return nil
	},
}

var gradesSubjectCmd = &cobra.Command{
	Use:   "subject [class.yaml] [subject]",
	Short: "Class average in one subject",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := loadBook(args[0])
		if err != nil {
			return err
		}
		avg := book.ClassAverage(args[1])
		fmt.Printf("Class average in %s: %.1f (%s)\n", args[1], avg, grades.Letter(avg))
		return nil
	},
}

func init() {
	gradesCmd.AddCommand(gradesReportCmd, gradesSubjectCmd)
}
