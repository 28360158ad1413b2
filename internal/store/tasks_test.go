package store

import (
	"errors"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndGetTask(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddTask(Task{Title: "Write report", Priority: "high", DueDate: "2030-01-15"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	task, err := s.GetTask(id)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if task.Title != "Write report" {
		t.Errorf("Unexpected title %q", task.Title)
	}
	if task.Status != TaskPending {
		t.Errorf("Expected default status pending, got %q", task.Status)
	}
	if task.Priority != "high" {
		t.Errorf("Unexpected priority %q", task.Priority)
	}
}

func TestAddTaskValidation(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddTask(Task{Title: "  "}); err == nil {
		t.Error("Expected error for empty title")
	}
	if _, err := s.AddTask(Task{Title: "x", Priority: "critical"}); err == nil {
		t.Error("Expected error for unknown priority")
	}
	if _, err := s.AddTask(Task{Title: "x", DueDate: "15/01/2030"}); err == nil {
		t.Error("Expected error for malformed due date")
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddTask(Task{Title: "t"})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateTaskStatus(id, TaskCompleted); err != nil {
		t.Fatalf("UpdateTaskStatus failed: %v", err)
	}
	task, _ := s.GetTask(id)
	if task.Status != TaskCompleted {
		t.Errorf("Expected completed, got %q", task.Status)
	}

	if err := s.UpdateTaskStatus(id, "done"); err == nil {
		t.Error("Expected error for invalid status")
	}
	if err := s.UpdateTaskStatus(9999, TaskCompleted); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListTasksFilters(t *testing.T) {
	s := newTestStore(t)

	mustAddTask(t, s, Task{Title: "a", Priority: "low"})
	mustAddTask(t, s, Task{Title: "b", Priority: "urgent"})
	id := mustAddTask(t, s, Task{Title: "c", Priority: "urgent"})
	if err := s.UpdateTaskStatus(id, TaskCompleted); err != nil {
		t.Fatal(err)
	}

	all, err := s.ListTasks("", "")
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 tasks, got %d", len(all))
	}
	// urgent before low
	if all[0].Priority != "urgent" {
		t.Errorf("Expected urgent first, got %q", all[0].Priority)
	}

	urgent, err := s.ListTasks(TaskPending, "urgent")
	if err != nil {
		t.Fatal(err)
	}
	if len(urgent) != 1 || urgent[0].Title != "b" {
		t.Errorf("Unexpected filter result: %+v", urgent)
	}
}

func TestOverdueAndDueSoon(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC)

	mustAddTask(t, s, Task{Title: "late", DueDate: "2030-06-01"})
	mustAddTask(t, s, Task{Title: "soon", DueDate: "2030-06-18"})
	mustAddTask(t, s, Task{Title: "far", DueDate: "2030-12-01"})
	done := mustAddTask(t, s, Task{Title: "late-done", DueDate: "2030-06-01"})
	if err := s.UpdateTaskStatus(done, TaskCompleted); err != nil {
		t.Fatal(err)
	}

	overdue, err := s.OverdueTasks(now)
	if err != nil {
		t.Fatalf("OverdueTasks failed: %v", err)
	}
	if len(overdue) != 1 || overdue[0].Title != "late" {
		t.Errorf("Unexpected overdue set: %+v", overdue)
	}

	soon, err := s.TasksDueSoon(now, 7)
	if err != nil {
		t.Fatalf("TasksDueSoon failed: %v", err)
	}
	if len(soon) != 1 || soon[0].Title != "soon" {
		t.Errorf("Unexpected due-soon set: %+v", soon)
	}

	dash, err := s.TaskDashboardData(now)
	if err != nil {
		t.Fatalf("TaskDashboardData failed: %v", err)
	}
	if dash.Total != 4 || dash.Overdue != 1 || dash.DueSoon != 1 {
		t.Errorf("Unexpected dashboard: %+v", dash)
	}
	if dash.ByStatus[TaskCompleted] != 1 {
		t.Errorf("Expected 1 completed in dashboard, got %d", dash.ByStatus[TaskCompleted])
	}
}

func TestTaskOverdueHelper(t *testing.T) {
	now := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		task Task
		want bool
	}{
		{Task{DueDate: "2030-06-01", Status: TaskPending}, true},
		{Task{DueDate: "2030-06-15", Status: TaskPending}, false},
		{Task{DueDate: "2030-06-01", Status: TaskCompleted}, false},
		{Task{DueDate: "", Status: TaskPending}, false},
		{Task{DueDate: "bogus", Status: TaskPending}, false},
	}
	for i, c := range cases {
		if got := c.task.Overdue(now); got != c.want {
			t.Errorf("case %d: Overdue = %v, want %v", i, got, c.want)
		}
	}
}

func mustAddTask(t *testing.T, s *LocalStore, task Task) int64 {
	t.Helper()
	id, err := s.AddTask(task)
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	return id
}
