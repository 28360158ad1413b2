package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tinkerbox/internal/logging"
)

// Task statuses and priorities. Kept as plain strings in the schema; these
// constants are the accepted values.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
	TaskCancelled  = "cancelled"
)

var taskPriorities = []string{"low", "medium", "high", "urgent"}
var taskStatuses = []string{TaskPending, TaskInProgress, TaskCompleted, TaskCancelled}

// Task is a row in the tasks table.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    string
	Status      string
	DueDate     string // YYYY-MM-DD, empty when unset
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Overdue reports whether the task is past its due date and still open.
func (t Task) Overdue(now time.Time) bool {
	if t.DueDate == "" || t.Status == TaskCompleted || t.Status == TaskCancelled {
		return false
	}
	due, err := time.Parse("2006-01-02", t.DueDate)
	if err != nil {
		return false
	}
	return due.Before(now.Truncate(24 * time.Hour))
}

// ValidTaskPriority reports whether p is an accepted priority.
func ValidTaskPriority(p string) bool {
	for _, v := range taskPriorities {
		if v == p {
			return true
		}
	}
	return false
}

// ValidTaskStatus reports whether s is an accepted status.
func ValidTaskStatus(s string) bool {
	for _, v := range taskStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// AddTask inserts a task and returns its id.
func (s *LocalStore) AddTask(t Task) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(t.Title) == "" {
		return 0, fmt.Errorf("task title required")
	}
	if t.Priority == "" {
		t.Priority = "medium"
	}
	if !ValidTaskPriority(t.Priority) {
		return 0, fmt.Errorf("invalid priority %q (want one of %s)", t.Priority, strings.Join(taskPriorities, ", "))
	}
	if t.Status == "" {
		t.Status = TaskPending
	}
	if t.DueDate != "" {
		if _, err := time.Parse("2006-01-02", t.DueDate); err != nil {
			return 0, fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", t.DueDate)
		}
	}

	res, err := s.db.Exec(
		`INSERT INTO tasks (title, description, priority, status, due_date) VALUES (?, ?, ?, ?, NULLIF(?, ''))`,
		t.Title, t.Description, t.Priority, t.Status, t.DueDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add task: %w", err)
	}
	id, _ := res.LastInsertId()
	logging.StoreDebug("Added task %d: %s", id, t.Title)
	return id, nil
}

// GetTask fetches a task by id.
func (s *LocalStore) GetTask(id int64) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scanTask(s.db.QueryRow(
		`SELECT id, title, description, priority, status, COALESCE(due_date, ''), created_at, updated_at
		 FROM tasks WHERE id = ?`, id))
}

// ListTasks returns tasks, optionally filtered by status and/or priority.
// Empty filters match everything.
func (s *LocalStore) ListTasks(status, priority string) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, title, description, priority, status, COALESCE(due_date, ''), created_at, updated_at FROM tasks`
	var conds []string
	var args []interface{}
	if status != "" {
		conds = append(conds, "status = ?")
		args = append(args, status)
	}
	if priority != "" {
		conds = append(conds, "priority = ?")
		args = append(args, priority)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY
		CASE priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END,
		due_date IS NULL, due_date`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// UpdateTaskStatus transitions a task to a new status.
func (s *LocalStore) UpdateTaskStatus(id int64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !ValidTaskStatus(status) {
		return fmt.Errorf("invalid status %q (want one of %s)", status, strings.Join(taskStatuses, ", "))
	}

	res, err := s.db.Exec(
		"UPDATE tasks SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	logging.StoreDebug("Task %d -> %s", id, status)
	return nil
}

// DeleteTask removes a task by id.
func (s *LocalStore) DeleteTask(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

// OverdueTasks returns open tasks whose due date is in the past.
func (s *LocalStore) OverdueTasks(now time.Time) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, title, description, priority, status, COALESCE(due_date, ''), created_at, updated_at
		 FROM tasks
		 WHERE due_date IS NOT NULL AND due_date < ? AND status NOT IN (?, ?)
		 ORDER BY due_date`,
		now.Format("2006-01-02"), TaskCompleted, TaskCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query overdue tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// TasksDueSoon returns open tasks due within the next n days.
func (s *LocalStore) TasksDueSoon(now time.Time, days int) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if days <= 0 {
		days = 7
	}
	until := now.AddDate(0, 0, days)

	rows, err := s.db.Query(
		`SELECT id, title, description, priority, status, COALESCE(due_date, ''), created_at, updated_at
		 FROM tasks
		 WHERE due_date IS NOT NULL AND due_date >= ? AND due_date <= ? AND status NOT IN (?, ?)
		 ORDER BY due_date`,
		now.Format("2006-01-02"), until.Format("2006-01-02"), TaskCompleted, TaskCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query due-soon tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// TaskDashboard summarizes the tasks table.
type TaskDashboard struct {
	Total      int
	ByStatus   map[string]int
	ByPriority map[string]int
	Overdue    int
	DueSoon    int
}

// TaskDashboardData aggregates counts for the task dashboard view.
func (s *LocalStore) TaskDashboardData(now time.Time) (TaskDashboard, error) {
	timer := logging.StartTimer(logging.CategoryStore, "TaskDashboardData")
	defer timer.Stop()

	d := TaskDashboard{ByStatus: make(map[string]int), ByPriority: make(map[string]int)}

	s.mu.RLock()
	rows, err := s.db.Query("SELECT status, priority, COUNT(*) FROM tasks GROUP BY status, priority")
	if err != nil {
		s.mu.RUnlock()
		return d, fmt.Errorf("failed to aggregate tasks: %w", err)
	}
	for rows.Next() {
		var status, priority string
		var n int
		if err := rows.Scan(&status, &priority, &n); err != nil {
			continue
		}
		d.Total += n
		d.ByStatus[status] += n
		d.ByPriority[priority] += n
	}
	rows.Close()
	s.mu.RUnlock()

	overdue, err := s.OverdueTasks(now)
	if err != nil {
		return d, err
	}
	d.Overdue = len(overdue)

	soon, err := s.TasksDueSoon(now, 7)
	if err != nil {
		return d, err
	}
	d.DueSoon = len(soon)

	return d, nil
}

func scanTask(row *sql.Row) (Task, error) {
	var t Task
	var created, updated string
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.DueDate, &created, &updated)
	if err == sql.ErrNoRows {
		return t, ErrNotFound
	}
	if err != nil {
		return t, fmt.Errorf("failed to scan task: %w", err)
	}
	t.CreatedAt = parseTimestamp(created)
	t.UpdatedAt = parseTimestamp(updated)
	return t, nil
}

func collectTasks(rows *sql.Rows) ([]Task, error) {
	var tasks []Task
	for rows.Next() {
		var t Task
		var created, updated string
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.DueDate, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		t.CreatedAt = parseTimestamp(created)
		t.UpdatedAt = parseTimestamp(updated)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
