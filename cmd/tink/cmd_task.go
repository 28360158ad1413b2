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
	taskPriority   string
	taskDue        string
	taskDesc       string
	taskListStatus string
	taskListPrio   string
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the todo list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return taskListCmd.RunE(cmd, nil)
	},
}

var taskAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.AddTask(store.Task{
			Title:       joinArgs(args),
			Description: taskDesc,
			Priority:    taskPriority,
			DueDate:     taskDue,
		})
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Added task #%d", id)))
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally filtered by status or priority",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		tasks, err := st.ListTasks(taskListStatus, taskListPrio)
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			fmt.Println(styles.Muted.Render("No tasks. Add one with: tink task add <title>"))
			return nil
		}
		now := time.Now()
		table := ui.NewSimpleTable("Tasks", []string{"ID", "Title", "Priority", "Status", "Due"})
		for _, t := range tasks {
			due := t.DueDate
			if t.Overdue(now) {
				due = due + " (overdue)"
			}
			table.AddRow(strconv.FormatInt(t.ID, 10), t.Title, t.Priority, t.Status, due)
		}
		fmt.Print(table.View(styles))
		return nil
	},
}

// taskSetStatus builds the done/start/cancel commands, which differ only in
// the status they write.
func taskSetStatus(use, short, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad task id %q", args[0])
			}
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.UpdateTaskStatus(id, status); err != nil {
				return err
			}
			fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Task #%d is now %s", id, status)))
			return nil
		},
	}
}

var taskRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad task id %q", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.DeleteTask(id); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Deleted task #%d", id)))
		return nil
	},
}

var taskOverdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "Show overdue and soon-due tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		now := time.Now()
		overdue, err := st.OverdueTasks(now)
		if err != nil {
			return err
		}
		soon, err := st.TasksDueSoon(now, 3)
		if err != nil {
			return err
		}
		if len(overdue) == 0 && len(soon) == 0 {
			fmt.Println(styles.Success.Render("Nothing overdue."))
			return nil
		}
		if len(overdue) > 0 {
			table := ui.NewSimpleTable("Overdue", []string{"ID", "Title", "Priority", "Due"})
			for _, t := range overdue {
				table.AddRow(strconv.FormatInt(t.ID, 10), t.Title, t.Priority, t.DueDate)
			}
			fmt.Print(table.View(styles))
		}
		if len(soon) > 0 {
			table := ui.NewSimpleTable("Due in the next 3 days", []string{"ID", "Title", "Priority", "Due"})
			for _, t := range soon {
				table.AddRow(strconv.FormatInt(t.ID, 10), t.Title, t.Priority, t.DueDate)
			}
			fmt.Print(table.View(styles))
		}
		return nil
	},
}

var taskDashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"report"},
	Short:   "Summarize the task list",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		d, err := st.TaskDashboardData(time.Now())
		if err != nil {
			return err
		}
		fmt.Println(styles.Title.Render("Task dashboard"))
		fmt.Printf("%s %d total · %d overdue · %d due soon\n\n",
			styles.Bold.Render("Tasks:"), d.Total, d.Overdue, d.DueSoon)
		table := ui.NewSimpleTable("By status", []string{"Status", "Count"})
		for _, s := range []string{store.TaskPending, store.TaskInProgress, store.TaskCompleted, store.TaskCancelled} {
			if n := d.ByStatus[s]; n > 0 {
				table.AddRow(s, strconv.Itoa(n))
			}
		}
		fmt.Print(table.View(styles))
		return nil
	},
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}

func init() {
	taskAddCmd.Flags().StringVar(&taskPriority, "priority", "medium", "low, medium, high, or urgent")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "Due date (YYYY-MM-DD)")
	taskAddCmd.Flags().StringVar(&taskDesc, "desc", "", "Longer description")
	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "Filter by status")
	taskListCmd.Flags().StringVar(&taskListPrio, "priority", "", "Filter by priority")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskSetStatus("done", "Mark a task completed", store.TaskCompleted))
	taskCmd.AddCommand(taskSetStatus("start", "Mark a task in progress", store.TaskInProgress))
	taskCmd.AddCommand(taskSetStatus("cancel", "Cancel a task", store.TaskCancelled))
	taskCmd.AddCommand(taskRmCmd)
	taskCmd.AddCommand(taskOverdueCmd)
	taskCmd.AddCommand(taskDashboardCmd)
}
