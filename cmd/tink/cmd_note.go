package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tinkerbox/cmd/tink/ui"
)

var (
	noteCategory  string
	noteEditTitle string
	noteEditBody  string
	noteEditCat   string
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return noteListCmd.RunE(cmd, nil)
	},
}

var noteAddCmd = &cobra.Command{
	Use:   "add [title] [content]",
	Short: "Create a note",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.CreateNote(args[0], joinArgs(args[1:]), noteCategory)
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Created note #%d", id)))
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List note categories and counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		cats, err := st.NoteCategories()
		if err != nil {
			return err
		}
		if len(cats) == 0 {
			fmt.Println(styles.Muted.Render("No notes yet."))
			return nil
		}
		table := ui.NewSimpleTable("Notes", []string{"Category", "Count"})
		for cat, n := range cats {
			table.AddRow(cat, strconv.Itoa(n))
		}
		fmt.Print(table.View(styles))
		return nil
	},
}

var noteShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad note id %q", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.GetNote(id)
		if err != nil {
			return err
		}
		md := fmt.Sprintf("# %s\n\n_%s · %s_\n\n%s\n", n.Title, n.Category,
			n.UpdatedAt.Format("2006-01-02 15:04"), n.Content)
		fmt.Print(ui.RenderMarkdown(md, styles))
		return nil
	},
}

var noteSearchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search notes by title and content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		notes, err := st.SearchNotes(args[0])
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Println(styles.Muted.Render("No matches."))
			return nil
		}
		table := ui.NewSimpleTable(fmt.Sprintf("Notes matching %q", args[0]),
			[]string{"ID", "Title", "Category", "Updated"})
		for _, n := range notes {
			table.AddRow(strconv.FormatInt(n.ID, 10), n.Title, n.Category,
				n.UpdatedAt.Format("2006-01-02"))
		}
		fmt.Print(table.View(styles))
		return nil
	},
}

var noteCatCmd = &cobra.Command{
	Use:   "cat [category]",
	Short: "List notes in a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		notes, err := st.NotesByCategory(args[0])
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Println(styles.Muted.Render("No notes in that category."))
			return nil
		}
		table := ui.NewSimpleTable(args[0], []string{"ID", "Title", "Updated"})
		for _, n := range notes {
			table.AddRow(strconv.FormatInt(n.ID, 10), n.Title, n.UpdatedAt.Format("2006-01-02"))
		}
		fmt.Print(table.View(styles))
		return nil
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Update a note's title, content, or category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad note id %q", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.UpdateNote(id, noteEditTitle, noteEditBody, noteEditCat); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Updated note #%d", id)))
		return nil
	},
}

var noteRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad note id %q", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.DeleteNote(id); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Deleted note #%d", id)))
		return nil
	},
}

func init() {
	noteAddCmd.Flags().StringVar(&noteCategory, "category", "", "Note category (default General)")
	noteEditCmd.Flags().StringVar(&noteEditTitle, "title", "", "New title")
	noteEditCmd.Flags().StringVar(&noteEditBody, "content", "", "New content")
	noteEditCmd.Flags().StringVar(&noteEditCat, "category", "", "New category")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteSearchCmd)
	noteCmd.AddCommand(noteCatCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteRmCmd)
}
