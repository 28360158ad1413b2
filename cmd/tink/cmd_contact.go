package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/store"
)

var (
	contactPhone   string
	contactEmail   string
	contactAddress string
	contactNotes   string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage the address book",
	RunE: func(cmd *cobra.Command, args []string) error {
		return contactListCmd.RunE(cmd, nil)
	},
}

var contactAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a contact",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.AddContact(store.Contact{
			Name:    joinArgs(args),
			Phone:   contactPhone,
			Email:   contactEmail,
			Address: contactAddress,
			Notes:   contactNotes,
		})
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Added contact #%d", id)))
		return nil
	},
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printContacts("")
	},
}

var contactSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search contacts by name, phone, or email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printContacts(args[0])
	},
}

func printContacts(query string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	contacts, err := st.SearchContacts(query)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		fmt.Println(styles.Muted.Render("No contacts found."))
		return nil
	}
	table := ui.NewSimpleTable("Contacts", []string{"ID", "Name", "Phone", "Email"})
	for _, c := range contacts {
		table.AddRow(strconv.FormatInt(c.ID, 10), c.Name, c.Phone, c.Email)
	}
	fmt.Print(table.View(styles))
	return nil
}

var contactShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one contact in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid contact id: %s", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		c, err := st.GetContact(id)
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable(c.Name, []string{"Field", "Value"})
		table.AddRow("Phone", c.Phone)
		table.AddRow("Email", c.Email)
		table.AddRow("Address", c.Address)
		table.AddRow("Notes", c.Notes)
		table.AddRow("Added", c.CreatedAt.Format("2006-01-02"))
		fmt.Print(table.View(styles))
		return nil
	},
}

var contactEditCmd = &cobra.Command{
	Use:   "edit [id] [name]",
	Short: "Replace a contact's details",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad contact id %q", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.UpdateContact(id, store.Contact{
			Name:    joinArgs(args[1:]),
			Phone:   contactPhone,
			Email:   contactEmail,
			Address: contactAddress,
			Notes:   contactNotes,
		}); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Updated contact #%d", id)))
		return nil
	},
}

var contactRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad contact id %q", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.DeleteContact(id); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Deleted contact #%d", id)))
		return nil
	},
}

var contactExportCmd = &cobra.Command{
	Use:   "export [file.json]",
	Short: "Export all contacts to JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ExportContacts(args[0])
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Exported %d contacts to %s", n, args[0])))
		return nil
	},
}

var contactImportCmd = &cobra.Command{
	Use:   "import [file.json]",
	Short: "Import contacts from JSON, skipping duplicates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		imported, skipped, err := st.ImportContacts(args[0])
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(
			fmt.Sprintf("✓ Imported %d contacts (%d duplicates skipped)", imported, skipped)))
		return nil
	},
}

var contactStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Address book statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.ContactStatistics()
		if err != nil {
			return err
		}
		fmt.Println(styles.Title.Render("Contacts"))
		fmt.Printf("total %d · with email %d · with address %d\n\n",
			stats.Total, stats.WithEmail, stats.WithAddress)
		if len(stats.EmailDomains) > 0 {
			domains := make([]string, 0, len(stats.EmailDomains))
			for d := range stats.EmailDomains {
				domains = append(domains, d)
			}
			sort.Strings(domains)
			table := ui.NewSimpleTable("Email domains", []string{"Domain", "Count"})
			for _, d := range domains {
				table.AddRow(d, strconv.Itoa(stats.EmailDomains[d]))
			}
			fmt.Print(table.View(styles))
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{contactAddCmd, contactEditCmd} {
		c.Flags().StringVar(&contactPhone, "phone", "", "Phone number")
		c.Flags().StringVar(&contactEmail, "email", "", "Email address")
		c.Flags().StringVar(&contactAddress, "address", "", "Postal address")
		c.Flags().StringVar(&contactNotes, "notes", "", "Free-form notes")
	}

	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactShowCmd)
	contactCmd.AddCommand(contactSearchCmd)
	contactCmd.AddCommand(contactEditCmd)
	contactCmd.AddCommand(contactRmCmd)
	contactCmd.AddCommand(contactExportCmd)
	contactCmd.AddCommand(contactImportCmd)
	contactCmd.AddCommand(contactStatsCmd)
}
