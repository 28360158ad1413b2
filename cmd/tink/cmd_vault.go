package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/passgen"
	"tinkerbox/internal/store"
	"tinkerbox/internal/vault"
)

var (
	vaultAddUsername string
	vaultAddWebsite  string
	vaultAddNotes    string
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Encrypted password vault",
	Long: `Store credentials encrypted with a master password.
Entries are sealed with AES-GCM under a scrypt-derived key; the master
password is never written to disk.`,
}

// promptMaster reads the master password without echo. Falls back to a
// plain line read when stdin is not a terminal (tests, pipes).
func promptMaster(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}
	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return line, nil
}

func openVault(st *store.LocalStore) (*vault.Vault, error) {
	master, err := promptMaster("Master password")
	if err != nil {
		return nil, err
	}
	return vault.Open(st, master)
}

var vaultInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the vault with a master password",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		master, err := promptMaster("Choose master password")
		if err != nil {
			return err
		}
		confirm, err := promptMaster("Confirm master password")
		if err != nil {
			return err
		}
		if master != confirm {
			return fmt.Errorf("passwords do not match")
		}
		if err := vault.Init(st, master, cfg.Vault.ScryptN); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render("✓ Vault initialized"))
		fmt.Println(styles.Muted.Render("There is no recovery. Do not lose the master password."))
		return nil
	},
}

var vaultAddCmd = &cobra.Command{
	Use:   "add [service] [password]",
	Short: "Store a credential",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		v, err := openVault(st)
		if err != nil {
			return err
		}
		id, err := v.Add(args[0], vaultAddUsername, args[1], vaultAddWebsite, vaultAddNotes)
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Stored %s (%s)", args[0], id)))
		return nil
	},
}

var vaultGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Reveal one credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		v, err := openVault(st)
		if err != nil {
			return err
		}
		e, err := v.Get(args[0])
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable(e.Service, []string{"Field", "Value"})
		table.AddRow("ID", e.ID)
		table.AddRow("Username", e.Username)
		table.AddRow("Password", e.Password)
		table.AddRow("Website", e.Website)
		table.AddRow("Notes", e.Notes)
		fmt.Print(table.View(styles))
		return nil
	},
}

var vaultListCmd = &cobra.Command{
	Use:     "list [query]",
	Aliases: []string{"search"},
	Short:   "List credentials, optionally filtered",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		v, err := openVault(st)
		if err != nil {
			return err
		}
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		entries, err := v.Search(query)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println(styles.Muted.Render("No entries."))
			return nil
		}
		table := ui.NewSimpleTable(fmt.Sprintf("Vault (%d entries)", len(entries)),
			[]string{"ID", "Service", "Username", "Website"})
		for _, e := range entries {
			table.AddRow(e.ID, e.Service, e.Username, e.Website)
		}
		fmt.Print(table.View(styles))
		fmt.Println(styles.Muted.Render("Passwords stay hidden in listings. Use 'tink vault get <id>'."))
		return nil
	},
}

var (
	vaultGenLength  int
	vaultGenService string
)

var vaultGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a password, optionally storing it",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := passgen.DefaultOptions()
		opts.Length = vaultGenLength
		pw, err := passgen.Generate(opts)
		if err != nil {
			return err
		}
		if vaultGenService == "" {
			fmt.Println(pw)
			return nil
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		v, err := openVault(st)
		if err != nil {
			return err
		}
		id, err := v.Add(vaultGenService, vaultAddUsername, pw, vaultAddWebsite, vaultAddNotes)
		if err != nil {
			return err
		}
		fmt.Println(pw)
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Stored %s (%s)", vaultGenService, id)))
		return nil
	},
}

var vaultRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		v, err := openVault(st)
		if err != nil {
			return err
		}
		if err := v.Delete(args[0]); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render("✓ Deleted " + args[0]))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{vaultAddCmd, vaultGenCmd} {
		c.Flags().StringVarP(&vaultAddUsername, "username", "u", "", "Account username")
		c.Flags().StringVarP(&vaultAddWebsite, "website", "w", "", "Service URL")
		c.Flags().StringVarP(&vaultAddNotes, "notes", "n", "", "Free-form notes")
	}
	vaultGenCmd.Flags().IntVarP(&vaultGenLength, "length", "l", 16, "Password length")
	vaultGenCmd.Flags().StringVarP(&vaultGenService, "service", "s", "", "Store under this service name")

	vaultCmd.AddCommand(vaultInitCmd, vaultAddCmd, vaultGenCmd, vaultGetCmd, vaultListCmd, vaultRmCmd)
}
