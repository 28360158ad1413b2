package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/logging"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the tinkerbox home and database state",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.Logo(styles))
		table := ui.NewSimpleTable("tinkerbox", []string{"Item", "Value"})
		table.AddRow("Home", homeDir)
		table.AddRow("Database", cfg.DatabasePath(homeDir))
		table.AddRow("Decks", cfg.DecksDir(homeDir))
		table.AddRow("Player", player)

		dbPath := cfg.DatabasePath(homeDir)
		info, err := os.Stat(dbPath)
		if os.IsNotExist(err) {
			table.AddRow("DB size", "not created yet")
			fmt.Print(table.View(styles))
			return nil
		}
		if err != nil {
			return err
		}
		table.AddRow("DB size", strconv.FormatInt(info.Size(), 10)+" bytes")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		version, err := st.SchemaVersion()
		if err != nil {
			return err
		}
		table.AddRow("Schema", "v"+strconv.Itoa(version))
		fmt.Print(table.View(styles))
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the tinkerbox home with defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(cfg.DecksDir(homeDir), 0o755); err != nil {
			return fmt.Errorf("failed to create home: %w", err)
		}
		if err := cfg.Save(homeDir); err != nil {
			return err
		}

		// Seed a sample deck so 'tink play quiz --deck sample' works out
		// of the box.
		sample := filepath.Join(cfg.DecksDir(homeDir), "sample.yaml")
		if _, err := os.Stat(sample); os.IsNotExist(err) {
			if err := os.WriteFile(sample, []byte(sampleDeckYAML), 0o644); err != nil {
				return err
			}
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		logging.Boot("Initialized home at %s", homeDir)
		fmt.Println(styles.Success.Render("✓ Initialized " + homeDir))
		fmt.Println(styles.Muted.Render("config.yaml written, database created, sample quiz deck installed"))
		return nil
	},
}

const sampleDeckYAML = `name: sample
questions:
  - question: Which planet is closest to the sun?
    options: [Venus, Mercury, Mars, Earth]
    correct: 1
    explanation: Mercury orbits at about 58 million km.
  - question: How many sides does a hexagon have?
    options: ["5", "6", "7", "8"]
    correct: 1
  - question: What gas do plants absorb from the air?
    options: [Oxygen, Nitrogen, Carbon dioxide, Helium]
    correct: 2
`

var backupCmd = &cobra.Command{
	Use:   "backup [dest]",
	Short: "Copy the database to a backup file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		dest := filepath.Join(homeDir, fmt.Sprintf("tinkerbox-%s.db", time.Now().Format("20060102-150405")))
		if len(args) == 1 {
			dest = args[0]
		}
		if err := st.Backup(dest); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render("✓ Backed up to " + dest))
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [backup-file]",
	Short: "Replace the database with a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Restore(args[0]); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render("✓ Restored from " + args[0]))
		return nil
	},
}
