package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/logging"
	"tinkerbox/internal/scrape"
)

var (
	scrapeFile       string
	scrapeShowLinks  bool
	scrapeShowQuotes bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url]",
	Short: "Extract headings, links, and quotes from a page",
	Long: `Fetch a URL (or read a local HTML file with --file) and print its
structure. With no argument a bundled sample page is parsed, so the
command works offline.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			page *scrape.Page
			err  error
		)
		switch {
		case scrapeFile != "":
			page, err = scrape.File(scrapeFile)
		case len(args) == 1:
			page, err = scrape.Fetch(cmd.Context(), args[0])
			if err != nil {
				fmt.Println(styles.Warning.Render("Fetch failed (" + err.Error() + "), using the sample page"))
				page, err = scrape.Sample()
			}
		default:
			page, err = scrape.Sample()
		}
		if err != nil {
			return err
		}
		logging.Scrape("Parsed %s: %d headings, %d links, %d quotes",
			page.Source, len(page.Headings), len(page.Links), len(page.Quotes))

		fmt.Println(styles.Title.Render(page.Title))
		fmt.Println(styles.Muted.Render(page.Source))
		fmt.Println()

		if len(page.Headings) > 0 {
			table := ui.NewSimpleTable("Headings", []string{"Level", "Text"})
			for _, h := range page.Headings {
				table.AddRow("h"+strconv.Itoa(h.Level), h.Text)
			}
			fmt.Print(table.View(styles))
		}
		if scrapeShowLinks && len(page.Links) > 0 {
			table := ui.NewSimpleTable(fmt.Sprintf("Links (%d)", len(page.Links)),
				[]string{"Text", "Href"})
			for _, l := range page.Links {
				table.AddRow(l.Text, l.Href)
			}
			fmt.Print(table.View(styles))
		}
		if scrapeShowQuotes && len(page.Quotes) > 0 {
			for _, q := range page.Quotes {
				fmt.Println(styles.CodeBlock.Render(q.Text))
				line := "— " + q.Author
				if len(q.Tags) > 0 {
					line += "  [" + strings.Join(q.Tags, ", ") + "]"
				}
				fmt.Println(styles.Muted.Render(line))
				fmt.Println()
			}
		}
		return nil
	},
}

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeFile, "file", "f", "", "Parse a local HTML file instead of fetching")
	scrapeCmd.Flags().BoolVar(&scrapeShowLinks, "links", false, "Also list links")
	scrapeCmd.Flags().BoolVar(&scrapeShowQuotes, "quotes", true, "Also print quotes")
}
