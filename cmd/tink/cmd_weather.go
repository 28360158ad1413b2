package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/store"
	"tinkerbox/internal/weather"
)

var weatherForecastDays int

func weatherService(st *store.LocalStore) *weather.Service {
	ttl, err := time.ParseDuration(cfg.Weather.CacheTTL)
	if err != nil || ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return weather.New(ttl, st)
}

// formatTemp renders a report temperature in the configured units.
func formatTemp(r weather.Report) string {
	if cfg.Weather.Units == "imperial" {
		return strconv.Itoa(r.TempF()) + "°F"
	}
	return strconv.Itoa(r.TempC) + "°C"
}

func weatherRow(table *ui.SimpleTable, label string, r weather.Report) {
	table.AddRow(label, weather.Emoji(r.Condition)+" "+r.Condition, formatTemp(r),
		strconv.Itoa(r.Humidity)+"%", strconv.Itoa(r.WindKmh)+" km/h")
}

var weatherCmd = &cobra.Command{
	Use:   "weather [city]",
	Short: "Simulated weather reports",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		svc := weatherService(st)

		if len(args) == 0 {
			return showFavorites(svc)
		}
		r, err := svc.Current(args[0])
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable(fmt.Sprintf("%s — %s", r.City, r.Date.Format("Mon Jan 2")),
			[]string{"", "Condition", "Temp", "Humidity", "Wind"})
		weatherRow(table, "Today", r)
		fmt.Print(table.View(styles))
		return nil
	},
}

func showFavorites(svc *weather.Service) error {
	favs, err := svc.Favorites()
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		fmt.Println(styles.Muted.Render("No favorite cities. Add one with 'tink weather fav add <city>'."))
		return nil
	}
	cities := make([]string, 0, len(favs))
	for city := range favs {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	table := ui.NewSimpleTable("Favorites", []string{"City", "Condition", "Temp", "Humidity", "Wind"})
	for _, city := range cities {
		weatherRow(table, city, favs[city])
	}
	fmt.Print(table.View(styles))
	return nil
}

var weatherForecastCmd = &cobra.Command{
	Use:   "forecast [city]",
	Short: "Multi-day forecast",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		reports, err := weatherService(st).Forecast(args[0], weatherForecastDays)
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable(fmt.Sprintf("%s — %d day forecast", args[0], len(reports)),
			[]string{"Day", "Condition", "Temp", "Humidity", "Wind"})
		for _, r := range reports {
			weatherRow(table, r.Date.Format("Mon Jan 2"), r)
		}
		fmt.Print(table.View(styles))
		return nil
	},
}

var weatherFavCmd = &cobra.Command{
	Use:   "fav",
	Short: "Manage favorite cities",
}

var weatherFavAddCmd = &cobra.Command{
	Use:   "add [city]",
	Short: "Add a favorite city",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := weatherService(st).AddFavorite(args[0]); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render("✓ Added " + args[0]))
		return nil
	},
}

var weatherFavRmCmd = &cobra.Command{
	Use:   "rm [city]",
	Short: "Remove a favorite city",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := weatherService(st).RemoveFavorite(args[0]); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render("✓ Removed " + args[0]))
		return nil
	},
}

var weatherFavListCmd = &cobra.Command{
	Use:   "list",
	Short: "Current conditions for every favorite",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		return showFavorites(weatherService(st))
	},
}

func init() {
	weatherForecastCmd.Flags().IntVarP(&weatherForecastDays, "days", "d", 3, "Days to forecast (1-14)")

	weatherFavCmd.AddCommand(weatherFavAddCmd, weatherFavRmCmd, weatherFavListCmd)
	weatherCmd.AddCommand(weatherForecastCmd, weatherFavCmd)
}
