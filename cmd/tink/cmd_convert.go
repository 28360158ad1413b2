package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tinkerbox/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Unit conversions",
}

// convertRunner builds the RunE shared by the category subcommands.
func convertRunner(fn func(value float64, from, to string) (float64, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[0])
		}
		result, err := fn(value, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("%s %s = %s %s\n", args[0], args[1],
			strconv.FormatFloat(result, 'f', -1, 64), args[2])
		return nil
	}
}

var convertLengthCmd = &cobra.Command{
	Use:   "length [value] [from] [to]",
	Short: "Lengths: mm cm m km inch foot yard mile",
	Args:  cobra.ExactArgs(3),
	RunE:  convertRunner(convert.Length),
}

var convertWeightCmd = &cobra.Command{
	Use:   "weight [value] [from] [to]",
	Short: "Weights: mg g kg oz lb ton",
	Args:  cobra.ExactArgs(3),
	RunE:  convertRunner(convert.Weight),
}

var convertTempCmd = &cobra.Command{
	Use:   "temp [value] [from] [to]",
	Short: "Temperatures: celsius fahrenheit kelvin",
	Args:  cobra.ExactArgs(3),
	RunE:  convertRunner(convert.Temperature),
}

var convertAreaCmd = &cobra.Command{
	Use:   "area [value] [from] [to]",
	Short: "Areas: mm2 cm2 m2 km2 in2 ft2 acre",
	Args:  cobra.ExactArgs(3),
	RunE:  convertRunner(convert.Area),
}

func init() {
	convertCmd.AddCommand(convertLengthCmd, convertWeightCmd, convertTempCmd, convertAreaCmd)
}
