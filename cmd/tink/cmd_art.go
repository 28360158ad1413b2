package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tinkerbox/internal/artgen"
)

var artShapeSize int

var artCmd = &cobra.Command{
	Use:   "art",
	Short: "ASCII art banners and shapes",
}

var artBannerCmd = &cobra.Command{
	Use:   "banner [text...]",
	Short: "Render text in a block font",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(styles.Info.Render(artgen.Banner(joinArgs(args))))
		return nil
	},
}

var artShapeCmd = &cobra.Command{
	Use:   "shape [square|triangle|diamond|circle]",
	Short: "Draw a shape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := artgen.Shape(args[0], artShapeSize)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	artShapeCmd.Flags().IntVarP(&artShapeSize, "size", "s", 5, "Shape size")

	artCmd.AddCommand(artBannerCmd, artShapeCmd)
}
