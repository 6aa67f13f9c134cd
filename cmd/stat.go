package cmd

import (
	"fmt"
	"log"

	"bytewatch/pkg/bytesize"

	"github.com/spf13/cobra"
)

// statCmd represents the stat command
var statCmd = &cobra.Command{
	Use:   "stat FILE...",
	Short: "Show file sizes in human-readable form",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var total bytesize.ByteSize
		for _, path := range args {
			size, err := bytesize.FromFile(path)
			if err != nil {
				log.Fatalf("Cannot stat %s: %v", path, err)
			}
			size = size.WithPrecision(cfg.Display.Precision)
			fmt.Printf("%-12s %s\n", size, path)
			total = total.Add(size)
		}
		if len(args) > 1 {
			fmt.Printf("%-12s total\n", total.WithPrecision(cfg.Display.Precision))
		}
	},
}

func init() {
	rootCmd.AddCommand(statCmd)
}
