package cmd

import (
	"fmt"
	"log"
	"strconv"

	"bytewatch/pkg/bytesize"

	"github.com/spf13/cobra"
)

type FormatFlags struct {
	Precision int
	Rate      bool
}

var formatFlags FormatFlags

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format COUNT...",
	Short: "Format raw byte counts as human-readable sizes",
	Long: `Format one or more raw byte counts with a binary magnitude suffix:

  bytewatch format 1536            -> 1.5 KB
  bytewatch format -p 2 1073741824 -> 1.00 GB
  bytewatch format --rate 2097152  -> 2.0 MB/s`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormatFlags(&formatFlags)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("precision") {
			formatFlags.Precision = cfg.Display.Precision
		}
		for _, arg := range args {
			count, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				log.Fatalf("Not a byte count: %q", arg)
			}

			if formatFlags.Rate {
				rate := bytesize.NewRateWithPrecision(count, formatFlags.Precision)
				fmt.Printf("%s\t%s\n", arg, rate)
				continue
			}
			size := bytesize.NewWithPrecision(count, formatFlags.Precision)
			fmt.Printf("%s\t%s\n", arg, size)
		}
	},
}

// validateFormatFlags validates the format command flags
func validateFormatFlags(flags *FormatFlags) error {
	if flags.Precision < 0 {
		return fmt.Errorf("precision must not be negative")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().IntVarP(&formatFlags.Precision, "precision", "p", bytesize.DefaultPrecision, "decimal places in the output")
	formatCmd.Flags().BoolVar(&formatFlags.Rate, "rate", false, "format as bytes per second")
}
