package cmd

import (
	"fmt"
	"log"

	"bytewatch/pkg/bytesize"

	"github.com/spf13/cobra"
)

type ParseFlags struct {
	Rate bool
	// Future flags can be easily added here:
	// Quiet bool
}

var parseFlags ParseFlags

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse STRING...",
	Short: "Parse size strings into raw byte counts",
	Long: `Parse one or more size strings and print their raw byte counts.

Strings may carry a binary magnitude suffix (K/M/G/T/P/E, with optional "B" or
"iB") and use the configured decimal and group separators:

  bytewatch parse 1.5MB "1,024" -1KiB
  bytewatch parse --rate 2MB/s

Use --rate to parse bytes-per-second strings with a trailing /s or /sec.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sep := activeSeparators()
		for _, arg := range args {
			if parseFlags.Rate {
				rate, err := bytesize.ParseRateWith(arg, sep)
				if err != nil {
					log.Fatalf("Cannot parse %q: %v", arg, err)
				}
				fmt.Printf("%s\t%d\n", arg, rate.BytesPerSecond())
				continue
			}

			size, err := bytesize.ParseWith(arg, sep)
			if err != nil {
				log.Fatalf("Cannot parse %q: %v", arg, err)
			}
			fmt.Printf("%s\t%d\n", arg, size.Count())
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseFlags.Rate, "rate", false, "parse bytes-per-second strings instead of sizes")
}
