package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bytewatch/internal/config"
	"bytewatch/pkg/bytesize"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg     *config.Config
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bytewatch",
	Short: "Bytewatch - byte size arithmetic and transfer rate watching",
	Long: `Bytewatch works with human-readable byte quantities and transfer rates.

Usage:
  Parse size strings:   bytewatch parse 1.5MB "1,024"
  Format raw counts:    bytewatch format 1536 --precision 2
  Show file sizes:      bytewatch stat file1 file2
  Watch a transfer:     bytewatch watch --src - --dst /tmp/out.bin

All units are binary (1024-based): 1 KB = 1024 bytes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize viper configuration
		initConfig()

		// Initialize configuration
		cfg = config.NewDefaultConfig()
		applyOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bytewatch.yaml)")

	// Set up viper environment variable support
	viper.SetEnvPrefix("BYTEWATCH")
	viper.AutomaticEnv()
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			log.Printf("Warning: Could not find home directory: %v", err)
			return
		}

		// Search config in home directory with name ".bytewatch" (without extension)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bytewatch")
	}

	// Read in environment variables that match
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// applyOverrides copies any values set via config file or environment over
// the defaults
func applyOverrides(cfg *config.Config) {
	if viper.IsSet("watch.interval") {
		cfg.Watch.Interval = viper.GetDuration("watch.interval")
	}
	if viper.IsSet("watch.history_size") {
		cfg.Watch.HistorySize = viper.GetInt("watch.history_size")
	}
	if viper.IsSet("watch.report_every") {
		cfg.Watch.ReportEvery = viper.GetDuration("watch.report_every")
	}
	if viper.IsSet("display.precision") {
		cfg.Display.Precision = viper.GetInt("display.precision")
	}
	if viper.IsSet("display.decimal_sep") {
		cfg.Display.DecimalSep = viper.GetString("display.decimal_sep")
	}
	if viper.IsSet("display.group_sep") {
		cfg.Display.GroupSep = viper.GetString("display.group_sep")
	}
	if viper.IsSet("display.show_summary") {
		cfg.Display.ShowSummary = viper.GetBool("display.show_summary")
	}
	if viper.IsSet("display.recent_rates") {
		cfg.Display.RecentRates = viper.GetBool("display.recent_rates")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// createContext creates a context that cancels on interrupt signals
func createContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	return ctx
}

// activeSeparators builds the parser separator configuration from the active config
func activeSeparators() bytesize.Separators {
	dec, group := cfg.Separators()
	return bytesize.Separators{Decimal: dec, Group: group}
}
