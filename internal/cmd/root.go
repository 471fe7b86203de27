// Package cmd wires the northflow command line: the web server, the
// estimator and its terminal UI.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/estimator"
)

var (
	cfgFile string
	output  string
	debug   bool
	noColor bool
	locale  string
	symbol  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "northflow",
	Short: "Northflow landing page and revenue-loss estimator",
	Long: `Northflow serves the missed-call automation landing page and exposes
the revenue-loss estimator from the command line.

Run "northflow serve" to start the website, "northflow estimate" for a
one-shot calculation, or "northflow tui" for the interactive calculator.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// NewRootCommand creates and returns the root command
func NewRootCommand() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.northflow/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&output, "output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "en-CA", "BCP 47 locale for currency grouping")
	rootCmd.PersistentFlags().StringVar(&symbol, "symbol", "$", "currency symbol")

	// Bind flags to viper for config file support
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))
	viper.BindPFlag("symbol", rootCmd.PersistentFlags().Lookup("symbol"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home + "/.northflow")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("NORTHFLOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// newFormatter builds the currency formatter from --locale and --symbol.
func newFormatter() (*estimator.Formatter, error) {
	return estimator.NewFormatter(viper.GetString("locale"), viper.GetString("symbol"))
}

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	switch f := strings.ToLower(viper.GetString("output")); f {
	case "", "table":
		return "table", nil
	case "json":
		return "json", nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table or json)", f)
	}
}
