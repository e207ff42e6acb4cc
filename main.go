package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Detection policy
	confidenceMin    float64
	fallbackEncoding string

	// Output modes
	jsonOutput bool
	statOutput bool

	// Input handling
	allowBinary bool
	trapName    string
)

// version is the application version, set via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "detat [PATH]...",
	Short: "detat is cat with charset detection: inputs are transcoded to UTF-8.",
	Long: `detat concatenates files to standard output like cat, but detects each
input's character encoding first and transcodes it to UTF-8. With no PATH
(or with "-") it reads standard input.`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := buildConfig(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "detat: %v\n", err)
			os.Exit(2)
		}

		if code := runBatch(cfg, newChardetDetector(), os.Stdin, os.Stdout, os.Stderr); code != 0 {
			os.Exit(code)
		}
	},
}

// buildConfig assembles the immutable run configuration from the resolved
// flag values. An invalid trap name is the one flag value cobra cannot
// validate itself, so it surfaces here as a fatal CLI error.
func buildConfig(paths []string) (Config, error) {
	trap, err := ParseTrap(trapName)
	if err != nil {
		return Config{}, err
	}
	return Config{
		AllowBinary:      allowBinary,
		JSON:             jsonOutput,
		Stat:             statOutput,
		ConfidenceMin:    confidenceMin,
		FallbackEncoding: fallbackEncoding,
		Trap:             trap,
		Paths:            paths,
	}, nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().Float64VarP(&confidenceMin, "confidence-min", "c", 0, "Fail if detected confidence is less than this")
	viper.BindPFlag("confidence_min", rootCmd.Flags().Lookup("confidence-min"))
	rootCmd.Flags().StringVarP(&fallbackEncoding, "fallback", "f", "", "Use this encoding if detected confidence is less than the minimum")
	viper.BindPFlag("fallback", rootCmd.Flags().Lookup("fallback"))

	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Show results in a JSON Lines format")
	viper.BindPFlag("json", rootCmd.Flags().Lookup("json"))
	rootCmd.Flags().BoolVarP(&statOutput, "stat", "s", false, "Show statistics instead of decoded text")
	viper.BindPFlag("stat", rootCmd.Flags().Lookup("stat"))

	rootCmd.Flags().BoolVarP(&allowBinary, "allow-binary", "b", false, "Print a binary input as it is")
	viper.BindPFlag("allow_binary", rootCmd.Flags().Lookup("allow-binary"))
	rootCmd.Flags().StringVarP(&trapName, "trap", "t", "strict", "Decoder behavior on malformed bytes: strict, replace, or ignore")
	viper.BindPFlag("trap", rootCmd.Flags().Lookup("trap"))

	// Registering the version flag ourselves gives it the -V shorthand.
	rootCmd.Flags().BoolP("version", "V", false, "Print version information")

	viper.SetDefault("confidence_min", 0.0)
	viper.SetDefault("fallback", "")
	viper.SetDefault("allow_binary", false)
	viper.SetDefault("trap", "strict")
}

// initConfig reads the optional config file and DETAT_* environment
// variables. Explicit flags win; config and env only fill in values the user
// did not pass on the command line.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "detat"))
	}
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("DETAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; a malformed one is worth a warning.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "detat: error reading config file: %v\n", err)
		}
	}

	flags := rootCmd.Flags()
	if !flags.Changed("confidence-min") {
		confidenceMin = viper.GetFloat64("confidence_min")
	}
	if !flags.Changed("fallback") {
		fallbackEncoding = viper.GetString("fallback")
	}
	if !flags.Changed("allow-binary") {
		allowBinary = viper.GetBool("allow_binary")
	}
	if !flags.Changed("trap") {
		trapName = viper.GetString("trap")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
