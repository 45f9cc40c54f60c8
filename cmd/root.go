package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/sqlint/pkg/config"
	"github.com/nsxbet/sqlint/pkg/linter"
	"github.com/nsxbet/sqlint/pkg/logger"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sqlint",
	Short: "A dialect-aware SQL style linter",
	Long: `sqlint checks SQL files against a catalog of style rules.

Sources are lexed and parsed losslessly for the selected dialect, so broken
SQL shows up as unparsable segments in the report instead of aborting the
run. Output ordering is deterministic: violations sort by line, column and
rule code, files keep their discovery order.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .sqlint.yaml, searched upwards)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase output verbosity (repeatable, or --verbose=N)")
	rootCmd.PersistentFlags().BoolP("nocolor", "n", false, "disable colored output")
	rootCmd.PersistentFlags().String("dialect", "", "SQL dialect to lex and parse with")
	rootCmd.PersistentFlags().String("rules", "", "comma separated rule codes to run (default: all)")
	rootCmd.PersistentFlags().String("templater", "", "templater rendering sources before linting")

	// Bind flags to viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("nocolor", rootCmd.PersistentFlags().Lookup("nocolor"))
	viper.BindPFlag("dialect", rootCmd.PersistentFlags().Lookup("dialect"))
	viper.BindPFlag("rules", rootCmd.PersistentFlags().Lookup("rules"))
	viper.BindPFlag("templater", rootCmd.PersistentFlags().Lookup("templater"))
}

// initLogging installs the default slog logger before any command runs.
func initLogging() {
	viper.AutomaticEnv()
	logger.NewWithVerbosity(viper.GetInt("verbose"), viper.GetBool("nocolor")).SetAsDefault()
}

// loadConfig builds the effective configuration: the config file when one
// is given or found, then flag overrides on top.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.Locate(wd)
		}
	}

	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if d := viper.GetString("dialect"); d != "" {
		cfg.Dialect = d
	}
	if r := viper.GetString("rules"); r != "" {
		cfg.Rules = splitCodes(r)
	}
	if tp := viper.GetString("templater"); tp != "" {
		cfg.Templater.Name = tp
	}
	return cfg, nil
}

func splitCodes(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToUpper(part))
		}
	}
	return out
}

// configError reports a configuration failure and stops the process before
// any linting happens.
func configError(err error) error {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(linter.ExitConfig)
	return nil
}
