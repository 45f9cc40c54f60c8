package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/sqlint/pkg/format"
	"github.com/nsxbet/sqlint/pkg/rules"
	_ "github.com/nsxbet/sqlint/pkg/rules/std"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered lint rules",
	Run: func(cmd *cobra.Command, args []string) {
		f := format.New(os.Stdout, viper.GetInt("verbose"), viper.GetBool("nocolor"))
		f.WriteRules(rules.All())
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
