package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/sqlint/pkg/dialect"
	"github.com/nsxbet/sqlint/pkg/format"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List the known SQL dialects",
	Run: func(cmd *cobra.Command, args []string) {
		f := format.New(os.Stdout, viper.GetInt("verbose"), viper.GetBool("nocolor"))
		f.WriteDialects(dialect.Names())
	},
}

func init() {
	rootCmd.AddCommand(dialectsCmd)
}
