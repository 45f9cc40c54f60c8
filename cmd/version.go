package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/sqlint/pkg/format"
	"github.com/nsxbet/sqlint/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sqlint version",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		if viper.GetInt("verbose") >= 1 {
			f := format.New(os.Stdout, viper.GetInt("verbose"), viper.GetBool("nocolor"))
			f.WriteEnvironment(info)
			return
		}
		fmt.Println(info.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
