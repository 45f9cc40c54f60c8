package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nsxbet/sqlint/pkg/linter"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [PATH...]",
	Short: "Print the parsed segment tree of SQL files",
	Long: `Parse SQL files and print their segment trees.

The tree shows how the dialect grammar carved the source up, including any
unparsable segments, which makes it the first stop when a rule fires in an
unexpected place.`,
	Args: cobra.ArbitraryArgs,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return configError(err)
	}
	l, err := linter.New(cfg)
	if err != nil {
		return configError(err)
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, path := range paths {
		files, err := l.ParsePath(cmd.Context(), path)
		if err != nil {
			return configError(err)
		}
		for _, file := range files {
			fmt.Printf("== [%s]\n", file.Path)
			fmt.Print(file.Tree.Stringify())
		}
	}
	return nil
}
