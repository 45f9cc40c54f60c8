package cmd

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nsxbet/sqlint/pkg/format"
	"github.com/nsxbet/sqlint/pkg/linter"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] [PATH...]",
	Short: "Lint SQL files against the configured rules",
	Long: `Lint SQL files, directories of SQL files, or stdin via "-".

Paths default to the current directory, scanned recursively for files with
a recognized SQL extension. The exit status is 0 for a clean run, 65 when
violations were found and 66 when the run could not start.`,
	Args: cobra.ArbitraryArgs,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringP("format", "f", "text", "output format (text, json, yaml)")
	_ = viper.BindPFlag("format", lintCmd.Flags().Lookup("format"))
}

func runLint(cmd *cobra.Command, args []string) error {
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
	res, err := l.LintPaths(cmd.Context(), paths)
	if err != nil {
		return configError(err)
	}

	switch outputFormat := viper.GetString("format"); outputFormat {
	case "text":
		format.New(os.Stdout, viper.GetInt("verbose"), viper.GetBool("nocolor")).WriteResult(res)
	case "json":
		if err := outputJSON(buildReport(res)); err != nil {
			return err
		}
	case "yaml":
		if err := outputYAML(buildReport(res)); err != nil {
			return err
		}
	default:
		return configError(errors.Errorf("unsupported output format: %s", outputFormat))
	}

	if code := res.Stats().ExitCode; code != linter.ExitOK {
		os.Exit(code)
	}
	return nil
}

// runReport is the machine readable shape of a lint run.
type runReport struct {
	Files   []fileReport  `json:"files" yaml:"files"`
	Summary summaryReport `json:"summary" yaml:"summary"`
}

type fileReport struct {
	Path       string            `json:"path" yaml:"path"`
	Status     string            `json:"status" yaml:"status"`
	Violations []violationReport `json:"violations" yaml:"violations"`
}

type violationReport struct {
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
	Code     string `json:"code" yaml:"code"`
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message" yaml:"message"`
}

type summaryReport struct {
	Files      int     `json:"files" yaml:"files"`
	Violations int     `json:"violations" yaml:"violations"`
	Clean      int     `json:"clean_files" yaml:"clean_files"`
	Unclean    int     `json:"unclean_files" yaml:"unclean_files"`
	AvgPerFile float64 `json:"avg_per_file" yaml:"avg_per_file"`
	Status     string  `json:"status" yaml:"status"`
}

func buildReport(res *linter.Result) runReport {
	rep := runReport{Files: []fileReport{}}
	for _, lf := range res.Files() {
		fr := fileReport{
			Path:       lf.Path,
			Status:     linter.StatusPass,
			Violations: []violationReport{},
		}
		if !lf.IsClean() {
			fr.Status = linter.StatusFail
		}
		for _, v := range lf.Violations {
			fr.Violations = append(fr.Violations, violationReport{
				Line:     v.Pos.Line,
				Column:   v.Pos.Col,
				Code:     v.Code,
				Severity: v.Severity.String(),
				Message:  v.Message,
			})
		}
		rep.Files = append(rep.Files, fr)
	}

	s := res.Stats()
	rep.Summary = summaryReport{
		Files:      s.Files,
		Violations: s.Violations,
		Clean:      s.Clean,
		Unclean:    s.Unclean,
		AvgPerFile: s.AvgPerFile,
		Status:     s.Status,
	}
	return rep
}

func outputJSON(rep runReport) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rep)
}

func outputYAML(rep runReport) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	return encoder.Encode(rep)
}
