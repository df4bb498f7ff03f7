package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/schedlab/rtfeas/config"
	"github.com/schedlab/rtfeas/core/analysis"
	"github.com/schedlab/rtfeas/core/model"
	"github.com/schedlab/rtfeas/infra/logger"
	"github.com/schedlab/rtfeas/pkg/export"
)

var (
	checkFormat string
	checkOut    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run all feasibility tests on the configured workload",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "json", "output format: json or csv")
	checkCmd.Flags().StringVarP(&checkOut, "output", "o", "", "output file (defaults to stdout)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if len(cfg.Workload.Tasks) == 0 {
		return fmt.Errorf("workload declares no tasks")
	}
	ts, err := cfg.Workload.TaskSet()
	if err != nil {
		return fmt.Errorf("workload: %w", err)
	}

	logg := logger.New("check")
	var results []model.FeasibilityResult
	for _, a := range analysis.Suite() {
		res, err := a.Analyze(ts)
		if err != nil {
			logg.Warnf("%s skipped: %v", a.Name(), err)
			continue
		}
		logg.Infof("%s: %s (U=%.4f)", res.Test, res.Verdict, res.Utilization)
		results = append(results, res)
	}

	var w io.Writer = cmd.OutOrStdout()
	if checkOut != "" {
		f, err := os.Create(checkOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	switch checkFormat {
	case "json":
		return export.WriteJSON(w, results)
	case "csv":
		return export.WriteCSV(w, results)
	}
	return fmt.Errorf("unsupported format: %s", checkFormat)
}
