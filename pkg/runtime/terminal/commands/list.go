package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/fact-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/fact-atlas/pkg/services/loader"
	"github.com/de-tools/fact-atlas/pkg/services/report"
)

type ListCmd struct {
	reportPath string
	format     string
	registry   loader.Registry
	reporter   *export.Reporter
}

func NewListCmd(registry loader.Registry, reporter *export.Reporter) *cobra.Command {
	lc := &ListCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the facts of a report",
		RunE:  lc.run,
	}

	addReportFlags(cmd, &lc.reportPath, &lc.format)

	return cmd
}

func (lc *ListCmd) run(cmd *cobra.Command, args []string) error {
	rep, err := loadReport(lc.registry, lc.format, lc.reportPath)
	if err != nil {
		return err
	}

	return lc.reporter.HandleFacts(rep.Facts())
}

func addReportFlags(cmd *cobra.Command, reportPath, format *string) {
	cmd.Flags().StringVar(reportPath, "report", "", "Path to the report data file")
	cmd.Flags().StringVar(format, "format", "json", "Report data format")

	_ = cmd.MarkFlagRequired("report")
}

func loadReport(registry loader.Registry, format, path string) (*report.Report, error) {
	l, err := registry.Create(format, loader.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to create a loader for format: %s", format)
	}
	rep, err := l.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return rep, nil
}
