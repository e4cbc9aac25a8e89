package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/fact-atlas/pkg/models/domain"
	"github.com/de-tools/fact-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/fact-atlas/pkg/services/loader"
)

type DuplicatesCmd struct {
	reportPath string
	format     string
	cover      []string
	registry   loader.Registry
	reporter   *export.Reporter
}

func NewDuplicatesCmd(registry loader.Registry, reporter *export.Reporter) *cobra.Command {
	dc := &DuplicatesCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "duplicates <fact-id>",
		Short: "List the facts aligned with a fact",
		Args:  cobra.ExactArgs(1),
		RunE:  dc.run,
	}

	addReportFlags(cmd, &dc.reportPath, &dc.format)
	cmd.Flags().StringSliceVar(&dc.cover, "cover", nil,
		"Aspect keys allowed to vary (e.g. --cover u,p)")

	return cmd
}

func (dc *DuplicatesCmd) run(cmd *cobra.Command, args []string) error {
	rep, err := loadReport(dc.registry, dc.format, dc.reportPath)
	if err != nil {
		return err
	}

	f, ok := rep.Fact(args[0])
	if !ok {
		return fmt.Errorf("no fact with id %q in report", args[0])
	}

	cov := domain.Coverage{}
	for _, key := range dc.cover {
		cov[key] = domain.Wildcard()
	}

	return dc.reporter.HandleFacts(rep.AlignedFacts(f, cov))
}
