package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/fact-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/fact-atlas/pkg/services/loader"
)

type InspectCmd struct {
	reportPath string
	format     string
	registry   loader.Registry
	reporter   *export.Reporter
}

func NewInspectCmd(registry loader.Registry, reporter *export.Reporter) *cobra.Command {
	ic := &InspectCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "inspect <fact-id>",
		Short: "Show the inspector view of a fact",
		Args:  cobra.ExactArgs(1),
		RunE:  ic.run,
	}

	addReportFlags(cmd, &ic.reportPath, &ic.format)

	return cmd
}

func (ic *InspectCmd) run(cmd *cobra.Command, args []string) error {
	rep, err := loadReport(ic.registry, ic.format, ic.reportPath)
	if err != nil {
		return err
	}

	f, ok := rep.Fact(args[0])
	if !ok {
		return fmt.Errorf("no fact with id %q in report", args[0])
	}

	return ic.reporter.HandleDetail(f)
}
