package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/founderset/walkgfa/pkg/common"
	"github.com/founderset/walkgfa/pkg/founder"
	"github.com/founderset/walkgfa/pkg/gfa"
)

var expandOutput string
var expandPadWidth int

func newExpandCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand [table-file]",
		Short: "Expand a wide founder table into a merged GFA file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newExpandAction(ctx),
	}
	cmd.Flags().StringVarP(&expandOutput, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVarP(&expandPadWidth, "pad-width", "w", founder.DefaultPadWidth, "zero-padding width of the candidate index in sub-path names")
	return cmd
}

func newExpandAction(ctx context.Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args)
		if err != nil {
			return err
		}

		graph := gfa.NewGraph()
		return common.NewPipelineExecutor(
			common.NewInfoExecutor("expanding founder table"),
			func(_ context.Context) error {
				return founder.ExpandTable(in, expandPadWidth, graph)
			},
			func(_ context.Context) error {
				return writeOutput(expandOutput, graph.Write)
			},
		).Finally(func(_ context.Context) error {
			return in.Close()
		})(ctx)
	}
}
