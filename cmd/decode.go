package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/founderset/walkgfa/pkg/common"
	"github.com/founderset/walkgfa/pkg/gfa"
	"github.com/founderset/walkgfa/pkg/walk"
)

var decodeOutput string

func newDecodeCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [walk-file]",
		Short: "Decode compact walk records into a complete GFA file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newDecodeAction(ctx),
	}
	cmd.Flags().StringVarP(&decodeOutput, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newDecodeAction(ctx context.Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args)
		if err != nil {
			return err
		}

		graph := gfa.NewGraph()
		return common.NewPipelineExecutor(
			common.NewInfoExecutor("decoding walk records"),
			func(_ context.Context) error {
				return walk.Decode(in, graph)
			},
			func(_ context.Context) error {
				return writeOutput(decodeOutput, graph.Write)
			},
		).Finally(func(_ context.Context) error {
			return in.Close()
		})(ctx)
	}
}
