package cmd

import (
	"bytes"
	"context"
	"io"
	"regexp"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/founderset/walkgfa/pkg/common"
	"github.com/founderset/walkgfa/pkg/walk"
)

var extractPattern string
var extractOutput string

func newExtractCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [graph-file]",
		Short: "Extract matching paths from a GFA file as compact walks",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newExtractAction(ctx),
	}
	cmd.Flags().StringVarP(&extractPattern, "pattern", "p", "", "regular expression selecting path names")
	cmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("pattern")
	return cmd
}

func newExtractAction(ctx context.Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		re, err := regexp.Compile(extractPattern)
		if err != nil {
			return errors.Wrapf(err, "invalid pattern '%s'", extractPattern)
		}

		in, err := openInput(args)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		return common.NewPipelineExecutor(
			common.NewDebugExecutor("extracting paths matching '%s'", extractPattern),
			func(ctx context.Context) error {
				count, err := walk.Extract(in, re.MatchString, &buf)
				if err != nil {
					return err
				}
				common.Logger(ctx).Infof("extracted %d haplotype walks", count)
				return nil
			},
			func(_ context.Context) error {
				return writeOutput(extractOutput, func(w io.Writer) error {
					_, err := buf.WriteTo(w)
					return err
				})
			},
		).Finally(func(_ context.Context) error {
			return in.Close()
		})(ctx)
	}
}
