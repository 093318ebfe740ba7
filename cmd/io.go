package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// openInput opens the positional input file, or stdin when the argument
// is missing or "-"
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", args[0])
	}
	return f, nil
}

// writeOutput runs emit against the output file, or stdout when path is
// empty. A partially written output file is removed on error so that
// downstream stages never consume a truncated graph.
func writeOutput(path string, emit func(io.Writer) error) error {
	if path == "" || path == "-" {
		return emit(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", path)
	}
	if err := emit(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.Wrapf(err, "unable to write %s", path)
	}
	return nil
}
