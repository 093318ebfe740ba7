package gfa

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// maxLineSize bounds a single GFA record; founder paths over whole
// chromosomes overflow the default scanner buffer
const maxLineSize = 64 * 1024 * 1024

// ReadPaths scans a GFA stream and returns its P records in input order.
// All other record kinds are skipped. A step token without a trailing
// strand sign aborts the scan.
func ReadPaths(r io.Reader) ([]Path, error) {
	log.Debugf("reading path records")

	var paths []Path
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !strings.HasPrefix(line, "P\t") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, errors.Errorf("line %d: path record has %d fields, expected at least 3", lineNo, len(fields))
		}
		p := Path{Name: fields[1]}
		for _, tok := range strings.Split(fields[2], ",") {
			step, err := ParseStep(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: path '%s'", lineNo, p.Name)
			}
			p.Steps = append(p.Steps, step)
		}
		if len(p.Steps) == 0 {
			return nil, errors.Errorf("line %d: path '%s' has an empty walk", lineNo, p.Name)
		}
		paths = append(paths, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading gfa stream")
	}
	log.Debugf("read %d path records", len(paths))
	return paths, nil
}
