// Package founder expands the wide founder table emitted by the
// minimization stage into per-candidate graph paths. A single-field line
// opens a family of candidates; every following multi-field line is one
// candidate walk in template switch form.
package founder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/founderset/walkgfa/pkg/gfa"
	"github.com/founderset/walkgfa/pkg/walk"
)

// maxLineSize bounds a single table row; candidate walks over whole
// chromosomes overflow the default scanner buffer
const maxLineSize = 64 * 1024 * 1024

// DefaultPadWidth is the zero-padding width of the candidate index in
// sub-path names, yielding names like "fam_000_c1"
const DefaultPadWidth = 3

// ExpandTable reads a wide founder table from r and registers one
// sub-path per candidate row into g, named
// "<family>_<zero-padded index>_<label>" with the index padded to
// padWidth digits. Segments and links accumulate into the one shared
// graph across all families, so repeated adjacencies collapse to a
// single link record.
func ExpandTable(r io.Reader, padWidth int, g *gfa.Graph) error {
	log.Debugf("expanding founder table")
	if padWidth <= 0 {
		padWidth = DefaultPadWidth
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	family := ""
	index := 0
	rows := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) == 1 {
			family = strings.TrimSpace(fields[0])
			index = 0
			log.Debugf("line %d: new founder family '%s'", lineNo, family)
			continue
		}

		if family == "" {
			return errors.Errorf("line %d: candidate row before any family header", lineNo)
		}
		label := strings.TrimSpace(fields[0])
		steps, err := parseCandidate(fields[1:])
		if err != nil {
			return errors.Wrapf(err, "line %d: candidate '%s'", lineNo, label)
		}

		name := fmt.Sprintf("%s_%0*d_%s", family, padWidth, index, label)
		if err := g.AddPath(gfa.Path{Name: name, Steps: steps}); err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		index++
		rows++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading founder table")
	}
	log.Infof("expanded %d candidate walks", rows)
	return nil
}

// parseCandidate tokenizes a candidate row's walk columns and reorients
// the steps under the template switch model: the walk opens on a forward
// anchor, and every later step is a reverse-oriented copy, the anchors of
// subsequent switch groups included.
func parseCandidate(columns []string) ([]gfa.OrientedSegment, error) {
	var b strings.Builder
	for _, c := range columns {
		b.WriteString(strings.TrimSpace(c))
	}
	raw := b.String()
	if raw == "" {
		return nil, errors.New("empty walk")
	}

	steps, err := walk.Parse(raw)
	if err != nil {
		return nil, err
	}
	for i := range steps {
		if i == 0 {
			steps[i].Strand = gfa.Forward
		} else {
			steps[i].Strand = gfa.Reverse
		}
	}
	return steps, nil
}
