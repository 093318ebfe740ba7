// Package walk implements the compact signed-walk notation used to pass
// founder and haplotype paths between pipeline stages: each step is a
// direction marker ('>' forward, '<' reverse) immediately followed by a
// segment identifier, with no separator between steps.
package walk

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/founderset/walkgfa/pkg/gfa"
)

// Encode returns the compact signed-walk form of steps, e.g. ">12>7<7<3"
func Encode(steps []gfa.OrientedSegment) string {
	var b strings.Builder
	for _, step := range steps {
		b.WriteByte(step.Strand.Marker())
		b.WriteString(step.ID)
	}
	return b.String()
}

// Parse tokenizes a compact signed-walk string into oriented steps. The
// direction markers are the only token boundaries, so segment identifiers
// must not contain '>' or '<'.
func Parse(s string) ([]gfa.OrientedSegment, error) {
	if s == "" {
		return nil, nil
	}
	if _, ok := gfa.StrandFromMarker(s[0]); !ok {
		return nil, errors.Errorf("walk '%s' does not start with a direction marker", s)
	}

	var steps []gfa.OrientedSegment
	strand, _ := gfa.StrandFromMarker(s[0])
	start := 1
	flush := func(end int) error {
		if end == start {
			return errors.Errorf("walk '%s' has a direction marker with no segment id at offset %d", s, start-1)
		}
		steps = append(steps, gfa.OrientedSegment{ID: s[start:end], Strand: strand})
		return nil
	}
	for i := 1; i < len(s); i++ {
		next, ok := gfa.StrandFromMarker(s[i])
		if !ok {
			continue
		}
		if err := flush(i); err != nil {
			return nil, err
		}
		strand = next
		start = i + 1
	}
	if err := flush(len(s)); err != nil {
		return nil, err
	}
	return steps, nil
}
