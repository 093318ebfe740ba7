package gfa

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Graph accumulates the segments and links induced by a set of paths and
// serializes everything as a complete GFA v1 file. Segments and links are
// deduplicated across all registered paths; paths keep insertion order.
type Graph struct {
	segments map[string]struct{}
	links    map[Link]struct{}
	paths    []Path
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		segments: make(map[string]struct{}),
		links:    make(map[Link]struct{}),
	}
}

// AddPath registers a path, its segments, and the link between each
// consecutive pair of steps. A path with no steps is rejected because a
// path record with an empty walk cannot induce a well-formed graph.
func (g *Graph) AddPath(p Path) error {
	if len(p.Steps) == 0 {
		return errors.Errorf("path '%s' has an empty walk", p.Name)
	}
	for i, step := range p.Steps {
		g.segments[step.ID] = struct{}{}
		if i > 0 {
			g.links[Link{From: p.Steps[i-1], To: step}] = struct{}{}
		}
	}
	g.paths = append(g.paths, p)
	return nil
}

// Paths returns the registered paths in insertion order
func (g *Graph) Paths() []Path {
	return g.paths
}

// Write emits the accumulated graph as a GFA v1 file: header, one S
// record per distinct segment, one L record per distinct link, one P
// record per path. Segments and links are emitted in natural order so
// that identical inputs produce byte-identical output.
func (g *Graph) Write(w io.Writer) error {
	log.Debugf("writing gfa file with %d segments, %d links, %d paths",
		len(g.segments), len(g.links), len(g.paths))

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "H\tVN:Z:1.0"); err != nil {
		return err
	}

	segments := make([]string, 0, len(g.segments))
	for id := range g.segments {
		segments = append(segments, id)
	}
	sort.Slice(segments, func(i, j int) bool {
		return naturalLess(segments[i], segments[j])
	})
	for _, id := range segments {
		if _, err := fmt.Fprintf(bw, "S\t%s\t*\n", id); err != nil {
			return err
		}
	}

	links := make([]Link, 0, len(g.links))
	for l := range g.links {
		links = append(links, l)
	}
	sort.Slice(links, func(i, j int) bool {
		return linkLess(links[i], links[j])
	})
	for _, l := range links {
		if _, err := fmt.Fprintf(bw, "L\t%s\t%c\t%s\t%c\t0M\n",
			l.From.ID, l.From.Strand.Sign(), l.To.ID, l.To.Strand.Sign()); err != nil {
			return err
		}
	}

	for _, p := range g.paths {
		steps := make([]string, len(p.Steps))
		for i, step := range p.Steps {
			steps[i] = step.String()
		}
		if _, err := fmt.Fprintf(bw, "P\t%s\t%s\t*\n", p.Name, strings.Join(steps, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// naturalLess orders segment identifiers: numeric ids compare by value
// and sort before all non-numeric ids, which compare bytewise. Equal
// values fall back to bytewise so zero-padded ids keep a fixed place.
// The class split keeps the order total when both kinds of id coexist.
func naturalLess(a, b string) bool {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

func linkLess(a, b Link) bool {
	if a.From.ID != b.From.ID {
		return naturalLess(a.From.ID, b.From.ID)
	}
	if a.From.Strand != b.From.Strand {
		return a.From.Strand < b.From.Strand
	}
	if a.To.ID != b.To.ID {
		return naturalLess(a.To.ID, b.To.ID)
	}
	return a.To.Strand < b.To.Strand
}
