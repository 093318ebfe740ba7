package walk

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/founderset/walkgfa/pkg/gfa"
)

// ErrNoMatch is returned when the input contains path records but none of
// their names satisfy the predicate. Callers use it to halt the pipeline
// before an empty founder set propagates downstream.
var ErrNoMatch = errors.New("no path names matched")

// ErrNoPaths is returned when the input contains no path records at all
var ErrNoPaths = errors.New("no path records in input")

// Extract selects the path records whose name satisfies matches and
// re-encodes each as a "<name><TAB><compact-walk>" line on w. It returns
// the number of extracted paths. The predicate is deliberately decoupled
// from parsing; pass e.g. a compiled regexp's MatchString.
func Extract(r io.Reader, matches func(name string) bool, w io.Writer) (int, error) {
	paths, err := gfa.ReadPaths(r)
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, ErrNoPaths
	}

	bw := bufio.NewWriter(w)
	count := 0
	for _, p := range paths {
		if !matches(p.Name) {
			continue
		}
		log.Debugf("extracting haplotype '%s'", p.Name)
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", p.Name, Encode(p.Steps)); err != nil {
			return count, err
		}
		count++
	}
	if count == 0 {
		return 0, ErrNoMatch
	}
	return count, bw.Flush()
}
