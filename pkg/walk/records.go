package walk

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/founderset/walkgfa/pkg/gfa"
)

// Record is one named compact walk read from a walk stream
type Record struct {
	Name  string
	Steps []gfa.OrientedSegment
}

// maxLineSize bounds a single walk line; compact walks over whole
// chromosomes overflow the default scanner buffer
const maxLineSize = 64 * 1024 * 1024

type parserState int

const (
	expectName parserState = iota
	expectWalk
)

// ReadRecords parses a name-delimited stream of compact walk records. A
// record is either a single "<name><TAB><walk>" line, or a bare name line
// followed by one or more walk lines. Records are delimited by the
// absence of a leading direction marker: a second consecutive name line
// starts a new record, and a record still empty at end of input is a
// validation error.
func ReadRecords(r io.Reader) ([]Record, error) {
	log.Debugf("reading walk records")

	var records []Record
	state := expectName

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \r")
		if line == "" {
			continue
		}

		if _, ok := gfa.StrandFromMarker(line[0]); ok {
			// walk line, appends to the current record
			if len(records) == 0 {
				return nil, errors.Errorf("line %d: walk without a preceding name", lineNo)
			}
			steps, err := Parse(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: record '%s'", lineNo, records[len(records)-1].Name)
			}
			records[len(records)-1].Steps = append(records[len(records)-1].Steps, steps...)
			state = expectName
			continue
		}

		if name, rest, found := strings.Cut(line, "\t"); found {
			// one-line record, as produced by extract
			steps, err := Parse(strings.TrimSpace(rest))
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: record '%s'", lineNo, name)
			}
			records = append(records, Record{Name: name, Steps: steps})
			state = expectName
			continue
		}

		// bare name line, walk follows on later lines
		if state == expectWalk {
			log.Debugf("line %d: name '%s' follows a record with no walk, starting a new path", lineNo, line)
		}
		records = append(records, Record{Name: strings.TrimSpace(line)})
		state = expectWalk
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading walk stream")
	}

	for _, rec := range records {
		if len(rec.Steps) == 0 {
			return nil, errors.Errorf("record '%s' has an empty walk", rec.Name)
		}
	}
	log.Debugf("read %d walk records", len(records))
	return records, nil
}

// Decode reads compact walk records from r and registers one path per
// record into g, in input order. Segments and links are deduplicated
// across all records by the graph accumulator.
func Decode(r io.Reader, g *gfa.Graph) error {
	records, err := ReadRecords(r)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := g.AddPath(gfa.Path{Name: rec.Name, Steps: rec.Steps}); err != nil {
			return err
		}
	}
	log.Infof("decoded %d walks", len(records))
	return nil
}
