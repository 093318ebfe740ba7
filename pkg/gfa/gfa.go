package gfa

import (
	"fmt"

	"github.com/pkg/errors"
)

// Strand is the orientation of a segment within a path
type Strand int

const (
	// Forward traversal of a segment
	Forward Strand = iota
	// Reverse traversal of a segment
	Reverse
)

// Sign returns the GFA record encoding of the strand
func (s Strand) Sign() byte {
	if s == Reverse {
		return '-'
	}
	return '+'
}

// Marker returns the compact walk encoding of the strand
func (s Strand) Marker() byte {
	if s == Reverse {
		return '<'
	}
	return '>'
}

func (s Strand) String() string {
	return string(s.Sign())
}

// StrandFromSign maps a GFA strand sign to a Strand
func StrandFromSign(c byte) (Strand, error) {
	switch c {
	case '+':
		return Forward, nil
	case '-':
		return Reverse, nil
	}
	return Forward, errors.Errorf("unknown strand sign '%c'", c)
}

// StrandFromMarker maps a compact walk direction marker to a Strand
func StrandFromMarker(c byte) (Strand, bool) {
	switch c {
	case '>':
		return Forward, true
	case '<':
		return Reverse, true
	}
	return Forward, false
}

// OrientedSegment is a reference to a segment together with the strand it
// is traversed on. Two references with different strands are distinct
// usages of the same underlying segment.
type OrientedSegment struct {
	ID     string
	Strand Strand
}

func (o OrientedSegment) String() string {
	return fmt.Sprintf("%s%c", o.ID, o.Strand.Sign())
}

// ParseStep parses a signed step token such as "12+" or "7-"
func ParseStep(tok string) (OrientedSegment, error) {
	if len(tok) < 2 {
		return OrientedSegment{}, errors.Errorf("step token '%s' has no strand sign", tok)
	}
	strand, err := StrandFromSign(tok[len(tok)-1])
	if err != nil {
		return OrientedSegment{}, errors.Wrapf(err, "step token '%s'", tok)
	}
	return OrientedSegment{ID: tok[:len(tok)-1], Strand: strand}, nil
}

// Link is a directed adjacency between two oriented segment endpoints, as
// traversed by at least one path
type Link struct {
	From OrientedSegment
	To   OrientedSegment
}

// Path is a named, ordered traversal of oriented segments
type Path struct {
	Name  string
	Steps []OrientedSegment
}
