// Package queryfile reads the line oriented exercise fixture format: an
// input file carrying an initial array (or interval list) and a stream of
// queries, paired with an output file carrying one expected result per
// query that produces output.
//
// Max query input files look like:
//
//	n m
//	a1 a2 ... an
//	0 start end value   (range clamp)
//	1 start end         (range max query)
//
// with one expected integer per "1" line in the paired output file.
//
// Existence input files look like:
//
//	n m
//	start end           (n interval lines)
//	start end k         (m existence queries)
//
// with one expected 0/1 per query line in the paired output file. All
// positions are 1 based and inclusive.
package queryfile

import (
	"errors"

	"github.com/francealip/competitive-programming/sweep"
)

var (
	ErrBadHeader   = errors.New("queryfile: malformed header line")
	ErrBadArray    = errors.New("queryfile: malformed array line")
	ErrBadInterval = errors.New("queryfile: malformed interval line")
	ErrBadQuery    = errors.New("queryfile: malformed query line")
	ErrBadExpected = errors.New("queryfile: malformed expected output line")
	ErrShortInput  = errors.New("queryfile: input ended early")
)

// Kind tags one line of a max query stream.
type Kind uint8

const (
	// KindClamp is a range clamp update, encoded as "0 start end value".
	KindClamp Kind = iota
	// KindMax is a range max query, encoded as "1 start end".
	KindMax
)

// Op is one operation of a max query stream.
type Op struct {
	Kind  Kind
	Start int
	End   int
	Value uint32 // clamp bound; meaningful only when Kind is KindClamp
}

// MaxCase is a parsed max query fixture: the initial array, the operation
// stream, and one expected result per KindMax op in stream order. Expected
// is nil when no output file was supplied.
type MaxCase struct {
	Values   []uint32
	Ops      []Op
	Expected []uint32
}

// ExistsQuery asks whether k occurs at some position in [Start, End] of
// the overlap count array.
type ExistsQuery struct {
	Start int
	End   int
	K     uint32
}

// ExistsCase is a parsed existence fixture: the interval list, the query
// stream, and one expected result per query. Expected is nil when no
// output file was supplied.
type ExistsCase struct {
	Intervals []sweep.Interval
	Queries   []ExistsQuery
	Expected  []bool
}
