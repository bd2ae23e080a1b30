package extrema

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Dilator construction and queries.
var (
	ErrInvalidInput = errors.New("extrema: invalid input")
	ErrInvalidRange = errors.New("extrema: invalid range")
)

// unset marks the extent of an index that is still live.
const unset = -1

// Polarity selects which kind of extremum a Dilator tracks.
type Polarity int

const (
	Maximum Polarity = iota
	Minimum
)

// String returns "maximum" or "minimum".
func (p Polarity) String() string {
	switch p {
	case Maximum:
		return "maximum"
	case Minimum:
		return "minimum"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// Opposite returns the other polarity.
func (p Polarity) Opposite() Polarity {
	if p == Maximum {
		return Minimum
	}
	return Maximum
}

// Validate reports whether data is usable as a signal: it must be non-empty
// and every sample must be finite.
func Validate(data []float64) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty signal", ErrInvalidInput)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite sample %v at index %d", ErrInvalidInput, v, i)
		}
	}
	return nil
}

// Dilator holds the live extrema of one polarity of a signal and advances
// them through increasing dilation radii.
type Dilator struct {
	data     []float64
	polarity Polarity
	radius   int

	// live holds the surviving candidates in strictly increasing order.
	live []int

	// extent[x] is the last radius at which x was undominated, or unset
	// while x is live.
	extent []int
}

// NewDilator creates a Dilator at radius 0, where every index is live.
// The signal is referenced, not copied, and must not be modified while the
// Dilator is in use.
func NewDilator(data []float64, polarity Polarity) (*Dilator, error) {
	if polarity != Maximum && polarity != Minimum {
		return nil, fmt.Errorf("%w: unknown polarity %d", ErrInvalidInput, int(polarity))
	}
	if err := Validate(data); err != nil {
		return nil, err
	}

	n := len(data)
	d := &Dilator{
		data:     data,
		polarity: polarity,
		live:     make([]int, n),
		extent:   make([]int, n),
	}
	for i := range d.live {
		d.live[i] = i
		d.extent[i] = unset
	}
	return d, nil
}

// Polarity returns the polarity the Dilator was built for.
func (d *Dilator) Polarity() Polarity { return d.polarity }

// Radius returns the number of dilations performed so far.
func (d *Dilator) Radius() int { return d.radius }

// Len returns the number of live extrema.
func (d *Dilator) Len() int { return len(d.live) }

// At returns the i-th live extremum in index order.
func (d *Dilator) At(i int) int { return d.live[i] }

// Live returns a copy of the live extrema in index order.
func (d *Dilator) Live() []int {
	out := make([]int, len(d.live))
	copy(out, d.live)
	return out
}

// IsLive reports whether x is still an undominated extremum.
func (d *Dilator) IsLive(x int) bool {
	if x < 0 || x >= len(d.extent) {
		return false
	}
	return d.extent[x] == unset
}

// Extent returns the largest radius at which x was an undominated extremum.
// For live indices this is the current radius. It returns -1 if x is outside
// the signal.
func (d *Dilator) Extent(x int) int {
	if x < 0 || x >= len(d.extent) {
		return -1
	}
	if e := d.extent[x]; e != unset {
		return e
	}
	return d.radius
}

// beats reports whether sample value a dominates b under the Dilator's
// polarity. With orEqual set, equality also dominates.
func (d *Dilator) beats(a, b float64, orEqual bool) bool {
	if d.polarity == Maximum {
		return a > b || (orEqual && a == b)
	}
	return a < b || (orEqual && a == b)
}

// Dilate advances the radius by one and prunes every live extremum that is
// dominated at the new radius.
//
// A candidate x is dominated when the sample radius positions to its left
// strictly beats it, when the sample radius positions to its right beats or
// equals it, or when a live neighbor within 2*radius does the same (strictly
// for the predecessor, non-strictly for the successor). All decisions are
// taken against the live set as it stood when the call started.
func (d *Dilator) Dilate() {
	d.radius++
	r := d.radius
	n := len(d.data)
	count := len(d.live)

	// Pruning happens in place: write never overtakes read, so live[read+1]
	// still holds the snapshot successor and prev carries the snapshot
	// predecessor.
	write := 0
	prev := -1
	for read := 0; read < count; read++ {
		x := d.live[read]
		v := d.data[x]

		dominated := (x-r >= 0 && d.beats(d.data[x-r], v, false)) ||
			(x+r < n && d.beats(d.data[x+r], v, true))

		if !dominated && prev >= 0 && prev+r >= x-r {
			dominated = d.beats(d.data[prev], v, false)
		}
		if !dominated && read+1 < count {
			next := d.live[read+1]
			dominated = x+r >= next-r && d.beats(d.data[next], v, true)
		}

		if dominated {
			d.extent[x] = r - 1
		} else {
			d.live[write] = x
			write++
		}
		prev = x
	}
	d.live = d.live[:write]
}

// DilateTo calls Dilate until the radius reaches radius. It does nothing if
// the Dilator is already at or beyond that radius.
func (d *Dilator) DilateTo(radius int) {
	for d.radius < radius {
		d.Dilate()
	}
}

// DominantBetween returns the index with the largest extent strictly between
// idx0 and idx1.
//
// The search starts at the midpoint and moves outwards, replacing the best
// candidate only on a strictly larger extent, so ties go to the most central
// index and, at equal distance, to the left one. If every index in the
// interval has the same extent, the midpoint is returned.
func (d *Dilator) DominantBetween(idx0, idx1 int) (int, error) {
	if idx1-idx0 < 2 {
		return -1, fmt.Errorf("%w: indices %d and %d are fewer than 2 apart", ErrInvalidRange, idx0, idx1)
	}
	if idx0 < -1 || idx1 > len(d.data) {
		return -1, fmt.Errorf("%w: (%d, %d) exceeds signal of length %d", ErrInvalidRange, idx0, idx1, len(d.data))
	}

	center := (idx0 + idx1) / 2
	best, bestExtent := center, d.Extent(center)
	span := (idx1 - idx0 - 1) / 2
	for r := 1; r <= span; r++ {
		if left := center - r; left > idx0 {
			if e := d.Extent(left); e > bestExtent {
				best, bestExtent = left, e
			}
		}
		// center+span is always idx1-1, so the right side needs no bound check.
		if e := d.Extent(center + r); e > bestExtent {
			best, bestExtent = center+r, e
		}
	}
	return best, nil
}
