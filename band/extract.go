package band

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlset/grid"
)

// Extract collects every grid point of f whose absolute value is at most
// width/2 into a fresh Band, in the field's flat storage order
// (dimension 0 fastest). Node.Value carries the field value at the point.
//
// A width of zero selects exactly the zero crossing. Returns ErrNilField
// on a nil field and ErrBadWidth on a negative or NaN width.
func Extract(f *grid.Field, width float64) (*Band, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if width < 0 || math.IsNaN(width) {
		return nil, fmt.Errorf("%w: %v", ErrBadWidth, width)
	}
	half := width / 2
	region := f.Region()
	b := New(0)
	for pos, v := range f.Data() {
		if math.Abs(v) > half {
			continue
		}
		idx, err := region.IndexAt(pos)
		if err != nil {
			return nil, err
		}
		b.nodes = append(b.nodes, Node{Index: idx, Value: v})
	}
	return b, nil
}
