package unicolour

import (
	"fmt"

	"github.com/kovidgoyal/go-parallel"
)

// ConvertAll returns the representation of every colour in space, computing
// them concurrently. Each worker owns a disjoint range of colours.
func ConvertAll(colours []*Unicolour, space Space) (ans []Representation, err error) {
	if !space.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSpace, space)
	}
	ans = make([]Representation, len(colours))
	err = parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			ans[i] = colours[i].rep(space)
		}
	}, 0, len(colours))
	if err != nil {
		Logger().Debug("batch conversion failed", "space", space, "count", len(colours), "error", err)
		return nil, err
	}
	return ans, nil
}
