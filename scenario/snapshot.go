package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlset/grid"
)

// Snapshot renders the sign structure of a field as ASCII rows: '#' for
// negative samples (inside the front), '.' for positive ones (outside)
// and '0' on the exact zero level. Dimension 0 runs left to right,
// dimension 1 top to bottom; fields with three or more dimensions render
// the middle slice of every higher dimension.
func Snapshot(f *grid.Field) (string, error) {
	if f == nil {
		return "", grid.ErrNilField
	}
	region := f.Region()
	w := region.Size[0]
	h := 1
	if region.Dims() > 1 {
		h = region.Size[1]
	}

	idx := make([]int, region.Dims())
	copy(idx, region.Origin)
	for d := 2; d < region.Dims(); d++ {
		idx[d] = region.Origin[d] + region.Size[d]/2
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		if region.Dims() > 1 {
			idx[1] = region.Origin[1] + y
		}
		for x := 0; x < w; x++ {
			idx[0] = region.Origin[0] + x
			v, err := f.At(idx)
			if err != nil {
				return "", err
			}
			switch {
			case v < 0:
				b.WriteByte('#')
			case v > 0:
				b.WriteByte('.')
			default:
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Render formats a Result as the stable text block used by golden files
// and the CLI text output.
func Render(res *Result) (string, error) {
	if res == nil || res.Output == nil {
		return "", ErrNilResult
	}
	contour, err := Snapshot(res.Output)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\n", res.Name)
	fmt.Fprintf(&b, "token: %s\n", res.RunToken)
	fmt.Fprintf(&b, "iterations: %d\n", res.Iterations)
	fmt.Fprintf(&b, "band: %d\n", res.BandSize)
	fmt.Fprintf(&b, "min: %s max: %s mean: %s\n",
		formatFloat(res.Stats.Min), formatFloat(res.Stats.Max), formatFloat(res.Stats.Mean))
	b.WriteString("contour:\n")
	b.WriteString(contour)
	return b.String(), nil
}

// formatFloat renders the shortest exact representation, keeping golden
// files independent of printf defaults.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
