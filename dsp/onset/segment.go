package onset

import (
	"fmt"
	"sort"
)

// Boundaries converts ascending onset times in seconds to sample indices
// clipped to [0, totalFrames], deduplicated and sorted.
func Boundaries(times []float64, sampleRate, totalFrames int) ([]int, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("boundaries sample rate must be > 0: %d", sampleRate)
	}
	if totalFrames < 0 {
		return nil, fmt.Errorf("boundaries frame count must be >= 0: %d", totalFrames)
	}
	out := make([]int, 0, len(times))
	for _, ts := range times {
		idx := int(ts * float64(sampleRate))
		if idx < 0 {
			idx = 0
		}
		if idx > totalFrames {
			idx = totalFrames
		}
		out = append(out, idx)
	}
	sort.Ints(out)

	dedup := out[:0]
	for i, v := range out {
		if i == 0 || v != dedup[len(dedup)-1] {
			dedup = append(dedup, v)
		}
	}
	return dedup, nil
}

// Segments slices [0, totalFrames) at the given ascending boundaries: one
// segment between each pair of consecutive boundaries and one from the
// final boundary to the end. A leading segment before the first boundary
// is produced when the first boundary is not at zero, so the result holds
// len(boundaries) or len(boundaries)+1 ranges before filtering. An empty
// boundary list yields no segments. Ranges shorter than minFrames are
// dropped.
func Segments(boundaries []int, totalFrames, minFrames int) [][2]int {
	if totalFrames <= 0 || len(boundaries) == 0 {
		return nil
	}
	cuts := boundaries
	if cuts[0] != 0 {
		cuts = append([]int{0}, cuts...)
	}

	var out [][2]int
	for i, start := range cuts {
		end := totalFrames
		if i+1 < len(cuts) {
			end = cuts[i+1]
		}
		if end-start >= minFrames && end > start {
			out = append(out, [2]int{start, end})
		}
	}
	return out
}
