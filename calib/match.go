package calib

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-raman/dsp/peaks"
)

// Match pairs one detected peak with one reference line. Matches form
// a one-to-one assignment preserving the order of both sequences.
type Match struct {
	Peak peaks.Peak
	Line Line
	// Position is the sub-pixel peak position used by the fits. Zero
	// means unrefined; the peak's integer index is used instead.
	Position float64
}

// position returns the fit abscissa of the match.
func (m Match) position() float64 {
	if m.Position != 0 {
		return m.Position
	}
	return float64(m.Peak.Index)
}

// MatchByRank pairs detected peaks with reference lines by ascending
// rank: the k-th peak by pixel index matches the k-th line by
// canonical value. When more peaks than lines are detected, the
// lowest-prominence peaks are dropped until the counts agree, ties
// going to the lower pixel index. Fewer peaks than lines is
// [ErrPeakCountMismatch].
func MatchByRank(detected []peaks.Peak, refs []Line) ([]Match, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("%w: empty reference table", ErrPeakCountMismatch)
	}
	if len(detected) < len(refs) {
		return nil, fmt.Errorf("%w: %d peaks for %d reference lines",
			ErrPeakCountMismatch, len(detected), len(refs))
	}

	kept := make([]peaks.Peak, len(detected))
	copy(kept, detected)
	if len(kept) > len(refs) {
		sort.SliceStable(kept, func(i, j int) bool {
			if kept[i].Prominence != kept[j].Prominence {
				return kept[i].Prominence > kept[j].Prominence
			}
			return kept[i].Index < kept[j].Index
		})
		kept = kept[:len(refs)]
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Index < kept[j].Index })

	ordered := make([]Line, len(refs))
	copy(ordered, refs)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Value < ordered[j].Value })

	matches := make([]Match, len(ordered))
	for k := range ordered {
		matches[k] = Match{Peak: kept[k], Line: ordered[k], Position: float64(kept[k].Index)}
	}
	return matches, nil
}
