// Package peaks locates local intensity maxima in 1-D spectral traces.
//
// Peaks are ranked by topographic prominence, the height of a peak above
// the highest of the two minima separating it from taller terrain on
// either side. [Find] returns all peaks clearing a prominence floor,
// [FindNMostProminent] selects a fixed number of peaks for matching
// against a reference line table, and [Refine]/[RefineAll] estimate
// sub-sample peak positions by parabolic interpolation.
package peaks
