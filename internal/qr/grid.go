package qr

// FinderSize is the side length, in modules, of a finder pattern.
const FinderSize = 7

// ModuleGrid is a square symbol matrix indexed [row][col]; true is dark.
type ModuleGrid [][]bool

// Size returns the number of modules per side.
func (g ModuleGrid) Size() int {
	return len(g)
}

// IsInFinderPattern reports whether (row, col) lies in one of the three
// corner finder patterns of an n×n symbol.
func IsInFinderPattern(row, col, n int) bool {
	switch {
	case row < FinderSize && col < FinderSize:
		return true
	case row < FinderSize && col >= n-FinderSize:
		return true
	case row >= n-FinderSize && col < FinderSize:
		return true
	}
	return false
}

// MaskFinderPatterns returns a copy of g with the finder pattern cells
// cleared. g itself is left untouched.
func MaskFinderPatterns(g ModuleGrid) ModuleGrid {
	n := g.Size()
	out := make(ModuleGrid, n)
	for row := range g {
		out[row] = make([]bool, len(g[row]))
		for col, dark := range g[row] {
			out[row][col] = dark && !IsInFinderPattern(row, col, n)
		}
	}
	return out
}
