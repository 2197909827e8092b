package geometry

import "github.com/veaveberg/qreate/internal/vector"

// ExtractRects covers the filled cells of grid with non-overlapping
// rectangles. Cells are scanned row by row; each unvisited filled cell starts
// a rectangle that grows right as far as the row allows, then down while the
// whole row slice below is filled and unvisited. The result is not a minimal
// cover but it is deterministic.
func ExtractRects(grid [][]bool, moduleSize float64) []Rect {
	if len(grid) == 0 {
		return nil
	}
	rows := len(grid)
	visited := make([][]bool, rows)
	for r := range visited {
		visited[r] = make([]bool, len(grid[r]))
	}
	free := func(r, c int) bool {
		return c < len(grid[r]) && grid[r][c] && !visited[r][c]
	}

	var rects []Rect
	for row := 0; row < rows; row++ {
		for col := 0; col < len(grid[row]); col++ {
			if !free(row, col) {
				continue
			}

			width := 1
			for free(row, col+width) {
				width++
			}

			height := 1
		extend:
			for row+height < rows {
				for c := col; c < col+width; c++ {
					if !free(row+height, c) {
						break extend
					}
				}
				height++
			}

			for r := row; r < row+height; r++ {
				for c := col; c < col+width; c++ {
					visited[r][c] = true
				}
			}

			x0 := vector.Round3(float64(col) * moduleSize)
			y0 := vector.Round3(float64(row) * moduleSize)
			x1 := vector.Round3(float64(col+width) * moduleSize)
			y1 := vector.Round3(float64(row+height) * moduleSize)
			rects = append(rects, Rect{
				X:      x0,
				Y:      y0,
				Width:  vector.Round3(x1 - x0),
				Height: vector.Round3(y1 - y0),
			})
		}
	}
	return rects
}
