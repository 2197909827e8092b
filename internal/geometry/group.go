package geometry

import "math"

// connectEps absorbs the 3-decimal rounding of rectangle coordinates.
const connectEps = 1e-4

// Group is a set of rectangles that are transitively connected.
type Group []Rect

// AreConnected reports whether a and b share an edge segment of positive
// length or overlap with positive area. Touching at a single corner does not
// count.
func AreConnected(a, b Rect) bool {
	overlapX := a.X < b.Right()-connectEps && a.Right() > b.X+connectEps
	overlapY := a.Y < b.Bottom()-connectEps && a.Bottom() > b.Y+connectEps

	touchX := math.Abs(a.Right()-b.X) < connectEps || math.Abs(b.Right()-a.X) < connectEps
	if touchX && overlapY {
		return true
	}
	touchY := math.Abs(a.Bottom()-b.Y) < connectEps || math.Abs(b.Bottom()-a.Y) < connectEps
	if touchY && overlapX {
		return true
	}
	return overlapX && overlapY
}

// GroupConnected partitions rects into connected groups with a breadth-first
// search. Groups appear in the order of their first rectangle; members in
// discovery order.
func GroupConnected(rects []Rect) []Group {
	var groups []Group
	visited := make([]bool, len(rects))
	for i := range rects {
		if visited[i] {
			continue
		}
		visited[i] = true
		group := Group{rects[i]}
		queue := []int{i}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for j := range rects {
				if visited[j] || !AreConnected(rects[cur], rects[j]) {
					continue
				}
				visited[j] = true
				group = append(group, rects[j])
				queue = append(queue, j)
			}
		}
		groups = append(groups, group)
	}
	return groups
}
