package raster

// Connectivity selects neighbor adjacency: orthogonal only (Conn4) or
// including diagonals (Conn8). Region-growing operations take it as an
// explicit parameter; there is no implicit default.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = 4
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = 8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Valid reports whether c is one of the two supported connectivities.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// Offsets returns the (dx, dy) neighbor offsets for c. The returned slice
// is shared and must not be modified.
// Complexity: O(1).
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}
