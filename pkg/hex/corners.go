package hex

// NeighborCorner names a corner of an adjacent cell.
type NeighborCorner struct {
	Neighbor int // edge index toward the adjacent cell
	Corner   int // corner index within the adjacent cell
}

// CornerNeighbors maps each corner of a cell to the two adjacent cells sharing
// that corner, and the index of the same point within each of them.
// Corner i is shared with neighbor i+1 (its corner i+4) and neighbor i (its corner i+2).
var CornerNeighbors = [6][2]NeighborCorner{
	{{Neighbor: 1, Corner: 4}, {Neighbor: 0, Corner: 2}},
	{{Neighbor: 2, Corner: 5}, {Neighbor: 1, Corner: 3}},
	{{Neighbor: 3, Corner: 0}, {Neighbor: 2, Corner: 4}},
	{{Neighbor: 4, Corner: 1}, {Neighbor: 3, Corner: 5}},
	{{Neighbor: 5, Corner: 2}, {Neighbor: 4, Corner: 0}},
	{{Neighbor: 0, Corner: 3}, {Neighbor: 5, Corner: 1}},
}
