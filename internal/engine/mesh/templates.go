package mesh

// HexagonTriangles covers a whole cell: a quad strip between the exterior and
// interior rings, then a fan across the interior hexagon. Counter-clockwise
// seen from +Z.
var HexagonTriangles = []int{
	0, 1, 7, 0, 7, 6,
	1, 2, 8, 1, 8, 7,
	2, 3, 9, 2, 9, 8,
	3, 4, 10, 3, 10, 9,
	4, 5, 11, 4, 11, 10,
	5, 0, 6, 5, 6, 11,
	6, 7, 8, 6, 8, 9,
	6, 9, 10, 6, 10, 11,
}

// BorderTriangles covers only the ring between the exterior and interior corners.
var BorderTriangles = HexagonTriangles[:36]
