package grid

const (
	// TileSize is the world-space edge length of one cell.
	TileSize = 2.0
	// FloorHeight is the world-space vertical distance between floors.
	FloorHeight = 1.0
)

// Vec3 is a world-space position.
type Vec3 struct {
	X, Y, Z float64
}

// WorldPosition converts the cell to world space using the bottom-center
// convention: X/Z at the center of the cell footprint, Y at the bottom face
// of the cell's floor. The conversion is pure; the same cell always maps to
// the same position.
func (c Cell) WorldPosition() Vec3 {
	return Vec3{
		X: float64(c.Col)*TileSize + TileSize/2,
		Y: float64(c.Floor) * FloorHeight,
		Z: float64(c.Row)*TileSize + TileSize/2,
	}
}
