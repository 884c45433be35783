package geo

// DefaultTileSize is the edge length of one zone tile in world units.
const DefaultTileSize = 16.0

// parallelEpsilon is the direction component below which a segment is
// treated as parallel to an axis.
const parallelEpsilon = 1e-9
