package domain

import "math"

// A map vertex in geographic degrees, captured in (lat, lng) order.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Single-ring GeoJSON-style polygon geometry. Coordinates use (lng, lat)
// axis order, exterior ring only, not explicitly closed.
type Geometry struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

const GeometryTypePolygon = "Polygon"

// Rectangular region covering a set of vertices
type Bounds struct {
	SouthWest Point `json:"south_west"`
	NorthEast Point `json:"north_east"`
}

// GeometryFromVertices wraps an ordered vertex list as a single-ring polygon
// geometry, reversing each vertex to (lng, lat) order.
func GeometryFromVertices(vertices []Point) Geometry {
	ring := make([][]float64, len(vertices))
	for i, v := range vertices {
		ring[i] = []float64{v.Lng, v.Lat}
	}
	return Geometry{
		Type:        GeometryTypePolygon,
		Coordinates: [][][]float64{ring},
	}
}

// VerticesFromGeometry inverts GeometryFromVertices: the exterior ring is
// read back into (lat, lng) vertices in ring order. Inner rings and malformed
// coordinate pairs are ignored.
func VerticesFromGeometry(g Geometry) []Point {
	if len(g.Coordinates) == 0 {
		return nil
	}
	ring := g.Coordinates[0]
	vertices := make([]Point, 0, len(ring))
	for _, coord := range ring {
		if len(coord) < 2 {
			continue
		}
		vertices = append(vertices, Point{Lat: coord[1], Lng: coord[0]})
	}
	return vertices
}

// Ring returns the exterior ring of the geometry, or nil when absent.
func (g Geometry) Ring() [][]float64 {
	if len(g.Coordinates) == 0 {
		return nil
	}
	return g.Coordinates[0]
}

// BoundsOf computes the bounding region of a set of vertices. The second
// return value is false when the set is empty, in which case callers must
// not issue any viewport command.
func BoundsOf(vertices []Point) (Bounds, bool) {
	if len(vertices) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		SouthWest: Point{Lat: math.MaxFloat64, Lng: math.MaxFloat64},
		NorthEast: Point{Lat: -math.MaxFloat64, Lng: -math.MaxFloat64},
	}
	for _, v := range vertices {
		if v.Lat < b.SouthWest.Lat {
			b.SouthWest.Lat = v.Lat
		}
		if v.Lng < b.SouthWest.Lng {
			b.SouthWest.Lng = v.Lng
		}
		if v.Lat > b.NorthEast.Lat {
			b.NorthEast.Lat = v.Lat
		}
		if v.Lng > b.NorthEast.Lng {
			b.NorthEast.Lng = v.Lng
		}
	}
	return b, true
}
