package domain

// Minimum vertex count for a committable polygon
const MinPolygonVertices = 3

// Default display color for freshly committed polygons
const DefaultPolygonColor = "#0ea5e9"

// Polygon is a committed target area on the map surface. Vertices keep the
// drawing order they were captured in.
type Polygon struct {
	ID       string  `json:"id"`
	Vertices []Point `json:"vertices"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
}

// Geometry converts the polygon into its submission shape: a single-ring
// (lng, lat) geometry.
func (p Polygon) Geometry() Geometry {
	return GeometryFromVertices(p.Vertices)
}

// GeofenceDraft is the shape a polygon takes when handed off for campaign
// creation. Per-zone settings are optional and default to zero.
type GeofenceDraft struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Boundary            Geometry `json:"boundary"`
	PriorityWeight      *int     `json:"priority_weight,omitempty"`
	BudgetCapMajorUnits *float64 `json:"budget_cap,omitempty"`
	ClickQuorum         *int     `json:"click_quorum,omitempty"`
}

// DraftFromPolygon converts a committed polygon into a geofence draft with
// unset per-zone settings.
func DraftFromPolygon(p Polygon) GeofenceDraft {
	return GeofenceDraft{
		ID:       p.ID,
		Name:     p.Name,
		Boundary: p.Geometry(),
	}
}
