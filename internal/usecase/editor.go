package usecase

import (
	"fmt"
	"sync"

	"adsniper/internal/domain"
	"adsniper/pkg/logger"
	"adsniper/pkg/metrics"
)

// Editor drawing mode
type EditorMode string

const (
	ModeIdle    EditorMode = "IDLE"
	ModeDrawing EditorMode = "DRAWING"
)

// GeometryEditor owns the interactive polygon capture state: the drawing
// mode, the in-progress draft vertex list, and the committed polygon list.
// Invalid interactions (adding points while idle, committing a short draft)
// are defined no-ops, never errors — they are normal user sequencing.
type GeometryEditor struct {
	mu       sync.Mutex
	mode     EditorMode
	draft    []domain.Point
	polygons []domain.Polygon
	selected string
	onChange func([]domain.Polygon)
	host     domain.MapHost
	padding  int
	ids      domain.IDSource
	logger   *logger.Logger
	metrics  *metrics.Metrics
}

// creates a new geometry editor. host may be nil when no map surface is
// attached; bounds fitting is then skipped.
func NewGeometryEditor(
	host domain.MapHost,
	padding int,
	ids domain.IDSource,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *GeometryEditor {
	return &GeometryEditor{
		mode:    ModeIdle,
		host:    host,
		padding: padding,
		ids:     ids,
		logger:  logger,
		metrics: metrics,
	}
}

// SetOnChange registers the single listener that receives the full committed
// list after every list-mutating operation. The callback runs with the
// editor locked and must not call back into it.
func (e *GeometryEditor) SetOnChange(fn func([]domain.Polygon)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = fn
}

// StartDrawing enters drawing mode with an empty draft and clears the
// current selection. No-op when already drawing.
func (e *GeometryEditor) StartDrawing() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode == ModeDrawing {
		e.metrics.RecordEditorOp("start", "noop")
		return
	}

	e.mode = ModeDrawing
	e.draft = nil
	e.selected = ""
	e.metrics.RecordEditorOp("start", "ok")
	e.logger.Debug("Entered drawing mode")
}

// AddPoint appends a vertex to the draft. No effect while idle.
func (e *GeometryEditor) AddPoint(p domain.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != ModeDrawing {
		e.metrics.RecordEditorOp("add_point", "noop")
		return
	}

	e.draft = append(e.draft, p)
	e.metrics.RecordEditorOp("add_point", "ok")
	e.logger.WithFields(map[string]any{
		"lat":          p.Lat,
		"lng":          p.Lng,
		"draft_points": len(e.draft),
	}).Debug("Added draft point")
}

// Commit converts the draft into a committed polygon: id from the id source,
// name auto-numbered, default color. A draft with fewer than three vertices
// is not committable and the editor stays in drawing mode. Returns the new
// polygon and whether a commit happened.
func (e *GeometryEditor) Commit() (domain.Polygon, bool) {
	e.mu.Lock()

	if e.mode != ModeDrawing || len(e.draft) < domain.MinPolygonVertices {
		e.metrics.RecordEditorOp("commit", "noop")
		e.mu.Unlock()
		return domain.Polygon{}, false
	}

	polygon := domain.Polygon{
		ID:       e.ids.NextID(),
		Vertices: append([]domain.Point(nil), e.draft...),
		Name:     fmt.Sprintf("Geofence %d", len(e.polygons)+1),
		Color:    domain.DefaultPolygonColor,
	}
	e.polygons = append(e.polygons, polygon)
	e.draft = nil
	e.mode = ModeIdle

	e.metrics.RecordEditorOp("commit", "ok")
	e.metrics.RecordPolygonCommit(len(polygon.Vertices))
	e.logger.WithFields(map[string]any{
		"polygon_id": polygon.ID,
		"name":       polygon.Name,
		"vertices":   len(polygon.Vertices),
	}).Info("Committed polygon")

	e.emitLocked()
	e.mu.Unlock()
	return polygon, true
}

// Cancel discards the draft and returns to idle, regardless of draft size.
func (e *GeometryEditor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.draft = nil
	e.mode = ModeIdle
	e.metrics.RecordEditorOp("cancel", "ok")
	e.logger.Debug("Cancelled drawing")
}

// DeletePolygon removes the committed polygon with the given id. Unknown ids
// leave the list unchanged and emit nothing.
func (e *GeometryEditor) DeletePolygon(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i, p := range e.polygons {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.metrics.RecordEditorOp("delete", "noop")
		return
	}

	e.polygons = append(e.polygons[:idx], e.polygons[idx+1:]...)
	if e.selected == id {
		e.selected = ""
	}
	e.metrics.RecordEditorOp("delete", "ok")
	e.logger.WithField("polygon_id", id).Info("Deleted polygon")

	e.emitLocked()
}

// ClearAll empties the committed list, clears the selection and any draft,
// and forces the editor back to idle.
func (e *GeometryEditor) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.polygons = nil
	e.draft = nil
	e.selected = ""
	e.mode = ModeIdle
	e.metrics.RecordEditorOp("clear", "ok")
	e.logger.Info("Cleared all polygons")

	e.emitLocked()
}

// Select toggles the selected polygon id. Selecting the already-selected id
// (or an empty id) deselects.
func (e *GeometryEditor) Select(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id == "" || e.selected == id {
		e.selected = ""
	} else {
		e.selected = id
	}
	e.metrics.RecordEditorOp("select", "ok")
}

// Mode returns the current drawing mode.
func (e *GeometryEditor) Mode() EditorMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Draft returns a copy of the in-progress vertex list.
func (e *GeometryEditor) Draft() []domain.Point {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.Point(nil), e.draft...)
}

// Polygons returns a copy of the committed list.
func (e *GeometryEditor) Polygons() []domain.Polygon {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyPolygons(e.polygons)
}

// Selected returns the selected polygon id, empty when none.
func (e *GeometryEditor) Selected() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// Drafts returns the committed list in its submission shape, ready to hand
// to campaign creation.
func (e *GeometryEditor) Drafts() []domain.GeofenceDraft {
	e.mu.Lock()
	defer e.mu.Unlock()

	drafts := make([]domain.GeofenceDraft, len(e.polygons))
	for i, p := range e.polygons {
		drafts[i] = domain.DraftFromPolygon(p)
	}
	return drafts
}

// emitLocked notifies the listener with a copy of the committed list and
// asks the map host to fit the viewport. Must hold e.mu. The bounds fit is
// skipped on an empty list.
func (e *GeometryEditor) emitLocked() {
	if e.onChange != nil {
		e.onChange(copyPolygons(e.polygons))
	}
	e.fitBoundsLocked()
}

func (e *GeometryEditor) fitBoundsLocked() {
	if e.host == nil {
		return
	}

	var vertices []domain.Point
	for _, p := range e.polygons {
		vertices = append(vertices, p.Vertices...)
	}
	bounds, ok := domain.BoundsOf(vertices)
	if !ok {
		return
	}

	e.host.FlyToBounds(bounds, e.padding)
	e.metrics.RecordBoundsFit()
	e.logger.WithFields(map[string]any{
		"south_west": bounds.SouthWest,
		"north_east": bounds.NorthEast,
	}).Debug("Requested viewport bounds fit")
}

func copyPolygons(polygons []domain.Polygon) []domain.Polygon {
	out := make([]domain.Polygon, len(polygons))
	for i, p := range polygons {
		out[i] = p
		out[i].Vertices = append([]domain.Point(nil), p.Vertices...)
	}
	return out
}
