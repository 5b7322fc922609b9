package holddrag

// HitTester resolves a screen point to the innermost drop target containing
// it. The engine treats it as an opaque query.
type HitTester interface {
	HitTest(p Vec2) (MealID, bool)
}

// HitTesterFunc adapts a plain function to HitTester.
type HitTesterFunc func(p Vec2) (MealID, bool)

// HitTest calls f(p).
func (f HitTesterFunc) HitTest(p Vec2) (MealID, bool) { return f(p) }

// HitShape is a region that can answer point containment.
type HitShape interface {
	Contains(x, y float64) bool
}

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in screen coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in screen coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// The point must be on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// anyContains reports whether p lies in any of shapes.
func anyContains(shapes []HitShape, p Vec2) bool {
	for _, s := range shapes {
		if s != nil && s.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}

// --- Drop zones ---

type dropZone struct {
	id    uint32
	meal  MealID
	shape HitShape
	depth int
	order uint32
}

// DropZones is a HitTester backed by a flat list of registered meal regions.
// Nested regions carry a greater Depth; HitTest returns the deepest region
// containing the point, preferring the most recently registered on ties.
type DropZones struct {
	zones  []dropZone
	nextID uint32
}

// NewDropZones creates an empty zone set.
func NewDropZones() *DropZones {
	return &DropZones{}
}

// ZoneHandle allows updating or removing a registered zone.
type ZoneHandle struct {
	id  uint32
	set *DropZones
}

// Register adds a drop target region for meal at the given nesting depth.
func (z *DropZones) Register(meal MealID, shape HitShape, depth int) ZoneHandle {
	z.nextID++
	z.zones = append(z.zones, dropZone{
		id:    z.nextID,
		meal:  meal,
		shape: shape,
		depth: depth,
		order: z.nextID,
	})
	return ZoneHandle{id: z.nextID, set: z}
}

// Remove unregisters the zone. Removing twice is a no-op.
func (h ZoneHandle) Remove() {
	if h.set == nil {
		return
	}
	s := h.set.zones
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dropZone{}
			h.set.zones = s[:len(s)-1]
			return
		}
	}
}

// SetShape replaces the zone's region, e.g. after a layout change.
func (h ZoneHandle) SetShape(shape HitShape) {
	if h.set == nil {
		return
	}
	for i := range h.set.zones {
		if h.set.zones[i].id == h.id {
			h.set.zones[i].shape = shape
			return
		}
	}
}

// Len returns the number of registered zones.
func (z *DropZones) Len() int {
	return len(z.zones)
}

// HitTest returns the innermost zone containing p.
func (z *DropZones) HitTest(p Vec2) (MealID, bool) {
	best := -1
	for i := range z.zones {
		zn := &z.zones[i]
		if zn.shape == nil || !zn.shape.Contains(p.X, p.Y) {
			continue
		}
		if best < 0 || zn.depth > z.zones[best].depth ||
			(zn.depth == z.zones[best].depth && zn.order > z.zones[best].order) {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return z.zones[best].meal, true
}
