package core

// Axis selects one component of a Vec3. AxisNone addresses the vector as a
// whole.
type Axis int8

const (
	AxisNone Axis = iota - 1
	AxisX
	AxisY
	AxisZ
)

// Axes lists the addressable components in display order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// String returns the single-letter component name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return ""
	}
}

// Vec3 is a three component float vector used by host physics settings.
type Vec3 struct {
	X, Y, Z float64
}

// Up is the unit vector along +Y.
var Up = Vec3{Y: 1}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Component returns the value of one axis. AxisNone yields zero.
func (v Vec3) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	return 0
}

// Ptr returns a pointer to one component of v, or nil for AxisNone.
func (v *Vec3) Ptr(a Axis) *float64 {
	switch a {
	case AxisX:
		return &v.X
	case AxisY:
		return &v.Y
	case AxisZ:
		return &v.Z
	}
	return nil
}

// LayerMask is a bitset of physics layers.
type LayerMask uint32

// Grow enables the next layer above the current contiguous run.
func (m LayerMask) Grow() LayerMask { return m<<1 | 1 }

// Shrink drops the highest layer of a contiguous run starting at bit 0.
func (m LayerMask) Shrink() LayerMask { return m >> 1 }
