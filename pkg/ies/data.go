package ies

import (
	"math"

	"golang.org/x/exp/slices"
)

// symmetryEpsilon is the single-precision machine epsilon. Horizontal angles
// are compared against it when classifying the lateral symmetry of a web.
const symmetryEpsilon = 0x1p-23

// LightData holds the photometric data of one IES file.
//
// The renderer follows the LM-63 standard rather than the Autodesk
// variant, which fixes lamps, photometric type, ballast and version to 1 and
// wattage to 0. Real files disagree with Autodesk on wattage, so any
// non-negative wattage is accepted.
type LightData struct {
	CountLamps int     // number of lamps, >= 1
	Lumens     float64 // rated lumens per lamp, or -1 for absolute photometry
	Multiplier float64 // factor applied to every candela value

	CountVerticalAngles   int // polar angles in the photometric web
	CountHorizontalAngles int // azimuth angles in the photometric web

	PhotometricType int // 1 (type C), 2 (type B) or 3 (type A); only 1 is rendered
	Unit            int // 1 = feet, 2 = meters

	// Luminous opening
	Width  float64
	Length float64
	Height float64

	Ballast int     // ballast factor, must be 1
	Version int     // ballast-lamp photometric factor, must be 1
	Wattage float64 // input watts

	// VerticalAngles are listed in increasing order. A web limited to the
	// bottom hemisphere runs 0..90, the top hemisphere 90..180, otherwise
	// 0..180.
	VerticalAngles []float64

	// HorizontalAngles are listed in increasing order starting at 0. The
	// last angle selects the lateral symmetry, see Symmetry.
	HorizontalAngles []float64

	// CandelaValues is the table of intensities, one vertical slice per
	// horizontal angle, each slice ordered by vertical angle.
	CandelaValues []float64

	// ExtraData is the header text preceding the numeric block, kept
	// verbatim so the file can be written back.
	ExtraData string
}

// Symmetry is the lateral symmetry class of a photometric web.
type Symmetry int

const (
	SymmetryUnknown  Symmetry = iota // last horizontal angle is not 0, 90, 180 or 360
	SymmetryAxial                    // last horizontal angle 0
	SymmetryQuadrant                 // last horizontal angle 90
	SymmetryPlane                    // last horizontal angle 180
	SymmetryNone                     // last horizontal angle 360, web is complete
)

func (s Symmetry) String() string {
	switch s {
	case SymmetryAxial:
		return "axial"
	case SymmetryQuadrant:
		return "quadrant"
	case SymmetryPlane:
		return "plane"
	case SymmetryNone:
		return "asymmetric"
	default:
		return "unknown"
	}
}

// NewLightData returns an empty record.
func NewLightData() *LightData {
	d := &LightData{}
	d.Clear()
	return d
}

// Clear resets every field to its empty state.
func (d *LightData) Clear() {
	*d = LightData{Wattage: -1}
}

// Clone returns a deep copy of d.
func (d *LightData) Clone() *LightData {
	c := *d
	c.VerticalAngles = slices.Clone(d.VerticalAngles)
	c.HorizontalAngles = slices.Clone(d.HorizontalAngles)
	c.CandelaValues = slices.Clone(d.CandelaValues)
	return &c
}

// IsValid reports whether d holds a renderable photometric web.
func (d *LightData) IsValid() bool {
	valuesCorrect := d.CountLamps >= 1 &&
		(d.Lumens == -1 || d.Lumens > 0) &&
		d.PhotometricType == 1 &&
		(d.Unit == 1 || d.Unit == 2) &&
		d.Ballast == 1 &&
		d.Version == 1 &&
		d.Wattage >= 0
	if !valuesCorrect {
		return false
	}

	if len(d.HorizontalAngles)*len(d.VerticalAngles) != len(d.CandelaValues) {
		return false
	}

	if len(d.HorizontalAngles) != d.CountHorizontalAngles || len(d.VerticalAngles) != d.CountVerticalAngles {
		return false
	}

	if !slices.IsSorted(d.HorizontalAngles) || !slices.IsSorted(d.VerticalAngles) {
		return false
	}

	return d.Symmetry() != SymmetryUnknown
}

// Symmetry classifies the web by its last horizontal angle.
func (d *LightData) Symmetry() Symmetry {
	switch {
	case d.IsAxiallySymmetric():
		return SymmetryAxial
	case d.IsQuadrantSymmetric():
		return SymmetryQuadrant
	case d.IsPlaneSymmetric():
		return SymmetryPlane
	case d.IsAsymmetric():
		return SymmetryNone
	default:
		return SymmetryUnknown
	}
}

// IsAxiallySymmetric reports a distribution that is the same in every
// vertical plane.
func (d *LightData) IsAxiallySymmetric() bool {
	return d.lastHorizontalAngleIs(0)
}

// IsQuadrantSymmetric reports a distribution symmetric in each quadrant.
func (d *LightData) IsQuadrantSymmetric() bool {
	return d.lastHorizontalAngleIs(90)
}

// IsPlaneSymmetric reports a distribution symmetric about a vertical plane.
func (d *LightData) IsPlaneSymmetric() bool {
	return d.lastHorizontalAngleIs(180)
}

// IsAsymmetric reports a complete distribution with no lateral symmetry.
func (d *LightData) IsAsymmetric() bool {
	return d.lastHorizontalAngleIs(360)
}

func (d *LightData) lastHorizontalAngleIs(angle float64) bool {
	if len(d.HorizontalAngles) == 0 {
		return false
	}
	last := d.HorizontalAngles[len(d.HorizontalAngles)-1]
	return math.Abs(last-angle) <= symmetryEpsilon
}

// MaxCandela returns the largest candela value in the table.
func (d *LightData) MaxCandela() float64 {
	if len(d.CandelaValues) == 0 {
		return 0
	}
	return slices.Max(d.CandelaValues)
}

// UpdateRequest describes a change to apply to parsed data.
type UpdateRequest struct {
	Scale float64 // factor for the luminous opening dimensions
}

// DefaultUpdateRequest returns a request that changes nothing.
func DefaultUpdateRequest() UpdateRequest {
	return UpdateRequest{Scale: 1}
}
