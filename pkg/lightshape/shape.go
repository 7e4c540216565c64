// Package lightshape turns IES photometric data into polylines that outline
// the light distribution, for drawing a preview of the light in a viewport.
package lightshape

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/OpenTraceIES/pkg/ies"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointsPerPolyline is the longest polyline the host application accepts.
const MaxPointsPerPolyline = 32

// Point is a position in light space, z pointing along the 0° vertical angle.
type Point = mgl32.Vec3

// Polyline is a chain of connected points.
type Polyline []Point

// Polylines is the full light representation.
type Polylines []Polyline

// PointCount returns the total number of points over all polylines.
func (ps Polylines) PointCount() int {
	n := 0
	for _, pl := range ps {
		n += len(pl)
	}
	return n
}

// Params configures Calculate.
type Params struct {
	Data *ies.LightData

	// MaxPointsPerPLine is kept for callers that size their buffers from
	// it; chunking always uses MaxPointsPerPolyline.
	MaxPointsPerPLine int

	// WebScale is applied uniformly to every point.
	WebScale float32
}

// ErrorCode is the outcome of Calculate.
type ErrorCode int

const (
	Success     ErrorCode = iota
	InvalidData           // input fails ies.LightData.IsValid
	NoEdges               // nothing to draw
)

func (c ErrorCode) String() string {
	switch c {
	case Success:
		return "success"
	case InvalidData:
		return "invalid data"
	case NoEdges:
		return "no edges"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

func (c ErrorCode) Error() string {
	return "lightshape: " + c.String()
}

// Calculate builds polylines outlining the photometric web of params.Data:
// one slice per horizontal angle, mirrored to a full turn according to the
// web's symmetry.
func Calculate(params Params) (Polylines, error) {
	data := params.Data
	if data == nil || !data.IsValid() {
		return nil, InvalidData
	}

	points := webPoints(data, params.WebScale)
	plines := chunkRows(points, len(data.VerticalAngles))

	// symmetric webs only store part of the turn
	plines = mirror(plines, data.Symmetry())

	if len(plines) == 0 {
		return nil, NoEdges
	}
	return plines, nil
}

// webPoints converts the candela table to points, in table order.
func webPoints(data *ies.LightData, scale float32) []Point {
	points := make([]Point, 0, len(data.CandelaValues))
	i := 0
	for _, horizontal := range data.HorizontalAngles {
		for _, vertical := range data.VerticalAngles {
			p := PolarToXYZ(vertical, horizontal, data.CandelaValues[i])
			points = append(points, p.Mul(scale))
			i++
		}
	}
	return points
}

// PolarToXYZ converts a candela value at the given vertical (polar, theta)
// and horizontal (azimuth, phi) angles, in degrees, to a point.
func PolarToXYZ(vertical, horizontal, dist float64) Point {
	theta := vertical * math.Pi / 180
	phi := horizontal * math.Pi / 180

	return Point{
		float32(dist * math.Sin(theta) * math.Cos(phi)),
		float32(dist * math.Sin(theta) * math.Sin(phi)),
		float32(dist * math.Cos(theta)),
	}
}

// chunkRows splits points into rows of rowLength and each row into
// polylines of at most MaxPointsPerPolyline points. A continuation polyline
// starts at the last point of the one before it so the row stays connected.
func chunkRows(points []Point, rowLength int) Polylines {
	if rowLength <= 0 {
		return nil
	}

	var plines Polylines
	for start := 0; start < len(points); start += rowLength {
		row := points[start:min(start+rowLength, len(points))]

		pline := make(Polyline, 0, MaxPointsPerPolyline)
		for i := 0; i < len(row); i++ {
			pline = append(pline, row[i])
			if len(pline) == MaxPointsPerPolyline {
				plines = append(plines, pline)
				pline = make(Polyline, 0, MaxPointsPerPolyline)
				i--
			}
		}
		if len(pline) > 0 {
			plines = append(plines, pline)
		}
	}
	return plines
}
