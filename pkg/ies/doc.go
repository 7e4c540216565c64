// Package ies reads and writes IES (IESNA LM-63) photometric data files.
//
// An IES file describes the luminous intensity of a luminaire as a table of
// candela values indexed by vertical (polar) and horizontal (azimuth)
// angles. The file starts with free-form header text, ends the header with
// a TILT line, and continues with a whitespace separated numeric block.
//
// # Usage
//
//	p := ies.NewProcessor()
//	data := ies.NewLightData()
//	if err := p.Parse(data, "downlight.ies"); err != nil {
//		switch ies.Code(err) {
//		case ies.NotSupported:
//			// TILT other than NONE, or photometric type B/A
//		default:
//			return err
//		}
//	}
//
//	p.Update(data, ies.UpdateRequest{Scale: 0.3048}) // feet to meters
//	text := p.ToString(data)
//
// # Parsing
//
// The numeric block is read by a linear state machine, one value per
// token: the fixed header fields, then the vertical angles, the horizontal
// angles and the candela table. Line breaks in the numeric block carry no
// meaning. Numbers are always read with '.' as the decimal separator; no
// process-wide locale is consulted or changed, so parses may run
// concurrently.
//
// Only TILT=NONE files with photometric type C (1) are accepted, which is
// what the renderer supports.
//
// # Symmetry
//
// The last horizontal angle tells how much of the web was measured:
//   - 0: axially symmetric, one vertical slice describes every plane
//   - 90: symmetric in each quadrant
//   - 180: symmetric about a vertical plane
//   - 360: no lateral symmetry
package ies
