package lightshape

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/chewxy/sexp"
)

// Bounds returns the axis aligned box enclosing every point. Both corners are
// zero when there are no points.
func Bounds(plines Polylines) (lo, hi Point) {
	first := true
	for _, pline := range plines {
		for _, p := range pline {
			if first {
				lo, hi = p, p
				first = false
				continue
			}
			for axis := 0; axis < 3; axis++ {
				lo[axis] = min(lo[axis], p[axis])
				hi[axis] = max(hi[axis], p[axis])
			}
		}
	}
	return lo, hi
}

type jsonShape struct {
	Polylines [][][3]float32 `json:"polylines"`
}

// WriteJSON writes plines as {"polylines": [[[x, y, z], ...], ...]}.
func WriteJSON(w io.Writer, plines Polylines) error {
	shape := jsonShape{Polylines: make([][][3]float32, len(plines))}
	for i, pline := range plines {
		pts := make([][3]float32, len(pline))
		for j, p := range pline {
			pts[j] = [3]float32(p)
		}
		shape.Polylines[i] = pts
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(shape)
}

// WriteSexp writes plines as one S-expression:
//
//	(web (polyline (pt x y z) (pt x y z) ...) ...)
func WriteSexp(w io.Writer, plines Polylines) error {
	_, err := fmt.Fprintln(w, sexpTree(plines))
	return err
}

func sexpTree(plines Polylines) sexp.List {
	web := make(sexp.List, 0, len(plines)+1)
	web = append(web, sexp.Symbol("web"))
	for _, pline := range plines {
		list := make(sexp.List, 0, len(pline)+1)
		list = append(list, sexp.Symbol("polyline"))
		for _, p := range pline {
			list = append(list, sexp.List{
				sexp.Symbol("pt"),
				coord(p[0]),
				coord(p[1]),
				coord(p[2]),
			})
		}
		web = append(web, list)
	}
	return web
}

func coord(v float32) sexp.Symbol {
	return sexp.Symbol(strconv.FormatFloat(float64(v), 'g', -1, 32))
}
