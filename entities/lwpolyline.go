package entities

import "github.com/zooyer/dxflite/core"

// LWPolyline 轻量多段线，顶点直接内联在实体里
type LWPolyline struct {
	Polyline
}

func (l *LWPolyline) Kind() Kind { return KindLWPolyline }

func (l *LWPolyline) Parse(r core.Reader) {
	var x float64
	scan(r, func(t core.Tag) {
		if l.parseCommon(t) {
			return
		}
		switch t.Code {
		case 70:
			l.Flags = t.AsInt()
		case 10:
			x = t.AsFloat()
		case 20:
			l.Vertexes = append(l.Vertexes, Vertex{
				BaseEntity: newBase(KindVertex),
				Position:   core.Vector{X: x, Y: t.AsFloat()},
			})
		case 42:
			// bulge 跟在 10/20 之后，属于最近的顶点
			if n := len(l.Vertexes); n > 0 {
				l.Vertexes[n-1].Bulge = t.AsFloat()
			}
		}
	})
	l.finalize()
}
