package entities

import (
	"math"

	"github.com/zooyer/dxflite/core"
)

type Line struct {
	BaseEntity
	Start, End core.Vector
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Parse(r core.Reader) {
	scan(r, func(t core.Tag) {
		if l.parseCommon(t) {
			return
		}
		switch t.Code {
		case 10:
			l.Start.X = t.AsFloat()
		case 20:
			l.Start.Y = t.AsFloat()
		case 11:
			l.End.X = t.AsFloat()
		case 21:
			l.End.Y = t.AsFloat()
		}
	})
	l.finalize()
}

func (l *Line) Length() float64 {
	return l.Start.Distance(l.End)
}

func (l *Line) BBox() core.BBox {
	return core.BBox{
		Min: core.Vector{X: math.Min(l.Start.X, l.End.X), Y: math.Min(l.Start.Y, l.End.Y)},
		Max: core.Vector{X: math.Max(l.Start.X, l.End.X), Y: math.Max(l.Start.Y, l.End.Y)},
	}
}
