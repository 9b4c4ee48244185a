package entities

import "github.com/zooyer/dxflite/core"

type Point struct {
	BaseEntity
	Position core.Vector
}

func (p *Point) Kind() Kind { return KindPoint }

func (p *Point) Parse(r core.Reader) {
	scan(r, func(t core.Tag) {
		if p.parseCommon(t) {
			return
		}
		switch t.Code {
		case 10:
			p.Position.X = t.AsFloat()
		case 20:
			p.Position.Y = t.AsFloat()
		}
	})
	p.finalize()
}

func (p *Point) BBox() core.BBox {
	return core.PointBBox(p.Position)
}
