package entities

import "github.com/zooyer/dxflite/core"

// Vertex 多段线顶点。
// Bulge 为当前顶点到下一顶点这段圆弧包角四分之一的正切，0 表示直线段，负数表示顺时针。
type Vertex struct {
	BaseEntity
	Position core.Vector
	Bulge    float64
}

func (v *Vertex) Kind() Kind { return KindVertex }

func (v *Vertex) Parse(r core.Reader) {
	scan(r, func(t core.Tag) {
		if v.parseCommon(t) {
			return
		}
		switch t.Code {
		case 10:
			v.Position.X = t.AsFloat()
		case 20:
			v.Position.Y = t.AsFloat()
		case 42:
			v.Bulge = t.AsFloat()
		}
	})
	v.finalize()
}

func (v *Vertex) BBox() core.BBox {
	return core.PointBBox(v.Position)
}
