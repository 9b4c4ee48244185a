package entities

import "github.com/zooyer/dxflite/core"

type Text struct {
	BaseEntity
	Value    string // 原样保留，不做清洗
	Position core.Vector
	Height   float64
	Rotation float64
}

func (x *Text) Kind() Kind { return KindText }

func (x *Text) Parse(r core.Reader) {
	scan(r, func(t core.Tag) {
		if x.parseCommon(t) {
			return
		}
		switch t.Code {
		case 1:
			x.Value = t.Value
		case 10:
			x.Position.X = t.AsFloat()
		case 20:
			x.Position.Y = t.AsFloat()
		case 40:
			x.Height = t.AsFloat()
		case 50:
			x.Rotation = t.AsFloat()
		}
	})
	x.finalize()
}

func (x *Text) BBox() core.BBox {
	// 简化处理：文字暂时以插入点作为包围盒
	return core.PointBBox(x.Position)
}
