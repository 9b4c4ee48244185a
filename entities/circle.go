package entities

import "github.com/zooyer/dxflite/core"

type Circle struct {
	BaseEntity
	Center core.Vector
	Radius float64
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Parse(r core.Reader) {
	scan(r, func(t core.Tag) {
		if c.parseCommon(t) {
			return
		}
		switch t.Code {
		case 10:
			c.Center.X = t.AsFloat()
		case 20:
			c.Center.Y = t.AsFloat()
		case 40:
			c.Radius = t.AsFloat()
		}
	})
	c.finalize()
}

func (c *Circle) BBox() core.BBox {
	d := core.Vector{X: c.Radius, Y: c.Radius}
	return core.BBox{Min: c.Center.Sub(d), Max: c.Center.Add(d)}
}
