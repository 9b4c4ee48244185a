package entities

import (
	"math"

	"github.com/zooyer/dxflite/core"
)

// Arc 圆弧，角度为度数，从 StartAngle 逆时针到 EndAngle
type Arc struct {
	BaseEntity
	Center     core.Vector
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (a *Arc) Kind() Kind { return KindArc }

func (a *Arc) Parse(r core.Reader) {
	scan(r, func(t core.Tag) {
		if a.parseCommon(t) {
			return
		}
		switch t.Code {
		case 10:
			a.Center.X = t.AsFloat()
		case 20:
			a.Center.Y = t.AsFloat()
		case 40:
			a.Radius = t.AsFloat()
		case 50:
			a.StartAngle = t.AsFloat()
		case 51:
			a.EndAngle = t.AsFloat()
		}
	})
	a.finalize()
}

// Sweep 圆弧扫过的角度（度），跨越 0° 时按逆时针绕回计算
func (a *Arc) Sweep() float64 {
	if a.StartAngle > a.EndAngle {
		return a.EndAngle + 360 - a.StartAngle
	}
	return a.EndAngle - a.StartAngle
}

func (a *Arc) pointAt(deg float64) core.Vector {
	rad := deg * math.Pi / 180.0
	return core.Vector{
		X: a.Center.X + a.Radius*math.Cos(rad),
		Y: a.Center.Y + a.Radius*math.Sin(rad),
	}
}

// BBox 两个端点加上扫过的象限点
func (a *Arc) BBox() core.BBox {
	box := core.PointBBox(a.pointAt(a.StartAngle)).Extend(a.pointAt(a.StartAngle + a.Sweep()))

	start := math.Mod(a.StartAngle, 360)
	if start < 0 {
		start += 360
	}
	for q := 0.0; q < 720; q += 90 {
		if q > start && q < start+a.Sweep() {
			box = box.Extend(a.pointAt(q))
		}
	}
	return box
}
