package utils

import (
	"math"

	"github.com/zooyer/dxflite/core"
	"github.com/zooyer/dxflite/entities"
)

// Bounds 点集的包围盒，忽略 NaN 坐标，没有有效点时 ok 为 false
func Bounds(points []core.Vector) (box core.BBox, ok bool) {
	miX, miY := math.MaxFloat64, math.MaxFloat64
	maX, maY := -math.MaxFloat64, -math.MaxFloat64

	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		miX = math.Min(miX, p.X)
		miY = math.Min(miY, p.Y)
		maX = math.Max(maX, p.X)
		maY = math.Max(maY, p.Y)
		ok = true
	}
	if !ok {
		return core.BBox{}, false
	}

	return core.BBox{
		Min: core.Vector{X: miX, Y: miY},
		Max: core.Vector{X: maX, Y: maY},
	}, true
}

// EntityBBox 多段线按离散后的路径计算（包含圆弧段外凸部分），其余实体直接使用自身包围盒
func EntityBBox(entity entities.Entity, precision int) core.BBox {
	var path []core.Vector
	switch e := entity.(type) {
	case *entities.Polyline:
		path = PolylinePath(e, precision)
	case *entities.LWPolyline:
		path = PolylinePath(&e.Polyline, precision)
	default:
		return entity.BBox()
	}

	if box, ok := Bounds(path); ok {
		return box
	}
	return entity.BBox()
}

// DocumentBBox 所有实体包围盒的并集
func DocumentBBox(list []entities.Entity, precision int) (box core.BBox, ok bool) {
	for _, e := range list {
		b := EntityBBox(e, precision)
		if !ok {
			box, ok = b, true
			continue
		}
		box = box.Union(b)
	}
	return
}
