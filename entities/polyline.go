package entities

import (
	"math"

	"github.com/zooyer/dxflite/core"
)

// Polyline 二维多段线，Vertexes 的顺序决定路径
type Polyline struct {
	BaseEntity
	Flags    int
	Closed   bool
	Vertexes []Vertex
}

func (p *Polyline) Kind() Kind { return KindPolyline }

func (p *Polyline) Parse(r core.Reader) {
	p.parseHeader(r)

	// 核心逻辑：在当前流中抓取 VERTEX 直到 SEQEND
	for {
		tag, ok := r.Next()
		if !ok {
			break
		}
		if tag.Is("SEQEND") {
			break // SEQEND 自身的标签交给调度器丢弃
		}
		if !tag.Is("VERTEX") {
			// 缺少 SEQEND，把对象标记交还给调度器
			r.Unread(tag)
			break
		}
		v := Vertex{BaseEntity: newBase(KindVertex)}
		v.LayerName = p.LayerName
		v.Parse(r)
		p.Vertexes = append(p.Vertexes, v)
	}
	p.finalize()
}

func (p *Polyline) parseHeader(r core.Reader) {
	scan(r, func(t core.Tag) {
		if p.parseCommon(t) {
			return
		}
		if t.Code == 70 {
			p.Flags = t.AsInt()
		}
	})
}

func (p *Polyline) finalize() {
	p.BaseEntity.finalize()
	p.Closed = p.Flags&1 == 1
	for i := range p.Vertexes {
		if p.Vertexes[i].LayerName == "" {
			p.Vertexes[i].LayerName = p.LayerName
		}
	}
}

// Points 顶点坐标（不展开 bulge）
func (p *Polyline) Points() []core.Vector {
	points := make([]core.Vector, len(p.Vertexes))
	for i, v := range p.Vertexes {
		points[i] = v.Position
	}
	return points
}

// HasBulge 是否存在圆弧段
func (p *Polyline) HasBulge() bool {
	for _, v := range p.Vertexes {
		if v.Bulge != 0 {
			return true
		}
	}
	return false
}

// BBox 只统计顶点，圆弧段的外凸部分需要先离散化再计算
func (p *Polyline) BBox() core.BBox {
	if len(p.Vertexes) == 0 {
		return core.BBox{}
	}
	miX, miY, maX, maY := p.Vertexes[0].Position.X, p.Vertexes[0].Position.Y, p.Vertexes[0].Position.X, p.Vertexes[0].Position.Y
	for _, v := range p.Vertexes {
		miX = math.Min(miX, v.Position.X)
		miY = math.Min(miY, v.Position.Y)
		maX = math.Max(maX, v.Position.X)
		maY = math.Max(maY, v.Position.Y)
	}
	return core.BBox{Min: core.Vector{X: miX, Y: miY}, Max: core.Vector{X: maX, Y: maY}}
}
