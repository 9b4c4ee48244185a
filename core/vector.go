package core

import "math"

// Vector 代表二维平面中的一个点或向量
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Distance 两点间欧氏距离
func (v Vector) Distance(o Vector) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Equal 在 epsilon 误差内判断两点是否相同
func (v Vector) Equal(o Vector, epsilon float64) bool {
	return math.Abs(v.X-o.X) <= epsilon && math.Abs(v.Y-o.Y) <= epsilon
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Vector
}

// PointBBox 单点退化的包围盒
func PointBBox(p Vector) BBox {
	return BBox{Min: p, Max: p}
}

func (b BBox) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b BBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Union 返回同时包含 b 和 o 的最小包围盒
func (b BBox) Union(o BBox) BBox {
	return BBox{
		Min: Vector{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y)},
		Max: Vector{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Extend 把点 p 扩进包围盒
func (b BBox) Extend(p Vector) BBox {
	return b.Union(PointBBox(p))
}

func (b BBox) Contains(p Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
