package utils

import (
	"math"

	"github.com/zooyer/dxflite/core"
	"github.com/zooyer/dxflite/entities"
)

// 各类曲线允许的最小精度，低于下限时自动抬升
const (
	MinCirclePrecision   = 3
	MinArcPrecision      = 1
	MinPolylinePrecision = 2
)

// TessellateCircle 从 0° 开始把整圆等分为 precision 份，
// 返回 precision 个点，不重复闭合点。
func TessellateCircle(c *entities.Circle, precision int) []core.Vector {
	precision = max(precision, MinCirclePrecision)

	var (
		points = make([]core.Vector, 0, precision)
		step   = 2 * math.Pi / float64(precision)
	)
	for i := 0; i < precision; i++ {
		points = append(points, onCircle(c.Center, c.Radius, float64(i)*step))
	}
	return points
}

// TessellateArc 从起始角逆时针到终止角，返回 precision+1 个点（含两个端点）
func TessellateArc(a *entities.Arc, precision int) []core.Vector {
	precision = max(precision, MinArcPrecision)

	start := a.StartAngle * math.Pi / 180.0
	end := a.EndAngle * math.Pi / 180.0

	return sweep(a.Center, a.Radius, start, end, precision)
}

// TessellatePolyline 依次展开相邻两个顶点构成的线段：
//   - bulge 为 0 的直线段只输出起点，终点由下一段给出；
//   - bulge 非 0 的圆弧段输出 precision+1 个点，方向总是从本顶点到下一个顶点。
//
// 只处理下标 0..n-2 的线段，最后一个顶点不会作为线段起点，闭合段也不处理，
// 需要完整轮廓时使用 PolylinePath。
//
// bulge 方向按屏幕坐标系（Y 轴向下）解释：(0,0)→(2,0) 且 bulge=1 的半圆经过 (1,1)。
// 弦长为 0 或 bulge 对应的半径小于半弦长时圆心为 NaN，这里不做修正。
func TessellatePolyline(p *entities.Polyline, precision int) []core.Vector {
	precision = max(precision, MinPolylinePrecision)

	var points []core.Vector
	for i := 0; i+1 < len(p.Vertexes); i++ {
		from, to := p.Vertexes[i], p.Vertexes[i+1]
		if from.Bulge == 0 {
			points = append(points, from.Position)
			continue
		}
		points = append(points, BulgeArc(from.Position, to.Position, from.Bulge, precision)...)
	}
	return points
}

// PolylinePath 返回可直接绘制的完整路径：包含终点，闭合多段线会展开最后一个顶点到第一个顶点的闭合段
// （含该段的 bulge），相邻线段的公共端点只输出一次。闭合路径不重复首点。
func PolylinePath(p *entities.Polyline, precision int) []core.Vector {
	precision = max(precision, MinPolylinePrecision)

	n := len(p.Vertexes)
	if n == 0 {
		return nil
	}

	segments := n - 1
	if p.Closed {
		segments = n
	}

	var points []core.Vector
	for i := 0; i < segments; i++ {
		from, to := p.Vertexes[i], p.Vertexes[(i+1)%n]
		if from.Bulge == 0 {
			points = append(points, from.Position)
			continue
		}
		arc := BulgeArc(from.Position, to.Position, from.Bulge, precision)
		points = append(points, arc[:len(arc)-1]...)
	}
	if !p.Closed {
		points = append(points, p.Vertexes[n-1].Position)
	}
	return points
}

// BulgeArc 由弦的两个端点和 bulge 反推圆弧并离散化，返回 precision+1 个点，从 p1 到 p2
func BulgeArc(p1, p2 core.Vector, bulge float64, precision int) []core.Vector {
	// 切换到 Y 轴向下的坐标系计算，结果再翻转回来
	q1, q2 := flipY(p1), flipY(p2)

	// 包角 = 4·atan(|bulge|)，超过 π 时取补角并记录
	angle := 4 * math.Atan(math.Abs(bulge))
	reflected := false
	if angle > math.Pi {
		angle = 2*math.Pi - angle
		reflected = true
	}

	// 正弦定理 r = chord·sin(α)/sin(angle)，α = (π-angle)/2；
	// 化简为 chord/(2·sin(angle/2))，避免半圆时 0/0
	chord := q1.Distance(q2)
	radius := chord / (2 * math.Sin(angle/2))

	var (
		mid = q1.Add(q2).Scale(0.5)
		dx  = q2.X - q1.X
		dy  = q2.Y - q1.Y
		k   = math.Sqrt(math.Pow(2*radius/chord, 2) - 1)
	)

	// 圆心在弦的中垂线上，偏移方向由 bulge 符号和是否取补角共同决定
	var center core.Vector
	switch {
	case bulge > 0 && !reflected:
		center = core.Vector{X: mid.X - k*dy/2, Y: mid.Y + k*dx/2}
	case bulge > 0 && reflected:
		center = core.Vector{X: mid.X + k*dy/2, Y: mid.Y - k*dx/2}
	case bulge < 0 && !reflected:
		center = core.Vector{X: mid.X + k*dy/2, Y: mid.Y - k*dx/2}
	default:
		center = core.Vector{X: mid.X - k*dy/2, Y: mid.Y + k*dx/2}
	}

	// 逆时针扫描，bulge 为负时起止交换，输出后再反转
	start, end := polarAngle(center, q1), polarAngle(center, q2)
	if bulge < 0 {
		start, end = end, start
	}

	points := sweep(center, radius, start, end, precision)
	if bulge < 0 {
		reverse(points)
	}
	for i := range points {
		points[i] = flipY(points[i])
	}
	return points
}

// Tessellate 把任意实体离散为点序列
func Tessellate(entity entities.Entity, precision int) []core.Vector {
	switch e := entity.(type) {
	case *entities.Line:
		return []core.Vector{e.Start, e.End}
	case *entities.Circle:
		return TessellateCircle(e, precision)
	case *entities.Arc:
		return TessellateArc(e, precision)
	case *entities.Point:
		return []core.Vector{e.Position}
	case *entities.Text:
		return []core.Vector{e.Position}
	case *entities.Polyline:
		return TessellatePolyline(e, precision)
	case *entities.LWPolyline:
		return TessellatePolyline(&e.Polyline, precision)
	case *entities.Vertex:
		return []core.Vector{e.Position}
	}
	return nil
}

// sweep 从 start 逆时针扫到 end（弧度），跨越 0 时绕一圈计算，返回 precision+1 个点
func sweep(center core.Vector, radius, start, end float64, precision int) []core.Vector {
	swept := end - start
	if start > end {
		swept = end + 2*math.Pi - start
	}

	var (
		points = make([]core.Vector, 0, precision+1)
		step   = swept / float64(precision)
	)
	for i := 0; i <= precision; i++ {
		points = append(points, onCircle(center, radius, start+float64(i)*step))
	}
	return points
}

func onCircle(center core.Vector, radius, angle float64) core.Vector {
	return core.Vector{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// polarAngle 点 p 相对圆心的角度，归一化到 [0, 2π)
func polarAngle(center, p core.Vector) float64 {
	angle := math.Atan2(p.Y-center.Y, p.X-center.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

func flipY(v core.Vector) core.Vector {
	return core.Vector{X: v.X, Y: -v.Y}
}

func reverse(points []core.Vector) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
