// Package render 把离散后的几何画成 PNG 预览图，用于人工核对解析结果。
package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"go.uber.org/zap"

	"github.com/zooyer/dxflite"
	"github.com/zooyer/dxflite/core"
	"github.com/zooyer/dxflite/entities"
	"github.com/zooyer/dxflite/utils"
)

type Options struct {
	Size      int     // 图片长边像素
	Margin    float64 // 四周留白像素
	Precision int     // 曲线离散精度
	LineWidth float64
}

func DefaultOptions() Options {
	return Options{
		Size:      1024,
		Margin:    16,
		Precision: 64,
		LineWidth: 1,
	}
}

// Viewport 世界坐标到像素坐标的变换，Y 轴向上翻转为图片的向下
type Viewport struct {
	Box    core.BBox
	Scale  float64
	Margin float64
	Height float64
}

func NewViewport(box core.BBox, size int, margin float64) Viewport {
	span := math.Max(box.Width(), box.Height())
	scale := 1.0
	if span > 0 {
		scale = (float64(size) - 2*margin) / span
	}
	return Viewport{
		Box:    box,
		Scale:  scale,
		Margin: margin,
		Height: math.Round(box.Height()*scale + 2*margin),
	}
}

// Pixels 图片宽高
func (v Viewport) Pixels() (width, height int) {
	return int(math.Round(v.Box.Width()*v.Scale + 2*v.Margin)), int(v.Height)
}

func (v Viewport) Map(p core.Vector) (x, y float64) {
	x = v.Margin + (p.X-v.Box.Min.X)*v.Scale
	y = v.Height - v.Margin - (p.Y-v.Box.Min.Y)*v.Scale
	return
}

// Validate 检查图片尺寸，留白之后必须还有可绘制的区域
func (o Options) Validate() error {
	if float64(o.Size) <= 2*o.Margin {
		return fmt.Errorf("render: size %d must exceed twice the margin %g", o.Size, o.Margin)
	}
	return nil
}

// Draw 在新建的画布上绘制文档中的全部实体
func Draw(doc *dxflite.Document, opts Options) (*gg.Context, Viewport, error) {
	if err := opts.Validate(); err != nil {
		return nil, Viewport{}, err
	}

	list := doc.Entities()
	box, ok := utils.DocumentBBox(list, opts.Precision)
	if !ok {
		return nil, Viewport{}, fmt.Errorf("render: document has no entities")
	}

	var (
		view          = NewViewport(box, opts.Size, opts.Margin)
		width, height = view.Pixels()
		dc            = gg.NewContext(width, height)
		log           = dxflite.Logger()
	)

	dc.ClearWithColor(gg.White)
	dc.SetLineWidth(opts.LineWidth)

	for _, e := range list {
		dc.SetColor(EntityColor(doc, e).Color())
		if err := drawEntity(dc, view, e, opts.Precision); err != nil {
			_ = dc.Close()
			return nil, view, fmt.Errorf("render %s: %w", e.Type(), err)
		}
	}

	log.Debug("render",
		zap.Int("entities", len(list)),
		zap.Int("width", width),
		zap.Int("height", height),
	)

	return dc, view, nil
}

// SavePNG 绘制并保存为 PNG 文件
func SavePNG(doc *dxflite.Document, filename string, opts Options) error {
	dc, _, err := Draw(doc, opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	return dc.SavePNG(filename)
}

func drawEntity(dc *gg.Context, view Viewport, e entities.Entity, precision int) error {
	switch e := e.(type) {
	case *entities.Point, *entities.Text, *entities.Vertex:
		// 点类实体画成小圆点
		x, y := view.Map(utils.Tessellate(e, precision)[0])
		dc.DrawPoint(x, y, 2)
		return dc.Fill()
	case *entities.Circle:
		return stroke(dc, view, utils.TessellateCircle(e, precision), true)
	case *entities.Polyline:
		return stroke(dc, view, utils.PolylinePath(e, precision), e.Closed)
	case *entities.LWPolyline:
		return stroke(dc, view, utils.PolylinePath(&e.Polyline, precision), e.Closed)
	default:
		return stroke(dc, view, utils.Tessellate(e, precision), false)
	}
}

func stroke(dc *gg.Context, view Viewport, points []core.Vector, closed bool) error {
	if len(points) == 0 {
		return nil
	}

	started := false
	for _, p := range points {
		// 退化几何产生的 NaN 直接跳过
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		x, y := view.Map(p)
		if !started {
			dc.MoveTo(x, y)
			started = true
		} else {
			dc.LineTo(x, y)
		}
	}
	if !started {
		return nil
	}
	if closed {
		dc.ClosePath()
	}
	return dc.Stroke()
}
