package dxflite

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/zooyer/dxflite/core"
	"github.com/zooyer/dxflite/entities"
)

// Document 一次解析得到的全部对象，解析完成后只读，可并发访问
type Document struct {
	Layers      []*entities.Layer
	Lines       []*entities.Line
	Circles     []*entities.Circle
	Arcs        []*entities.Arc
	Points      []*entities.Point
	Texts       []*entities.Text
	Polylines   []*entities.Polyline
	LWPolylines []*entities.LWPolyline
	Vertexes    []*entities.Vertex
}

// Layer 按名称查找图层，重名时返回第一个声明。
// 实体引用未声明的图层是允许的，由调用方自行校验。
func (d *Document) Layer(name string) (*entities.Layer, bool) {
	for _, l := range d.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// Entities 按类型顺序返回全部几何实体
func (d *Document) Entities() []entities.Entity {
	all := make([]entities.Entity, 0, d.Len())
	for _, e := range d.Lines {
		all = append(all, e)
	}
	for _, e := range d.Circles {
		all = append(all, e)
	}
	for _, e := range d.Arcs {
		all = append(all, e)
	}
	for _, e := range d.Points {
		all = append(all, e)
	}
	for _, e := range d.Texts {
		all = append(all, e)
	}
	for _, e := range d.Polylines {
		all = append(all, e)
	}
	for _, e := range d.LWPolylines {
		all = append(all, e)
	}
	for _, e := range d.Vertexes {
		all = append(all, e)
	}
	return all
}

// Len 几何实体总数（不含图层）
func (d *Document) Len() int {
	return len(d.Lines) + len(d.Circles) + len(d.Arcs) + len(d.Points) +
		len(d.Texts) + len(d.Polylines) + len(d.LWPolylines) + len(d.Vertexes)
}

// BBox 全部实体包围盒的并集，没有实体时返回零值。
// 多段线只统计顶点，不含凸度圆弧外凸的部分；需要按离散路径计算时用 utils.DocumentBBox
func (d *Document) BBox() core.BBox {
	var (
		box   core.BBox
		first = true
	)
	for _, e := range d.Entities() {
		if first {
			box, first = e.BBox(), false
			continue
		}
		box = box.Union(e.BBox())
	}
	return box
}

func (d *Document) add(obj entities.Object) {
	switch o := obj.(type) {
	case *entities.Layer:
		d.Layers = append(d.Layers, o)
	case *entities.Line:
		d.Lines = append(d.Lines, o)
	case *entities.Circle:
		d.Circles = append(d.Circles, o)
	case *entities.Arc:
		d.Arcs = append(d.Arcs, o)
	case *entities.Point:
		d.Points = append(d.Points, o)
	case *entities.Text:
		d.Texts = append(d.Texts, o)
	case *entities.Polyline:
		d.Polylines = append(d.Polylines, o)
	case *entities.LWPolyline:
		d.LWPolylines = append(d.LWPolylines, o)
	case *entities.Vertex:
		d.Vertexes = append(d.Vertexes, o)
	}
}

type state int

const (
	scanHeader state = iota // HEADER/TABLES 等段，只收集图层
	inEntities              // 进入 ENTITIES 段后不再回到 scanHeader
)

// accepts 当前状态下是否解析该类型的对象
func (s state) accepts(kind entities.Kind) bool {
	switch s {
	case scanHeader:
		return !kind.IsEntity()
	case inEntities:
		return kind.IsEntity()
	}
	return false
}

// sectionName 读取 SECTION 之后的段名（组码 2）
func sectionName(scanner *core.Scanner) (string, bool) {
	for {
		tag, ok := scanner.Next()
		if !ok {
			return "", false
		}
		if tag.Code == 2 {
			return strings.ToUpper(tag.AsString()), true
		}
		if tag.Code == 0 {
			scanner.Unread(tag)
			return "", false
		}
	}
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

// Load 解析 ASCII DXF。组码行无法解析为整数时返回 *core.MalformedCodeError，
// 此时不返回任何部分结果；其余无法识别的内容一律跳过。
func Load(reader io.Reader) (*Document, error) {
	var (
		log      = Logger()
		scanner  = core.NewScanner(reader)
		document = &Document{}
		current  = scanHeader
		skipped  = make(map[string]int)
	)

	for {
		tag, ok := scanner.Next()
		if !ok {
			break
		}
		if tag.Code != 0 {
			continue
		}

		value := strings.ToUpper(tag.AsString())
		if value == "EOF" {
			break
		}
		if value == "SECTION" {
			if name, ok := sectionName(scanner); ok && name == "ENTITIES" && current == scanHeader {
				log.Debug("enter entities section", zap.Int("line", scanner.Line()))
				current = inEntities
			}
			continue
		}

		kind, known := entities.ParseKind(value)
		if !known || !current.accepts(kind) {
			skipped[value]++
			continue
		}

		obj := entities.New(kind)
		obj.Parse(scanner)
		document.add(obj)
	}

	if err := scanner.Err(); err != nil {
		log.Warn("load dxf", zap.Int("line", scanner.Line()), zap.Error(err))
		return nil, fmt.Errorf("dxf: %w", err)
	}

	if len(skipped) > 0 {
		log.Debug("skipped objects", zap.Any("tags", skipped))
	}
	log.Debug("load dxf",
		zap.Int("layers", len(document.Layers)),
		zap.Int("entities", document.Len()),
		zap.Int("lines", scanner.Line()),
	)

	return document, nil
}
