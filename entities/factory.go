package entities

import (
	"strings"

	"github.com/zooyer/dxflite/core"
)

const (
	// DefaultLayer 未指定图层时使用的图层名
	DefaultLayer = "0"

	// ColorByBlock / ColorByLayer 是组码 62 的两个特殊取值
	ColorByBlock = 0
	ColorByLayer = 256
)

// Kind 是可识别对象类型的封闭枚举
type Kind int

const (
	KindLayer Kind = iota
	KindLine
	KindCircle
	KindArc
	KindPoint
	KindText
	KindPolyline
	KindLWPolyline
	KindVertex
)

var kindNames = [...]string{
	KindLayer:      "LAYER",
	KindLine:       "LINE",
	KindCircle:     "CIRCLE",
	KindArc:        "ARC",
	KindPoint:      "POINT",
	KindText:       "TEXT",
	KindPolyline:   "POLYLINE",
	KindLWPolyline: "LWPOLYLINE",
	KindVertex:     "VERTEX",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// IsEntity LAYER 是表记录，其余都是 ENTITIES 段中的几何实体
func (k Kind) IsEntity() bool {
	return k != KindLayer
}

// ParseKind 根据组码 0 的值识别对象类型
func ParseKind(name string) (Kind, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Object 是一切可从标签流中解析出来的对象
type Object interface {
	// Parse 从组码 0 之后开始消费标签，遇到下一个组码 0 时将其退回并返回
	Parse(r core.Reader)
	Kind() Kind
}

// Entity 是一切几何实体的接口
type Entity interface {
	Object
	Type() string
	Layer() string
	Base() *BaseEntity
	BBox() core.BBox
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Color, Handle）
type BaseEntity struct {
	TypeName  string
	LayerName string
	Handle    string
	Color     int // ACI 颜色，256 表示随层
}

func newBase(kind Kind) BaseEntity {
	return BaseEntity{TypeName: kind.String(), Color: ColorByLayer}
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

// Base 访问通用属性
func (b *BaseEntity) Base() *BaseEntity { return b }

// parseCommon 处理所有实体共有的组码，已处理返回 true
func (b *BaseEntity) parseCommon(t core.Tag) bool {
	switch t.Code {
	case 5:
		b.Handle = t.AsString()
	case 8:
		b.LayerName = t.AsString()
	case 62:
		b.Color = t.AsInt()
	default:
		return false
	}
	return true
}

// finalize 在解析结束时补全默认值
func (b *BaseEntity) finalize() {
	if b.LayerName == "" {
		b.LayerName = DefaultLayer
	}
}

// New 根据类型生产对应的结构体
func New(kind Kind) Object {
	switch kind {
	case KindLayer:
		return &Layer{}
	case KindLine:
		return &Line{BaseEntity: newBase(kind)}
	case KindCircle:
		return &Circle{BaseEntity: newBase(kind)}
	case KindArc:
		return &Arc{BaseEntity: newBase(kind)}
	case KindPoint:
		return &Point{BaseEntity: newBase(kind)}
	case KindText:
		return &Text{BaseEntity: newBase(kind)}
	case KindPolyline:
		return &Polyline{BaseEntity: newBase(kind)}
	case KindLWPolyline:
		return &LWPolyline{Polyline: Polyline{BaseEntity: newBase(kind)}}
	case KindVertex:
		return &Vertex{BaseEntity: newBase(kind)}
	}
	return nil
}

// scan 逐个读取属于当前对象的标签，遇到组码 0 时退回给调用方
func scan(r core.Reader, fn func(t core.Tag)) {
	for {
		t, ok := r.Next()
		if !ok {
			return
		}
		if t.Code == 0 {
			r.Unread(t)
			return
		}
		fn(t)
	}
}
