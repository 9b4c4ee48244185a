package entities

import "github.com/zooyer/dxflite/core"

// Layer 图层表记录
type Layer struct {
	Name     string
	Color    int // ACI 颜色 0..255，负数表示图层关闭
	LineType string
	Flags    int
}

func (l *Layer) Kind() Kind { return KindLayer }

func (l *Layer) Parse(r core.Reader) {
	scan(r, func(t core.Tag) {
		switch t.Code {
		case 2:
			l.Name = t.AsString()
		case 6:
			l.LineType = t.AsString()
		case 62:
			l.Color = t.AsInt()
		case 70:
			l.Flags = t.AsInt()
		}
	})
}

// Frozen 组码 70 第 0 位
func (l *Layer) Frozen() bool {
	return l.Flags&1 == 1
}
