package render

import (
	"github.com/gogpu/gg"

	"github.com/zooyer/dxflite"
	"github.com/zooyer/dxflite/entities"
)

// aci AutoCAD 标准 256 色调色板
var aci [256]gg.RGBA

// fallback 超出 0..255 的索引
var fallback = gg.RGB(0.4, 0.4, 0.4)

func init() {
	copy(aci[:], []gg.RGBA{
		gg.RGB(0, 0, 0),
		gg.RGB(1, 0, 0),
		gg.RGB(1, 1, 0),
		gg.RGB(0, 1, 0),
		gg.RGB(0, 1, 1),
		gg.RGB(0, 0, 1),
		gg.RGB(1, 0, 1),
		gg.RGB(0, 0, 0), // 白底上 7 号色显示为黑色
		gg.RGB(0.5, 0.5, 0.5),
		gg.RGB(0.75, 0.75, 0.75),
	})

	// 10..249: 24 个色相，每个色相 5 档亮度，奇数索引是同色相的浅色
	levels := [...]float64{1, 0.8, 0.6, 0.5, 0.3}
	for i := 10; i < 250; i++ {
		c := gg.HSL(float64((i-10)/10)*15, 1, 0.5)
		if i%2 == 1 {
			c = gg.RGB((c.R+1)/2, (c.G+1)/2, (c.B+1)/2)
		}
		v := levels[i%10/2]
		aci[i] = gg.RGB(c.R*v, c.G*v, c.B*v)
	}

	// 250..255: 灰阶
	for i, g := range [...]float64{51, 80, 105, 130, 190, 255} {
		aci[250+i] = gg.RGB(g/255, g/255, g/255)
	}
}

// ColorOf 把 ACI 索引转换为颜色，负数表示图层关闭，取绝对值
func ColorOf(index int) gg.RGBA {
	if index < 0 {
		index = -index
	}
	if index >= len(aci) {
		return fallback
	}
	return aci[index]
}

// EntityColor 解析实体实际使用的颜色：随层时查图层表，图层不存在时按 7 号色处理
func EntityColor(doc *dxflite.Document, e entities.Entity) gg.RGBA {
	switch index := e.Base().Color; index {
	case entities.ColorByLayer, entities.ColorByBlock:
		if layer, ok := doc.Layer(e.Layer()); ok {
			return ColorOf(layer.Color)
		}
		return ColorOf(7)
	default:
		return ColorOf(index)
	}
}
