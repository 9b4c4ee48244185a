package render

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/zooyer/dxflite"
	"github.com/zooyer/dxflite/core"
	"github.com/zooyer/dxflite/entities"
)

func TestViewport(t *testing.T) {
	box := core.BBox{Min: core.Vector{X: -10, Y: 0}, Max: core.Vector{X: 90, Y: 50}}
	view := NewViewport(box, 220, 10)

	if view.Scale != 2 {
		t.Fatalf("Scale = %v", view.Scale)
	}
	w, h := view.Pixels()
	if w != 220 || h != 120 {
		t.Errorf("Pixels = %d x %d", w, h)
	}

	type xy struct{ X, Y float64 }
	var got []xy
	for _, p := range []core.Vector{box.Min, box.Max, {X: 40, Y: 25}} {
		x, y := view.Map(p)
		got = append(got, xy{x, y})
	}
	want := []xy{{10, 110}, {210, 10}, {110, 60}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Map (-want +got):\n%s", diff)
	}
}

func TestEntityColor(t *testing.T) {
	doc := &dxflite.Document{Layers: []*entities.Layer{{Name: "PJ", Color: 1}, {Name: "OFF", Color: -5}}}

	tests := []struct {
		layer string
		color int
		want  gg.RGBA
	}{
		{"PJ", entities.ColorByLayer, gg.RGB(1, 0, 0)},
		{"PJ", 3, gg.RGB(0, 1, 0)},
		{"OFF", entities.ColorByLayer, gg.RGB(0, 0, 1)},
		{"MISSING", entities.ColorByLayer, gg.RGB(0, 0, 0)},
		{"PJ", 30, gg.RGB(1, 0.5, 0)},
		{"PJ", 300, fallback},
	}
	for _, tt := range tests {
		line := &entities.Line{BaseEntity: entities.BaseEntity{LayerName: tt.layer, Color: tt.color}}
		if got := EntityColor(doc, line); got != tt.want {
			t.Errorf("layer=%s color=%d: 期望 %+v, 得到 %+v", tt.layer, tt.color, tt.want, got)
		}
	}
}

func TestColorOf(t *testing.T) {
	tests := []struct {
		index int
		want  gg.RGBA
	}{
		{1, gg.RGB(1, 0, 0)},
		{-5, gg.RGB(0, 0, 1)},
		{10, gg.RGB(1, 0, 0)},
		{11, gg.RGB(1, 0.5, 0.5)},
		{14, gg.RGB(0.6, 0, 0)},
		{30, gg.RGB(1, 0.5, 0)},
		{140, gg.RGB(0, 0.75, 1)},
		{250, gg.RGB(0.2, 0.2, 0.2)},
		{255, gg.RGB(1, 1, 1)},
		{256, fallback},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ColorOf(tt.index), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("ColorOf(%d) (-want +got):\n%s", tt.index, diff)
		}
	}

	// 10..249 每个索引都有自己的颜色
	seen := make(map[gg.RGBA]int)
	for i := 10; i < 250; i++ {
		c := ColorOf(i)
		if j, ok := seen[c]; ok {
			t.Errorf("ACI %d 与 %d 颜色相同: %+v", i, j, c)
		}
		seen[c] = i
	}
}

func TestSavePNG(t *testing.T) {
	data := strings.Join([]string{
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "10", "0", "20", "0", "11", "100", "21", "50",
		"0", "CIRCLE", "10", "50", "20", "25", "40", "20",
		"0", "LWPOLYLINE", "70", "1", "10", "0", "20", "0", "42", "0.5", "10", "100", "20", "0", "10", "100", "20", "50",
		"0", "POINT", "10", "10", "20", "40",
		"0", "EOF",
	}, "\n")
	doc, err := dxflite.Load(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	filename := filepath.Join(t.TempDir(), "preview.png")
	opts := DefaultOptions()
	opts.Size = 256
	if err := SavePNG(doc, filename, opts); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("生成的文件不是 PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() < 16 {
		t.Errorf("图片尺寸 %v", b)
	}
}

func TestDraw_Empty(t *testing.T) {
	if _, _, err := Draw(&dxflite.Document{}, DefaultOptions()); err == nil {
		t.Error("空文档应返回错误")
	}
}

func TestDraw_InvalidSize(t *testing.T) {
	doc := &dxflite.Document{Points: []*entities.Point{{Position: core.Vector{X: 1, Y: 1}}}}

	for _, size := range []int{-1, 0, 32} {
		opts := DefaultOptions()
		opts.Size = size
		if _, _, err := Draw(doc, opts); err == nil {
			t.Errorf("size=%d 应返回错误", size)
		}
	}

	opts := DefaultOptions()
	opts.Size = 33
	if err := opts.Validate(); err != nil {
		t.Errorf("size=33: %v", err)
	}
}
