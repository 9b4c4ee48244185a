package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/zooyer/golib/xmath"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/dxflite"
	"github.com/zooyer/dxflite/core"
	"github.com/zooyer/dxflite/entities"
	"github.com/zooyer/dxflite/utils"
)

const (
	header  = "序号,类型,图层,句柄,闭合,点数,坐标\n"
	epsilon = 1e-6 // 浮点数对比精度误差(误差不超过则认为相同)
)

type Summary struct {
	Layers   int
	Entities int
	Points   int
}

// writeReport 每个实体一行，坐标为离散后的点序列
func writeReport(filename string, doc *dxflite.Document, precision int) (summary Summary, err error) {
	if err = os.WriteFile(filename, []byte(header), 0644); err != nil {
		return
	}

	summary.Layers = len(doc.Layers)
	for i, e := range doc.Entities() {
		var points = utils.Tessellate(e, precision)

		var line []byte
		if line, err = formatRow(
			strconv.Itoa(i+1), e.Type(), e.Layer(), e.Base().Handle,
			renderClosed(e), strconv.Itoa(len(points)), renderPoints(points),
		); err != nil {
			return
		}
		if err = xos.AppendFile(filename, line, 0644); err != nil {
			return
		}

		summary.Entities++
		summary.Points += len(points)
	}

	// 写入统计信息
	stat, err := formatRow(
		fmt.Sprintf("共%d图层", summary.Layers),
		fmt.Sprintf("共%d实体", summary.Entities),
		fmt.Sprintf("共%d点", summary.Points),
		"", "", "", "",
	)
	if err != nil {
		return
	}
	err = xos.AppendFile(filename, stat, 0644)

	return
}

// formatRow 按 CSV 规则转义一行，图层名、句柄里的逗号和引号会被加上引号
func formatRow(fields ...string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func renderClosed(e entities.Entity) string {
	var p *entities.Polyline
	switch e := e.(type) {
	case *entities.Polyline:
		p = e
	case *entities.LWPolyline:
		p = &e.Polyline
	default:
		return ""
	}

	if p.Closed {
		return "是"
	}
	if n := len(p.Vertexes); n > 2 {
		first, last := p.Vertexes[0].Position, p.Vertexes[n-1].Position
		if xmath.Equal(first.X, last.X, epsilon) && xmath.Equal(first.Y, last.Y, epsilon) {
			return "首尾重合"
		}
	}
	return "否"
}

func renderPoints(points []core.Vector) string {
	var parts = make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, fmt.Sprintf("%.4f %.4f", p.X, p.Y))
	}
	return strings.Join(parts, ";")
}
