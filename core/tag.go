package core

import (
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对（组码 + 值）
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64，固定使用 '.' 作为小数点，与系统区域设置无关
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.Value))
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// Is 判断是否为指定组码 0 对象标记，比如 Is("SEQEND")
func (t Tag) Is(name string) bool {
	return t.Code == 0 && strings.EqualFold(strings.TrimSpace(t.Value), name)
}
