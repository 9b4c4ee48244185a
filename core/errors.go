package core

import "fmt"

// MalformedCodeError 组码行不是整数，说明文件已损坏，解析无法继续
type MalformedCodeError struct {
	Line int    // 出错的行号，从 1 开始
	Text string // 原始组码行内容
}

func (e *MalformedCodeError) Error() string {
	return fmt.Sprintf("line %d: malformed group code %q", e.Line, e.Text)
}
