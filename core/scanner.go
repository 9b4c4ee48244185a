package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Reader 是实体解析器读取标签对的窄接口
type Reader interface {
	// Next 读取下一组标签对，流结束或出错时返回 false
	Next() (Tag, bool)
	// Unread 退回一组标签对，下一次 Next 会再次返回它
	Unread(tag Tag)
}

// Scanner 逐对读取 组码/值，是唯一直接消费底层文本流的组件。
// 不可并发使用。
type Scanner struct {
	reader  *bufio.Reader
	line    int
	pending []Tag
	eof     bool
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

func (s *Scanner) Next() (Tag, bool) {
	if n := len(s.pending); n > 0 {
		tag := s.pending[n-1]
		s.pending = s.pending[:n-1]
		return tag, true
	}

	// 1. 读取 Code 行
	codeLine, ok := s.readLine()
	if !ok {
		return Tag{}, false
	}
	codeStr := strings.TrimSpace(codeLine)
	if codeStr == "" && s.blankToEnd() {
		return Tag{}, false
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = &MalformedCodeError{Line: s.line, Text: codeStr}
		return Tag{}, false
	}

	// 2. 读取 Value 行，只有 Code 没有 Value 视为流结束
	valueLine, ok := s.readLine()
	if !ok {
		return Tag{}, false
	}

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	value := strings.TrimRight(valueLine, "\r\n")

	return Tag{Code: code, Value: value}, true
}

func (s *Scanner) Unread(tag Tag) {
	s.pending = append(s.pending, tag)
}

// Line 返回最近读取的行号
func (s *Scanner) Line() int {
	return s.line
}

func (s *Scanner) Err() error {
	return s.err
}

// blankToEnd 文件末尾的空行视为流结束，否则空行就是错误的组码。
// 返回 false 时行号回到第一个空行。
func (s *Scanner) blankToEnd() bool {
	blank := s.line
	for {
		line, ok := s.readLine()
		if !ok {
			return s.err == nil
		}
		if strings.TrimSpace(line) != "" {
			s.line = blank
			return false
		}
	}
}

func (s *Scanner) readLine() (string, bool) {
	if s.err != nil || s.eof {
		return "", false
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = err
			return "", false
		}
		// 最后一行可能没有换行符
		s.eof = true
		if line == "" {
			return "", false
		}
	}
	s.line++

	return line, true
}
