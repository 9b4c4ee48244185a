package dxflite

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger 设置解析过程使用的日志，默认不输出任何日志。
// 传 nil 恢复默认。可以与解析并发调用。
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l.Named("dxf"))
}

// Logger 返回当前日志
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
