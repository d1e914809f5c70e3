package dxf

import (
	"log/slog"

	"github.com/zooyer/dxfwriter/core"
)

// SetLogger 设置包日志，nil 恢复为静默
func SetLogger(l *slog.Logger) {
	core.SetLogger(l)
}

// Logger 返回当前日志
func Logger() *slog.Logger {
	return core.Logger()
}
