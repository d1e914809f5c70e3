package core

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler 丢弃所有日志，Enabled 返回 false 让调用方跳过格式化
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger 设置全局日志，默认不输出；传 nil 恢复静默
//
// 日志级别：
//   - Debug: 实体添加、对象关联
//   - Info: 文档保存
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger 返回当前日志
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
