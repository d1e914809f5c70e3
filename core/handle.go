package core

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Handles 句柄分配器：单调递增计数器，格式化为大写十六进制
// 同一个分配器分配的句柄永不重复，也不回收
type Handles struct {
	seed atomic.Uint64
}

func NewHandles() *Handles {
	return &Handles{}
}

// Next 分配一个新句柄，第一个为 "1"
func (h *Handles) Next() string {
	return format(h.seed.Add(1))
}

// Peek 返回下一个未使用的句柄（即 $HANDSEED），不分配
func (h *Handles) Peek() string {
	return format(h.seed.Load() + 1)
}

// Reset 重置计数器，仅用于测试获得确定的句柄序列
func (h *Handles) Reset() {
	h.seed.Store(0)
}

func format(n uint64) string {
	return strings.ToUpper(strconv.FormatUint(n, 16))
}
