package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// ErrUnbalanced SECTION/TABLE/BLOCK 的开始与结束不匹配
var ErrUnbalanced = errors.New("dxf: unbalanced start/end")

// frame 一个未闭合的结构组，记录闭合时写出的结束标记
type frame struct {
	name string
	end  string
}

// Writer 组码写入器：只追加、单遍，不支持回写已写出的标签
type Writer struct {
	tags   []Tag
	frames []frame
	err    error
}

func NewWriter() *Writer {
	return &Writer{tags: make([]Tag, 0, 1024)}
}

// Push 追加一组标签，value 为 nil 或任意类型的 nil 指针时跳过
// 0、""、false 等零值照常写出
func (w *Writer) Push(code int, value any) {
	s, ok := stringify(value)
	if !ok {
		return
	}
	w.tags = append(w.tags, Tag{Code: code, Value: s})
}

// Start 开始一个 SECTION
func (w *Writer) Start(name string) {
	w.Push(0, "SECTION")
	w.Push(2, name)
	w.frames = append(w.frames, frame{name: name, end: "ENDSEC"})
}

// StartTable 开始一个 TABLE
func (w *Writer) StartTable(name string) {
	w.Push(0, "TABLE")
	w.Push(2, name)
	w.frames = append(w.frames, frame{name: name, end: "ENDTAB"})
}

// StartBlock 开始一个 BLOCK，块的其余字段由调用方写出
func (w *Writer) StartBlock() {
	w.Push(0, "BLOCK")
	w.frames = append(w.frames, frame{name: "BLOCK", end: "ENDBLK"})
}

// End 闭合最内层的结构组
func (w *Writer) End() {
	if len(w.frames) == 0 {
		if w.err == nil {
			w.err = fmt.Errorf("%w: end without start at tag %d", ErrUnbalanced, len(w.tags))
		}
		return
	}
	f := w.frames[len(w.frames)-1]
	w.frames = w.frames[:len(w.frames)-1]
	w.Push(0, f.end)
}

func (w *Writer) Type(name string) {
	w.Push(0, name)
}

func (w *Writer) Handle(handle string) {
	w.Push(5, handle)
}

func (w *Writer) Name(name string) {
	w.Push(2, name)
}

func (w *Writer) LayerName(name string) {
	w.Push(8, name)
}

func (w *Writer) SubclassMarker(name string) {
	w.Push(100, name)
}

// Point2D 写出 (10+i, 20+i)
func (w *Writer) Point2D(p Point, index ...int) {
	i := pointIndex(index)
	w.Push(10+i, p.X)
	w.Push(20+i, p.Y)
}

// Point3D 写出 (10+i, 20+i, 30+i)
func (w *Writer) Point3D(p Point, index ...int) {
	i := pointIndex(index)
	w.Push(10+i, p.X)
	w.Push(20+i, p.Y)
	w.Push(30+i, p.Z)
}

func pointIndex(index []int) int {
	if len(index) > 0 {
		return index[0]
	}
	return 0
}

// Tags 返回已写出标签的副本
func (w *Writer) Tags() []Tag {
	tags := make([]Tag, len(w.tags))
	copy(tags, w.tags)
	return tags
}

// Len 已写出标签数量
func (w *Writer) Len() int {
	return len(w.tags)
}

// Err 检查结构是否平衡
func (w *Writer) Err() error {
	if w.err != nil {
		return w.err
	}
	if n := len(w.frames); n > 0 {
		return fmt.Errorf("%w: %d group(s) left open, innermost %q", ErrUnbalanced, n, w.frames[n-1].name)
	}
	return nil
}

// Stringify 渲染为两行一组的文本
func (w *Writer) Stringify() (string, error) {
	var sb strings.Builder
	if _, err := w.WriteTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteTo 实现 io.WriterTo，结构不平衡时不写出任何内容
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	if err := w.Err(); err != nil {
		return 0, err
	}

	var (
		bw = bufio.NewWriter(dst)
		n  int64
	)
	for _, t := range w.tags {
		c, err := bw.WriteString(strconv.Itoa(t.Code) + "\n" + t.Value + "\n")
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// stringify 按值的底层类型格式化，具名整数/浮点与内置类型规则一致
// nil 与 nil 指针返回 ok=false，非 nil 指针按所指的值格式化
func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case float64:
		return formatFloat(v), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}
		return stringify(rv.Elem().Interface())
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		if rv.Bool() {
			return "1", true
		}
		return "0", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float()), true
	}

	if s, ok := value.(fmt.Stringer); ok {
		return s.String(), true
	}
	return fmt.Sprint(value), true
}

// formatFloat 最短表示，去掉多余的尾零
func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
