package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/zooyer/golib/xmath"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
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

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// Pt 构造二维点（Z 为 0）
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pt3 构造三维点
func Pt3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k, Z: p.Z * k}
}

// Len 向量长度
func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance 两点距离
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Len()
}

// Equal 按容差比较两个点
func (p Point) Equal(q Point, epsilon float64) bool {
	return xmath.Equal(p.X, q.X, epsilon) &&
		xmath.Equal(p.Y, q.Y, epsilon) &&
		xmath.Equal(p.Z, q.Z, epsilon)
}

// Ptr 返回值的指针，便于填写可选字段
func Ptr[T any](v T) *T {
	return &v
}
