package utils

import (
	"math"

	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

// Transform 块参照变换：先减去块基点，再缩放、绕 Z 旋转、平移到插入点
type Transform struct {
	Base     core.Point
	Scale    core.Point
	Rotation float64 // 度
	Offset   core.Point
}

// Identity 不做任何变换
func Identity() Transform {
	return Transform{Scale: core.Point{X: 1, Y: 1, Z: 1}}
}

// FromInsert 由 INSERT 实体与块基点构造变换
func FromInsert(ins *entities.Insert, base core.Point) Transform {
	return Transform{
		Base:     base,
		Scale:    ins.Scale,
		Rotation: ins.Rotation,
		Offset:   ins.InsertionPoint,
	}
}

// Point 将局部坐标点变换到父级/世界坐标
func (t Transform) Point(p core.Point) core.Point {
	p = p.Sub(t.Base)

	// 1. 缩放
	tx, ty, tz := p.X*t.Scale.X, p.Y*t.Scale.Y, p.Z*t.Scale.Z

	// 2. 旋转
	rad := t.Rotation * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)
	rx := tx*cos - ty*sin
	ry := tx*sin + ty*cos

	// 3. 平移
	return core.Point{X: rx + t.Offset.X, Y: ry + t.Offset.Y, Z: tz + t.Offset.Z}
}

// BBox 变换包围盒的 8 个角点后重新取范围
func (t Transform) BBox(local core.BBox) core.BBox {
	if local.IsEmpty() {
		return local
	}

	lo, hi := local.Min, local.Max
	corners := []core.Point{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
	}

	box := core.EmptyBBox()
	for _, c := range corners {
		box = box.Extend(t.Point(c))
	}
	return box
}

// Then 组合嵌套块参照：子变换 t 之后再应用父变换 parent
// 旋转叠加、缩放相乘，插入点经过父变换
func (t Transform) Then(parent Transform) Transform {
	return Transform{
		Base: t.Base,
		Scale: core.Point{
			X: parent.Scale.X * t.Scale.X,
			Y: parent.Scale.Y * t.Scale.Y,
			Z: parent.Scale.Z * t.Scale.Z,
		},
		Rotation: parent.Rotation + t.Rotation,
		Offset:   parent.Point(t.Offset),
	}
}
