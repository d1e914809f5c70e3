package core

import (
	"math"

	"github.com/zooyer/golib/xmath"
)

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// EmptyBBox 返回空包围盒，与任何包围盒合并都得到对方
func EmptyBBox() BBox {
	return BBox{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// IsEmpty 判断包围盒是否为空（没有任何几何）
func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Center 包围盒中心
func (b BBox) Center() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

func (b BBox) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b BBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Extend 将点并入包围盒
func (b BBox) Extend(p Point) BBox {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Min.Z = math.Min(b.Min.Z, p.Z)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	b.Max.Z = math.Max(b.Max.Z, p.Z)
	return b
}

// Union 合并两个包围盒，空包围盒不参与
func (b BBox) Union(o BBox) BBox {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// PointBBox 单点退化包围盒
func PointBBox(p Point) BBox {
	return BBox{Min: p, Max: p}
}

// PointsBBox 包含所有点的包围盒，没有点时为空
func PointsBBox(points ...Point) BBox {
	box := EmptyBBox()
	for _, p := range points {
		box = box.Extend(p)
	}
	return box
}

// CenterRadiusBBox 圆心 ± 半径（仅 XY 方向扩展）
func CenterRadiusBBox(center Point, radius float64) BBox {
	return BBox{
		Min: Point{X: center.X - radius, Y: center.Y - radius, Z: center.Z},
		Max: Point{X: center.X + radius, Y: center.Y + radius, Z: center.Z},
	}
}

// MergeBBox 折叠多个包围盒，全部为空时返回空包围盒
func MergeBBox(boxes ...BBox) BBox {
	box := EmptyBBox()
	for _, b := range boxes {
		box = box.Union(b)
	}
	return box
}

// ArcBBox 圆弧的最小包围盒：端点加上扫过的轴向极值点
// 角度为度，逆时针从 start 扫到 end
func ArcBBox(center Point, radius, start, end float64) BBox {
	s := normalizeAngle(start)
	e := normalizeAngle(end)
	if xmath.Equal(s, e, 1e-9) {
		return CenterRadiusBBox(center, radius)
	}

	at := func(deg float64) Point {
		rad := deg * math.Pi / 180.0
		return Point{X: center.X + radius*math.Cos(rad), Y: center.Y + radius*math.Sin(rad), Z: center.Z}
	}

	box := PointsBBox(at(s), at(e))
	for _, q := range []float64{0, 90, 180, 270} {
		if angleInSweep(q, s, e) {
			box = box.Extend(at(q))
		}
	}
	return box
}

func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func angleInSweep(a, start, end float64) bool {
	if start < end {
		return a >= start && a <= end
	}
	return a >= start || a <= end
}
