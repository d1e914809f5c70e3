package entities

import "github.com/zooyer/dxfwriter/core"

// Arc 圆弧，角度为度，逆时针从 StartAngle 到 EndAngle
type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func NewArc(center core.Point, radius, startAngle, endAngle float64, options *Options) *Arc {
	return &Arc{
		BaseEntity: newBase("ARC", "AcDbCircle", options),
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
}

func (a *Arc) Serialize(w *core.Writer) {
	a.BaseEntity.Serialize(w)
	w.Point3D(a.Center)
	w.Push(40, a.Radius)
	w.SubclassMarker("AcDbArc")
	w.Push(50, a.StartAngle)
	w.Push(51, a.EndAngle)
}

// BBox 按整圆计算（与视图范围的既有行为保持一致），精确范围见 TightBBox
func (a *Arc) BBox() core.BBox {
	return core.CenterRadiusBBox(a.Center, a.Radius)
}

// TightBBox 只包含实际扫过部分的最小包围盒
func (a *Arc) TightBBox() core.BBox {
	return core.ArcBBox(a.Center, a.Radius, a.StartAngle, a.EndAngle)
}
