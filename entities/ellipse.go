package entities

import "github.com/zooyer/dxfwriter/core"

type Ellipse struct {
	BaseEntity
	Center         core.Point
	MajorAxis      core.Point // 长轴端点，相对于圆心
	Ratio          float64    // 短轴/长轴
	StartParameter float64    // 弧度，整椭圆为 0
	EndParameter   float64    // 弧度，整椭圆为 2π
}

func NewEllipse(center, majorAxis core.Point, ratio, startParameter, endParameter float64, options *Options) *Ellipse {
	return &Ellipse{
		BaseEntity:     newBase("ELLIPSE", "AcDbEllipse", options),
		Center:         center,
		MajorAxis:      majorAxis,
		Ratio:          ratio,
		StartParameter: startParameter,
		EndParameter:   endParameter,
	}
}

func (e *Ellipse) Serialize(w *core.Writer) {
	e.BaseEntity.Serialize(w)
	w.Point3D(e.Center)
	w.Point3D(e.MajorAxis, 1)
	w.Push(40, e.Ratio)
	w.Push(41, e.StartParameter)
	w.Push(42, e.EndParameter)
}

// BBox 以长半轴为半径的外接圆，有意放大
func (e *Ellipse) BBox() core.BBox {
	radius := core.Pt(e.MajorAxis.X, e.MajorAxis.Y).Len()
	return core.CenterRadiusBBox(e.Center, radius)
}
