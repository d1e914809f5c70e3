package entities

import "github.com/zooyer/dxfwriter/core"

type Circle struct {
	BaseEntity
	Center core.Point
	Radius float64
}

func NewCircle(center core.Point, radius float64, options *Options) *Circle {
	return &Circle{BaseEntity: newBase("CIRCLE", "AcDbCircle", options), Center: center, Radius: radius}
}

func (c *Circle) Serialize(w *core.Writer) {
	c.BaseEntity.Serialize(w)
	w.Point3D(c.Center)
	w.Push(40, c.Radius)
}

func (c *Circle) BBox() core.BBox {
	return core.CenterRadiusBBox(c.Center, c.Radius)
}
