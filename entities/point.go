package entities

import "github.com/zooyer/dxfwriter/core"

type Point struct {
	BaseEntity
	Location core.Point
}

func NewPoint(location core.Point, options *Options) *Point {
	return &Point{BaseEntity: newBase("POINT", "AcDbPoint", options), Location: location}
}

func (p *Point) Serialize(w *core.Writer) {
	p.BaseEntity.Serialize(w)
	w.Point3D(p.Location)
}

func (p *Point) BBox() core.BBox {
	return core.PointBBox(p.Location)
}
