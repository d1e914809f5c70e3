package entities

import (
	"github.com/zooyer/dxfwriter/core"
)

type Line struct {
	BaseEntity
	Start, End core.Point
}

func NewLine(start, end core.Point, options *Options) *Line {
	return &Line{BaseEntity: newBase("LINE", "AcDbLine", options), Start: start, End: end}
}

func (l *Line) Serialize(w *core.Writer) {
	l.BaseEntity.Serialize(w)
	w.Point3D(l.Start)
	w.Point3D(l.End, 1)
}

func (l *Line) BBox() core.BBox {
	return core.PointsBBox(l.Start, l.End)
}
