package entities

import (
	"github.com/zooyer/dxfwriter/core"
)

// LWPolylineFlags 组码 70
type LWPolylineFlags int

const (
	LWPolylineNone     LWPolylineFlags = 0
	LWPolylineClosed   LWPolylineFlags = 1
	LWPolylinePlinegen LWPolylineFlags = 128
)

type LWPolylineVertex struct {
	Point      core.Point
	StartWidth *float64 // 组码 40
	EndWidth   *float64 // 组码 41
	Bulge      *float64 // 组码 42，凸度 = tan(圆心角/4)
}

type LWPolylineOptions struct {
	Options
	Flags         LWPolylineFlags
	ConstantWidth *float64 // 组码 43
	Elevation     *float64 // 组码 38
	Thickness     *float64 // 组码 39
}

type LWPolyline struct {
	BaseEntity
	Vertices      []LWPolylineVertex
	Flags         LWPolylineFlags
	ConstantWidth *float64
	Elevation     *float64
	Thickness     *float64
}

func NewLWPolyline(vertices []LWPolylineVertex, options *LWPolylineOptions) *LWPolyline {
	if options == nil {
		options = &LWPolylineOptions{}
	}
	return &LWPolyline{
		BaseEntity:    newBase("LWPOLYLINE", "AcDbPolyline", &options.Options),
		Vertices:      vertices,
		Flags:         options.Flags,
		ConstantWidth: options.ConstantWidth,
		Elevation:     options.Elevation,
		Thickness:     options.Thickness,
	}
}

func (l *LWPolyline) Closed() bool {
	return l.Flags&LWPolylineClosed != 0
}

func (l *LWPolyline) Serialize(w *core.Writer) {
	l.BaseEntity.Serialize(w)
	w.Push(90, len(l.Vertices))
	w.Push(70, int(l.Flags))
	w.Push(43, l.ConstantWidth)
	w.Push(38, l.Elevation)
	w.Push(39, l.Thickness)
	for _, v := range l.Vertices {
		w.Point2D(v.Point)
		w.Push(40, v.StartWidth)
		w.Push(41, v.EndWidth)
		w.Push(42, v.Bulge)
	}
}

func (l *LWPolyline) BBox() core.BBox {
	box := core.EmptyBBox()
	for _, v := range l.Vertices {
		box = box.Extend(v.Point)
	}
	return box
}
