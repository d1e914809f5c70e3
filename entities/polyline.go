package entities

import (
	"github.com/zooyer/dxfwriter/core"
)

// PolylineFlags 组码 70
type PolylineFlags int

const (
	PolylineNone         PolylineFlags = 0
	PolylineClosed       PolylineFlags = 1
	PolylineCurveFit     PolylineFlags = 2
	PolylineSplineFit    PolylineFlags = 4
	Polyline3D           PolylineFlags = 8
	Polyline3DMesh       PolylineFlags = 16
	PolylineClosedN      PolylineFlags = 32
	PolylinePolyfaceMesh PolylineFlags = 64
	PolylineLinetypeGen  PolylineFlags = 128
)

type PolylineOptions struct {
	Options
	Flags      PolylineFlags
	StartWidth *float64
	EndWidth   *float64
}

// Polyline 三维多段线，顶点作为 VERTEX 子实体写出，以 SEQEND 结束
type Polyline struct {
	BaseEntity
	Flags      PolylineFlags
	StartWidth *float64
	EndWidth   *float64
	Vertices   []*Vertex
	SeqEnd     BaseEntity
}

func NewPolyline(points []core.Point, options *PolylineOptions) *Polyline {
	if options == nil {
		options = &PolylineOptions{}
	}
	p := &Polyline{
		BaseEntity: newBase("POLYLINE", "AcDb3dPolyline", &options.Options),
		Flags:      options.Flags | Polyline3D,
		StartWidth: options.StartWidth,
		EndWidth:   options.EndWidth,
		SeqEnd:     newBase("SEQEND", "", nil),
	}
	for _, pt := range points {
		p.Vertices = append(p.Vertices, NewVertex(pt, &VertexOptions{Flags: VertexPolyline3D}))
	}
	return p
}

// adopt 为顶点和 SEQEND 分配句柄，继承多段线的所属块与图层
func (p *Polyline) adopt(handles *core.Handles) {
	children := make([]*BaseEntity, 0, len(p.Vertices)+1)
	for _, v := range p.Vertices {
		children = append(children, &v.BaseEntity)
	}
	children = append(children, &p.SeqEnd)

	for _, c := range children {
		if c.Handle == "" {
			c.Handle = handles.Next()
		}
		c.OwnerBlockRecord = p.OwnerBlockRecord
		c.LayerName = p.LayerName
	}
}

func (p *Polyline) Serialize(w *core.Writer) {
	p.BaseEntity.Serialize(w)
	w.Push(66, 1)
	w.Point3D(core.Point{})
	w.Push(70, int(p.Flags))
	w.Push(40, p.StartWidth)
	w.Push(41, p.EndWidth)
	for _, v := range p.Vertices {
		v.Serialize(w)
	}
	p.SeqEnd.Serialize(w)
}

func (p *Polyline) BBox() core.BBox {
	box := core.EmptyBBox()
	for _, v := range p.Vertices {
		box = box.Extend(v.Location)
	}
	return box
}
