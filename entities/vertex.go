package entities

import "github.com/zooyer/dxfwriter/core"

// VertexFlags 组码 70
type VertexFlags int

const (
	VertexNone          VertexFlags = 0
	VertexExtra         VertexFlags = 1
	VertexCurveFit      VertexFlags = 2
	VertexNotUsed       VertexFlags = 4
	VertexSpline        VertexFlags = 8
	VertexSplineFrame   VertexFlags = 16
	VertexPolyline3D    VertexFlags = 32
	VertexPolygon3DMesh VertexFlags = 64
	VertexPolyfaceMesh  VertexFlags = 128
)

type VertexOptions struct {
	Options
	Flags      VertexFlags
	StartWidth *float64
	EndWidth   *float64
	Bulge      *float64
}

type Vertex struct {
	BaseEntity
	Location   core.Point
	Flags      VertexFlags
	StartWidth *float64
	EndWidth   *float64
	Bulge      *float64
}

func NewVertex(location core.Point, options *VertexOptions) *Vertex {
	if options == nil {
		options = &VertexOptions{}
	}
	return &Vertex{
		BaseEntity: newBase("VERTEX", "AcDbVertex", &options.Options),
		Location:   location,
		Flags:      options.Flags,
		StartWidth: options.StartWidth,
		EndWidth:   options.EndWidth,
		Bulge:      options.Bulge,
	}
}

func (v *Vertex) Serialize(w *core.Writer) {
	v.BaseEntity.Serialize(w)
	w.SubclassMarker("AcDb3dPolylineVertex")
	w.Point3D(v.Location)
	w.Push(40, v.StartWidth)
	w.Push(41, v.EndWidth)
	w.Push(42, v.Bulge)
	w.Push(70, int(v.Flags))
}

func (v *Vertex) BBox() core.BBox {
	return core.PointBBox(v.Location)
}
