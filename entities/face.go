package entities

import "github.com/zooyer/dxfwriter/core"

// InvisibleEdgeFlags 组码 70，第 n 位表示第 n 条边不可见
type InvisibleEdgeFlags int

const (
	FaceEdgesVisible InvisibleEdgeFlags = 0
	FaceFirstEdge    InvisibleEdgeFlags = 1
	FaceSecondEdge   InvisibleEdgeFlags = 2
	FaceThirdEdge    InvisibleEdgeFlags = 4
	FaceFourthEdge   InvisibleEdgeFlags = 8
)

type FaceOptions struct {
	Options
	InvisibleEdges *InvisibleEdgeFlags
}

// Face 3DFACE，三角面时第四点与第三点相同
type Face struct {
	BaseEntity
	Corners        [4]core.Point
	InvisibleEdges *InvisibleEdgeFlags
}

func NewFace(first, second, third, fourth core.Point, options *FaceOptions) *Face {
	if options == nil {
		options = &FaceOptions{}
	}
	return &Face{
		BaseEntity:     newBase("3DFACE", "AcDbFace", &options.Options),
		Corners:        [4]core.Point{first, second, third, fourth},
		InvisibleEdges: options.InvisibleEdges,
	}
}

func (f *Face) Serialize(w *core.Writer) {
	f.BaseEntity.Serialize(w)
	for i, c := range f.Corners {
		w.Point3D(c, i)
	}
	if f.InvisibleEdges != nil {
		w.Push(70, int(*f.InvisibleEdges))
	}
}

func (f *Face) BBox() core.BBox {
	return core.PointsBBox(f.Corners[:]...)
}
