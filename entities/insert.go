package entities

import "github.com/zooyer/dxfwriter/core"

type InsertOptions struct {
	Options
	Scale         *core.Point // 默认 (1,1,1)
	Rotation      float64
	ColumnCount   int // 默认 1
	RowCount      int // 默认 1
	ColumnSpacing float64
	RowSpacing    float64
}

type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64
	ColumnCount    int
	RowCount       int
	ColumnSpacing  float64
	RowSpacing     float64
}

func NewInsert(blockName string, insertionPoint core.Point, options *InsertOptions) *Insert {
	if options == nil {
		options = &InsertOptions{}
	}
	i := &Insert{
		BaseEntity:     newBase("INSERT", "AcDbBlockReference", &options.Options),
		BlockName:      blockName,
		InsertionPoint: insertionPoint,
		Scale:          core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
		Rotation:       options.Rotation,
		ColumnCount:    max(options.ColumnCount, 1),
		RowCount:       max(options.RowCount, 1),
		ColumnSpacing:  options.ColumnSpacing,
		RowSpacing:     options.RowSpacing,
	}
	if options.Scale != nil {
		i.Scale = *options.Scale
	}
	return i
}

func (i *Insert) Serialize(w *core.Writer) {
	i.BaseEntity.Serialize(w)
	w.Name(i.BlockName)
	w.Point3D(i.InsertionPoint)
	w.Push(41, i.Scale.X)
	w.Push(42, i.Scale.Y)
	w.Push(43, i.Scale.Z)
	w.Push(50, i.Rotation)
	w.Push(70, i.ColumnCount)
	w.Push(71, i.RowCount)
	w.Push(44, i.ColumnSpacing)
	w.Push(45, i.RowSpacing)
}

func (i *Insert) BBox() core.BBox {
	// Insert 的包围盒需要结合 Block 定义计算（见 Document.Extents）
	// 这里先返回插入点
	return core.PointBBox(i.InsertionPoint)
}
