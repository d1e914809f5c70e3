package entities

import "github.com/zooyer/dxfwriter/core"

// TextHorizontalAlignment 组码 72
type TextHorizontalAlignment int

const (
	TextLeft TextHorizontalAlignment = iota
	TextCenter
	TextRight
	TextAligned
	TextMiddle
	TextFit
)

// TextVerticalAlignment 组码 73
type TextVerticalAlignment int

const (
	TextBaseline TextVerticalAlignment = iota
	TextBottom
	TextVMiddle
	TextTop
)

// TextAttrs 文字的可选属性
type TextAttrs struct {
	Rotation             *float64 // 组码 50
	RelativeXScale       *float64 // 组码 41
	ObliqueAngle         *float64 // 组码 51
	StyleName            *string  // 组码 7
	GenerationFlags      *int     // 组码 71
	HorizontalAlignment  *TextHorizontalAlignment
	VerticalAlignment    *TextVerticalAlignment
	SecondAlignmentPoint *core.Point // 组码 11，非左对齐时需要
}

type TextOptions struct {
	Options
	TextAttrs
}

type Text struct {
	BaseEntity
	TextAttrs
	Position core.Point
	Height   float64
	Value    string
}

func NewText(position core.Point, height float64, value string, options *TextOptions) *Text {
	if options == nil {
		options = &TextOptions{}
	}
	return &Text{
		BaseEntity: newBase("TEXT", "AcDbText", &options.Options),
		TextAttrs:  options.TextAttrs,
		Position:   position,
		Height:     height,
		Value:      value,
	}
}

func (t *Text) Serialize(w *core.Writer) {
	t.BaseEntity.Serialize(w)
	w.Point3D(t.Position)
	w.Push(40, t.Height)
	w.Push(1, t.Value)
	w.Push(50, t.Rotation)
	w.Push(41, t.RelativeXScale)
	w.Push(51, t.ObliqueAngle)
	w.Push(7, t.StyleName)
	w.Push(71, t.GenerationFlags)
	if t.HorizontalAlignment != nil {
		w.Push(72, int(*t.HorizontalAlignment))
	}
	if t.SecondAlignmentPoint != nil {
		w.Point3D(*t.SecondAlignmentPoint, 1)
	}
	w.SubclassMarker("AcDbText")
	if t.VerticalAlignment != nil {
		w.Push(73, int(*t.VerticalAlignment))
	}
}

// BBox 简化处理：以插入点作为包围盒
func (t *Text) BBox() core.BBox {
	return core.PointBBox(t.Position)
}
