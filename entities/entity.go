package entities

import (
	"github.com/zooyer/dxfwriter/core"
)

// Entity 是一切几何实体的接口
type Entity interface {
	Type() string
	Layer() string
	BBox() core.BBox
	Serialize(w *core.Writer)
	Base() *BaseEntity
}

// Options 实体通用的可选样式，nil 表示不写出（使用格式默认值）
type Options struct {
	Color         *int     // 组码 62
	LineType      *string  // 组码 6，文档写出时补充线型表记录
	LineWeight    *int     // 组码 370
	LineTypeScale *float64 // 组码 48
	Transparency  *int     // 组码 440
	Visible       *bool    // 组码 60
	InPaperSpace  bool     // 组码 67
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Color, Handle）
type BaseEntity struct {
	Options
	TypeName         string
	SubclassName     string
	LayerName        string
	Handle           string
	OwnerBlockRecord string
}

func newBase(typeName, subclass string, options *Options) BaseEntity {
	b := BaseEntity{TypeName: typeName, SubclassName: subclass}
	if options != nil {
		b.Options = *options
	}
	return b
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

func (b *BaseEntity) Base() *BaseEntity { return b }

// Serialize 写出实体公共部分，顺序固定
func (b *BaseEntity) Serialize(w *core.Writer) {
	w.Type(b.TypeName)
	w.Handle(b.Handle)
	w.Push(330, b.OwnerBlockRecord)
	w.SubclassMarker("AcDbEntity")
	if b.InPaperSpace {
		w.Push(67, 1)
	}
	w.LayerName(layerOrZero(b.LayerName))
	w.Push(6, b.LineType)
	w.Push(62, b.Color)
	w.Push(370, b.LineWeight)
	w.Push(48, b.LineTypeScale)
	w.Push(440, b.Transparency)
	if b.Visible != nil {
		// 60: 0 可见，1 不可见
		w.Push(60, !*b.Visible)
	}
	if b.SubclassName != "" {
		w.SubclassMarker(b.SubclassName)
	}
}

func layerOrZero(name string) string {
	if name == "" {
		return "0"
	}
	return name
}

// compound 拥有子实体的实体（如 POLYLINE 的 VERTEX 与 SEQEND）
type compound interface {
	adopt(handles *core.Handles)
}
