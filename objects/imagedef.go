package objects

import "github.com/zooyer/dxfwriter/core"

// ResolutionUnits 组码 281
type ResolutionUnits int

const (
	ResolutionNone        ResolutionUnits = 0
	ResolutionCentimeters ResolutionUnits = 2
	ResolutionInch        ResolutionUnits = 5
)

// ImageDef 图像定义，被 IMAGE 实体通过 340 引用
type ImageDef struct {
	BaseObject
	Path            string
	ImageDictHandle string   // ACAD_IMAGE_DICT 字典句柄
	ReactorHandles  []string // IMAGEDEF_REACTOR 句柄
	Width           float64  // 像素
	Height          float64
	PixelWidth      float64 // 每像素的图形单位
	PixelHeight     float64
	Loaded          bool
	ResolutionUnits ResolutionUnits
}

func newImageDef(handle, path string) *ImageDef {
	return &ImageDef{
		BaseObject:  BaseObject{TypeName: "IMAGEDEF", handle: handle},
		Path:        path,
		Width:       1,
		Height:      1,
		PixelWidth:  1,
		PixelHeight: 1,
		Loaded:      true,
	}
}

func (d *ImageDef) AddImageDefReactorHandle(handle string) {
	d.ReactorHandles = append(d.ReactorHandles, handle)
}

func (d *ImageDef) Serialize(w *core.Writer) {
	reactors := append([]string{d.ImageDictHandle}, d.ReactorHandles...)
	d.serialize(w, reactors...)
	w.SubclassMarker("AcDbRasterImageDef")
	w.Push(90, 0)
	w.Push(1, d.Path)
	w.Point2D(core.Pt(d.Width, d.Height))
	w.Point2D(core.Pt(d.PixelWidth, d.PixelHeight), 1)
	w.Push(280, d.Loaded)
	w.Push(281, int(d.ResolutionUnits))
}

// ImageDefReactor 记录 IMAGE 与 IMAGEDEF 的关联，所有者为图像实体
type ImageDefReactor struct {
	BaseObject
	ImageHandle string
}

func newImageDefReactor(handle, imageHandle string) *ImageDefReactor {
	return &ImageDefReactor{
		BaseObject:  BaseObject{TypeName: "IMAGEDEF_REACTOR", handle: handle, OwnerHandle: imageHandle},
		ImageHandle: imageHandle,
	}
}

func (r *ImageDefReactor) Serialize(w *core.Writer) {
	r.serialize(w)
	w.SubclassMarker("AcDbRasterImageDefReactor")
	w.Push(90, 2)
	w.Push(330, r.ImageHandle)
}
