package entities

import (
	"math"

	"github.com/zooyer/dxfwriter/core"
)

// ImageDisplayFlags 组码 70
type ImageDisplayFlags int

const (
	ImageShow                ImageDisplayFlags = 1
	ImageShowNotAligned      ImageDisplayFlags = 2
	ImageUseClippingBoundary ImageDisplayFlags = 4
	ImageTransparencyOn      ImageDisplayFlags = 8
)

// ImageClippingType 组码 71
type ImageClippingType int

const (
	ImageClipRectangle ImageClippingType = 1
	ImageClipPolygon   ImageClippingType = 2
)

type ImageOptions struct {
	Options
	DisplayFlags *ImageDisplayFlags // 默认 显示|不对齐时显示|使用裁剪边界
	Clipping     bool               // 组码 280
	Brightness   *int               // 组码 281，默认 50
	Contrast     *int               // 组码 282，默认 50
	Fade         int                // 组码 283
	ClipType     ImageClippingType  // 默认矩形
	ClipVertices []core.Point       // 像素坐标，默认整幅图像
}

// Image 光栅图像，Width/Height 为像素数，Scale 为每像素的图形单位
type Image struct {
	BaseEntity
	InsertionPoint        core.Point
	Width                 float64
	Height                float64
	Scale                 float64
	Rotation              float64 // 度
	ImageDefHandle        string  // 组码 340
	ImageDefReactorHandle string  // 组码 360
	DisplayFlags          ImageDisplayFlags
	Clipping              bool
	Brightness            int
	Contrast              int
	Fade                  int
	ClipType              ImageClippingType
	ClipVertices          []core.Point
}

func NewImage(insertionPoint core.Point, width, height, scale, rotation float64, options *ImageOptions) *Image {
	if options == nil {
		options = &ImageOptions{}
	}
	img := &Image{
		BaseEntity:     newBase("IMAGE", "AcDbRasterImage", &options.Options),
		InsertionPoint: insertionPoint,
		Width:          width,
		Height:         height,
		Scale:          scale,
		Rotation:       rotation,
		DisplayFlags:   ImageShow | ImageShowNotAligned | ImageUseClippingBoundary,
		Clipping:       options.Clipping,
		Brightness:     50,
		Contrast:       50,
		Fade:           options.Fade,
		ClipType:       ImageClipRectangle,
		ClipVertices:   options.ClipVertices,
	}
	if options.DisplayFlags != nil {
		img.DisplayFlags = *options.DisplayFlags
	}
	if options.Brightness != nil {
		img.Brightness = *options.Brightness
	}
	if options.Contrast != nil {
		img.Contrast = *options.Contrast
	}
	if options.ClipType != 0 {
		img.ClipType = options.ClipType
	}
	if len(img.ClipVertices) == 0 {
		img.ClipVertices = []core.Point{
			core.Pt(-0.5, -0.5),
			core.Pt(width-0.5, height-0.5),
		}
	}
	return img
}

// UV 每像素在 U（宽）和 V（高）方向上的向量
func (i *Image) UV() (u, v core.Point) {
	rad := i.Rotation * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)
	u = core.Point{X: i.Scale * cos, Y: i.Scale * sin}
	v = core.Point{X: -i.Scale * sin, Y: i.Scale * cos}
	return
}

func (i *Image) Serialize(w *core.Writer) {
	i.BaseEntity.Serialize(w)
	u, v := i.UV()
	w.Push(90, 0)
	w.Point3D(i.InsertionPoint)
	w.Point3D(u, 1)
	w.Point3D(v, 2)
	w.Push(13, i.Width)
	w.Push(23, i.Height)
	w.Push(340, i.ImageDefHandle)
	w.Push(70, int(i.DisplayFlags))
	w.Push(280, i.Clipping)
	w.Push(281, i.Brightness)
	w.Push(282, i.Contrast)
	w.Push(283, i.Fade)
	w.Push(360, i.ImageDefReactorHandle)
	w.Push(71, int(i.ClipType))
	w.Push(91, len(i.ClipVertices))
	for _, c := range i.ClipVertices {
		w.Push(14, c.X)
		w.Push(24, c.Y)
	}
}

// BBox 旋转缩放后的四个角点
func (i *Image) BBox() core.BBox {
	u, v := i.UV()
	var (
		p  = i.InsertionPoint
		du = u.Scale(i.Width)
		dv = v.Scale(i.Height)
	)
	return core.PointsBBox(p, p.Add(du), p.Add(du).Add(dv), p.Add(dv))
}
