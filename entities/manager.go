package entities

import (
	"errors"
	"fmt"
	"math"

	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/objects"
)

// ErrFilletAndChamfer 矩形不能同时指定圆角和倒角
var ErrFilletAndChamfer = errors.New("dxf: rectangle cannot define both fillet and chamfer")

// Manager 实体容器，每个块（包括模型空间）一个
// 实体按添加顺序写出
type Manager struct {
	Handle    string // 块记录句柄
	LayerName string // 新实体的默认图层

	entities []Entity
	handles  *core.Handles
	objects  *objects.Section
}

func NewManager(handles *core.Handles, objs *objects.Section, layerName string) *Manager {
	return &Manager{
		Handle:    handles.Next(),
		LayerName: layerName,
		handles:   handles,
		objects:   objs,
	}
}

// Entities 按添加顺序返回实体
func (m *Manager) Entities() []Entity {
	return m.entities
}

// AddEntity 分配句柄，写入所属块与当前默认图层，追加到末尾
// 之后修改 m.LayerName 不影响已添加的实体
func (m *Manager) AddEntity(e Entity) Entity {
	b := e.Base()
	if b.Handle == "" {
		b.Handle = m.handles.Next()
	}
	b.OwnerBlockRecord = m.Handle
	b.LayerName = m.LayerName
	if c, ok := e.(compound); ok {
		c.adopt(m.handles)
	}
	m.entities = append(m.entities, e)

	core.Logger().Debug("dxf: entity added",
		"type", b.TypeName, "handle", b.Handle, "owner", m.Handle, "layer", b.LayerName)
	return e
}

// Add 与 AddEntity 相同，保留具体类型
func Add[T Entity](m *Manager, e T) T {
	m.AddEntity(e)
	return e
}

func (m *Manager) AddLine(start, end core.Point, options *Options) *Line {
	return Add(m, NewLine(start, end, options))
}

func (m *Manager) AddLWPolyline(vertices []LWPolylineVertex, options *LWPolylineOptions) *LWPolyline {
	return Add(m, NewLWPolyline(vertices, options))
}

// Chamfer 倒角距离，Second 为空或 0 时与 First 相同
type Chamfer struct {
	First  float64
	Second *float64
}

type RectangleOptions struct {
	LWPolylineOptions
	Fillet  *float64
	Chamfer *Chamfer
}

// AddRectangle 由左上角与右下角生成闭合多段线
// 圆角时每个角插入凸度为 tan(π/8) 的四分之一圆弧，倒角时插入直线切角
func (m *Manager) AddRectangle(topLeft, bottomRight core.Point, options *RectangleOptions) (*LWPolyline, error) {
	if options == nil {
		options = &RectangleOptions{}
	}
	if options.Fillet != nil && options.Chamfer != nil {
		return nil, ErrFilletAndChamfer
	}

	var (
		tX, tY   = topLeft.X, topLeft.Y
		bX, bY   = bottomRight.X, bottomRight.Y
		vertices []LWPolylineVertex
	)
	vertex := func(x, y float64) LWPolylineVertex {
		return LWPolylineVertex{Point: core.Pt(x, y)}
	}

	switch {
	case options.Fillet != nil:
		f := *options.Fillet
		b := rectangleBulge(topLeft, bottomRight)
		arc := func(x, y float64) LWPolylineVertex {
			v := vertex(x, y)
			v.Bulge = core.Ptr(b)
			return v
		}
		vertices = []LWPolylineVertex{
			arc(tX, tY-f), vertex(tX+f, tY),
			arc(bX-f, tY), vertex(bX, tY-f),
			arc(bX, bY+f), vertex(bX-f, bY),
			arc(tX+f, bY), vertex(tX, bY+f),
		}
	case options.Chamfer != nil:
		f := options.Chamfer.First
		s := f
		if options.Chamfer.Second != nil && *options.Chamfer.Second != 0 {
			s = *options.Chamfer.Second
		}
		vertices = []LWPolylineVertex{
			vertex(tX, tY-f), vertex(tX+s, tY),
			vertex(bX-f, tY), vertex(bX, tY-s),
			vertex(bX, bY+f), vertex(bX-s, bY),
			vertex(tX+f, bY), vertex(tX, bY+s),
		}
	default:
		vertices = []LWPolylineVertex{
			vertex(tX, tY), vertex(bX, tY),
			vertex(bX, bY), vertex(tX, bY),
		}
	}

	lw := options.LWPolylineOptions
	lw.Flags |= LWPolylineClosed
	return m.AddLWPolyline(vertices, &lw), nil
}

// rectangleBulge 四分之一圆弧的凸度，顺时针走向时为负
func rectangleBulge(topLeft, bottomRight core.Point) float64 {
	b := math.Tan(math.Pi / 8)
	if (bottomRight.X-topLeft.X)*(topLeft.Y-bottomRight.Y) > 0 {
		return -b
	}
	return b
}

func (m *Manager) AddPolyline3D(points []core.Point, options *PolylineOptions) *Polyline {
	return Add(m, NewPolyline(points, options))
}

func (m *Manager) AddPoint(x, y, z float64, options *Options) *Point {
	return Add(m, NewPoint(core.Pt3(x, y, z), options))
}

func (m *Manager) AddCircle(center core.Point, radius float64, options *Options) *Circle {
	return Add(m, NewCircle(center, radius, options))
}

func (m *Manager) AddArc(center core.Point, radius, startAngle, endAngle float64, options *Options) *Arc {
	return Add(m, NewArc(center, radius, startAngle, endAngle, options))
}

func (m *Manager) AddSpline(args SplineArgs, options *Options) *Spline {
	return Add(m, NewSpline(args, options))
}

func (m *Manager) AddEllipse(center, majorAxis core.Point, ratio, startParameter, endParameter float64, options *Options) *Ellipse {
	return Add(m, NewEllipse(center, majorAxis, ratio, startParameter, endParameter, options))
}

func (m *Manager) Add3DFace(first, second, third, fourth core.Point, options *FaceOptions) *Face {
	return Add(m, NewFace(first, second, third, fourth, options))
}

func (m *Manager) AddText(position core.Point, height float64, value string, options *TextOptions) *Text {
	return Add(m, NewText(position, height, value, options))
}

func (m *Manager) AddInsert(blockName string, insertionPoint core.Point, options *InsertOptions) *Insert {
	return Add(m, NewInsert(blockName, insertionPoint, options))
}

func (m *Manager) AddHatch(paths []HatchBoundaryPath, fill HatchFill, options *HatchOptions) *Hatch {
	return Add(m, NewHatch(paths, fill, options))
}

func (m *Manager) AddAlignedDim(first, second core.Point, options *AlignedDimOptions) *AlignedDimension {
	return Add(m, NewAlignedDimension(first, second, options))
}

func (m *Manager) AddDiameterDim(first, second core.Point, options *DiameterDimOptions) *DiameterDimension {
	return Add(m, NewDiameterDimension(first, second, options))
}

func (m *Manager) AddRadialDim(first, second core.Point, options *RadialDimOptions) *RadialDimension {
	return Add(m, NewRadialDimension(first, second, options))
}

func (m *Manager) AddLinearDim(first, second core.Point, options *LinearDimOptions) *LinearDimension {
	return Add(m, NewLinearDimension(first, second, options))
}

// AddImage 添加光栅图像及其 IMAGEDEF、IMAGEDEF_REACTOR 和 ACAD_IMAGE_DICT
//
// 分两步：先创建全部对象并关联句柄，再一次性注册。
// 同名图像复用已有 IMAGEDEF；同名不同路径时返回错误，且不注册任何东西。
func (m *Manager) AddImage(path, name string, insertionPoint core.Point, width, height, scale, rotation float64, options *ImageOptions) (*Image, error) {
	def, err := m.objects.LookupImageDef(name, path)
	if err != nil {
		return nil, fmt.Errorf("add image %q: %w", name, err)
	}

	// 1. 创建并关联
	var (
		dict    = m.objects.ImageDictionary()
		newDict = dict == nil
		newDef  = def == nil
	)
	if newDict {
		dict = m.objects.NewDictionary()
	}
	if newDef {
		def = m.objects.AddImageDef(path)
		def.Width, def.Height = width, height
		def.OwnerHandle = dict.Handle()
		def.ImageDictHandle = dict.Handle()
	}

	image := NewImage(insertionPoint, width, height, scale, rotation, options)
	image.Handle = m.handles.Next()
	image.ImageDefHandle = def.Handle()

	reactor := m.objects.AddImageDefReactor(image.Handle)
	image.ImageDefReactorHandle = reactor.Handle()

	// 2. 注册
	if newDict {
		m.objects.SetImageDictionary(dict)
	}
	if newDef {
		dict.AddEntryObject(name, def.Handle())
		m.objects.AddObject(def)
	}
	def.AddImageDefReactorHandle(reactor.Handle())
	m.objects.AddObject(reactor)
	m.AddEntity(image)

	core.Logger().Debug("dxf: image wired",
		"image", image.Handle, "imagedef", def.Handle(), "reactor", reactor.Handle(), "dictionary", dict.Handle())
	return image, nil
}

// BBox 所有实体的包围盒，没有实体时 ok 为 false
func (m *Manager) BBox() (box core.BBox, ok bool) {
	if len(m.entities) == 0 {
		return core.EmptyBBox(), false
	}
	box = core.EmptyBBox()
	for _, e := range m.entities {
		box = box.Union(e.BBox())
	}
	return box, !box.IsEmpty()
}

// CenterView 视图中心
func (m *Manager) CenterView() (core.Point, bool) {
	box, ok := m.BBox()
	if !ok {
		return core.Point{}, false
	}
	return box.Center(), true
}

// ViewHeight 视图高度
func (m *Manager) ViewHeight() (float64, bool) {
	box, ok := m.BBox()
	if !ok {
		return 0, false
	}
	return box.Height(), true
}

func (m *Manager) Serialize(w *core.Writer) {
	for _, e := range m.entities {
		e.Serialize(w)
	}
}
