package entities

import (
	"math"
	"strings"

	"github.com/zooyer/dxfwriter/core"
)

// HatchBoundaryPath 填充边界，只有多段线边界和边集合边界两种
type HatchBoundaryPath interface {
	serialize(w *core.Writer)
	bbox() core.BBox
}

// 组码 92 边界类型
const (
	hatchPathExternal = 1
	hatchPathPolyline = 2
)

type HatchPolylineVertex struct {
	Point core.Point
	Bulge *float64
}

// HatchPolylinePath 多段线边界
type HatchPolylinePath struct {
	Vertices []HatchPolylineVertex
	Closed   bool
}

func (p *HatchPolylinePath) hasBulge() bool {
	for _, v := range p.Vertices {
		if v.Bulge != nil {
			return true
		}
	}
	return false
}

func (p *HatchPolylinePath) serialize(w *core.Writer) {
	w.Push(92, hatchPathExternal|hatchPathPolyline)
	hasBulge := p.hasBulge()
	w.Push(72, hasBulge)
	w.Push(73, p.Closed)
	w.Push(93, len(p.Vertices))
	for _, v := range p.Vertices {
		w.Point2D(v.Point)
		if hasBulge {
			bulge := 0.0
			if v.Bulge != nil {
				bulge = *v.Bulge
			}
			w.Push(42, bulge)
		}
	}
	w.Push(97, 0)
}

func (p *HatchPolylinePath) bbox() core.BBox {
	box := core.EmptyBBox()
	for _, v := range p.Vertices {
		box = box.Extend(v.Point)
	}
	return box
}

// HatchEdge 边集合边界中的一条边
type HatchEdge interface {
	edgeType() int
	serialize(w *core.Writer)
	bbox() core.BBox
}

type HatchLineEdge struct {
	Start, End core.Point
}

func (e HatchLineEdge) edgeType() int { return 1 }

func (e HatchLineEdge) serialize(w *core.Writer) {
	w.Point2D(e.Start)
	w.Point2D(e.End, 1)
}

func (e HatchLineEdge) bbox() core.BBox {
	return core.PointsBBox(e.Start, e.End)
}

// HatchArcEdge 圆弧边，角度为度
type HatchArcEdge struct {
	Center           core.Point
	Radius           float64
	StartAngle       float64
	EndAngle         float64
	CounterClockwise bool
}

func (e HatchArcEdge) edgeType() int { return 2 }

func (e HatchArcEdge) serialize(w *core.Writer) {
	w.Point2D(e.Center)
	w.Push(40, e.Radius)
	w.Push(50, e.StartAngle)
	w.Push(51, e.EndAngle)
	w.Push(73, e.CounterClockwise)
}

func (e HatchArcEdge) bbox() core.BBox {
	return core.CenterRadiusBBox(e.Center, e.Radius)
}

// HatchEdgesPath 边集合边界
type HatchEdgesPath struct {
	Edges []HatchEdge
}

func (p *HatchEdgesPath) serialize(w *core.Writer) {
	w.Push(92, hatchPathExternal)
	w.Push(93, len(p.Edges))
	for _, e := range p.Edges {
		w.Push(72, e.edgeType())
		e.serialize(w)
	}
	w.Push(97, 0)
}

func (p *HatchEdgesPath) bbox() core.BBox {
	box := core.EmptyBBox()
	for _, e := range p.Edges {
		box = box.Union(e.bbox())
	}
	return box
}

// HatchPatternLine 图案定义线
type HatchPatternLine struct {
	Angle  float64
	Base   core.Point
	Offset core.Point
	Dashes []float64
}

// HatchPattern 图案填充，Name 为 SOLID 时实体填充
type HatchPattern struct {
	Name   string
	Angle  float64
	Scale  float64
	Double bool
	Lines  []HatchPatternLine // 为空时使用内置定义
}

// HatchGradientType 组码 470
type HatchGradientType string

const (
	GradientLinear      HatchGradientType = "LINEAR"
	GradientCylinder    HatchGradientType = "CYLINDER"
	GradientInvCylinder HatchGradientType = "INVCYLINDER"
	GradientSpherical   HatchGradientType = "SPHERICAL"
	GradientHemiSpher   HatchGradientType = "HEMISPHERICAL"
	GradientCurved      HatchGradientType = "CURVED"
)

// HatchGradient 渐变填充，颜色为 ACI 颜色号
type HatchGradient struct {
	Type     HatchGradientType
	Color1   int
	Color2   *int // nil 表示单色渐变
	Angle    float64
	Centered bool
	Tint     float64
}

// HatchFill 图案与渐变二选一
type HatchFill struct {
	Pattern  *HatchPattern
	Gradient *HatchGradient
}

// SolidFill 实体填充
func SolidFill() HatchFill {
	return HatchFill{Pattern: &HatchPattern{Name: "SOLID", Scale: 1}}
}

// HatchStyle 组码 75
type HatchStyle int

const (
	HatchStyleOdd     HatchStyle = 0
	HatchStyleOutmost HatchStyle = 1
	HatchStyleEntire  HatchStyle = 2
)

type HatchOptions struct {
	Options
	Elevation float64
	Style     HatchStyle
}

type Hatch struct {
	BaseEntity
	Paths     []HatchBoundaryPath
	Fill      HatchFill
	Elevation float64
	Style     HatchStyle
}

// predefinedPatterns 内置图案（ACAD.PAT 中的定义）
var predefinedPatterns = map[string][]HatchPatternLine{
	"ANSI31": {
		{Angle: 45, Offset: core.Pt(-2.2450640303, 2.2450640303)},
	},
	"ANSI37": {
		{Angle: 45, Offset: core.Pt(-2.2450640303, 2.2450640303)},
		{Angle: 135, Offset: core.Pt(-2.2450640303, -2.2450640303)},
	},
	"NET": {
		{Angle: 0, Offset: core.Pt(0, 3.175)},
		{Angle: 90, Offset: core.Pt(-3.175, 0)},
	},
	"DASH": {
		{Angle: 0, Offset: core.Pt(3.175, 3.175), Dashes: []float64{3.175, -3.175}},
	},
}

func NewHatch(paths []HatchBoundaryPath, fill HatchFill, options *HatchOptions) *Hatch {
	if options == nil {
		options = &HatchOptions{}
	}
	if fill.Pattern == nil && fill.Gradient == nil {
		fill = SolidFill()
	}
	return &Hatch{
		BaseEntity: newBase("HATCH", "AcDbHatch", &options.Options),
		Paths:      paths,
		Fill:       fill,
		Elevation:  options.Elevation,
		Style:      options.Style,
	}
}

func (h *Hatch) solid() bool {
	return h.Fill.Gradient != nil || strings.EqualFold(h.Fill.Pattern.Name, "SOLID")
}

func (h *Hatch) patternName() string {
	if h.Fill.Gradient != nil {
		return "SOLID"
	}
	return strings.ToUpper(h.Fill.Pattern.Name)
}

func (h *Hatch) Serialize(w *core.Writer) {
	h.BaseEntity.Serialize(w)
	w.Point3D(core.Pt3(0, 0, h.Elevation))
	w.Point3D(core.Pt3(0, 0, 1), 200)
	w.Name(h.patternName())
	w.Push(70, h.solid())
	w.Push(71, 0)
	w.Push(91, len(h.Paths))
	for _, p := range h.Paths {
		p.serialize(w)
	}
	w.Push(75, int(h.Style))
	w.Push(76, 1)
	if !h.solid() {
		h.serializePattern(w)
	}
	w.Push(98, 0)
	if h.Fill.Gradient != nil {
		h.serializeGradient(w)
	}
}

func (h *Hatch) serializePattern(w *core.Writer) {
	p := h.Fill.Pattern
	scale := p.Scale
	if scale == 0 {
		scale = 1
	}
	lines := p.Lines
	if len(lines) == 0 {
		lines = predefinedPatterns[h.patternName()]
	}

	w.Push(52, p.Angle)
	w.Push(41, scale)
	w.Push(77, p.Double)
	w.Push(78, len(lines))
	for _, l := range lines {
		// 图案线随填充角度旋转、随比例缩放
		rad := p.Angle * math.Pi / 180.0
		base := rotate(l.Base.Scale(scale), rad)
		offset := rotate(l.Offset.Scale(scale), rad)
		w.Push(53, l.Angle+p.Angle)
		w.Push(43, base.X)
		w.Push(44, base.Y)
		w.Push(45, offset.X)
		w.Push(46, offset.Y)
		w.Push(79, len(l.Dashes))
		for _, d := range l.Dashes {
			w.Push(49, d*scale)
		}
	}
}

func (h *Hatch) serializeGradient(w *core.Writer) {
	g := h.Fill.Gradient
	w.Push(450, 1)
	w.Push(451, 0)
	w.Push(452, g.Color2 == nil)
	w.Push(453, 2)
	w.Push(460, g.Angle*math.Pi/180.0)
	w.Push(461, !g.Centered)
	w.Push(462, g.Tint)
	w.Push(463, 0)
	w.Push(63, g.Color1)
	w.Push(463, 1)
	if g.Color2 != nil {
		w.Push(63, *g.Color2)
	} else {
		w.Push(63, g.Color1)
	}
	name := g.Type
	if name == "" {
		name = GradientLinear
	}
	w.Push(470, string(name))
}

func rotate(p core.Point, rad float64) core.Point {
	cos, sin := math.Cos(rad), math.Sin(rad)
	return core.Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

func (h *Hatch) BBox() core.BBox {
	box := core.EmptyBBox()
	for _, p := range h.Paths {
		box = box.Union(p.bbox())
	}
	return box
}
