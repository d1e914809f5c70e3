package entities

import (
	"math"

	"github.com/zooyer/dxfwriter/core"
)

// DimensionType 组码 70 的低 3 位
type DimensionType int

const (
	DimensionRotated  DimensionType = 0 // 转角（线性）
	DimensionAligned  DimensionType = 1
	DimensionAngular  DimensionType = 2
	DimensionDiameter DimensionType = 3
	DimensionRadius   DimensionType = 4
)

// AttachmentPoint 组码 71，文字附着点
type AttachmentPoint int

const (
	AttachTopLeft AttachmentPoint = iota + 1
	AttachTopCenter
	AttachTopRight
	AttachMiddleLeft
	AttachMiddleCenter
	AttachMiddleRight
	AttachBottomLeft
	AttachBottomCenter
	AttachBottomRight
)

type DimensionOptions struct {
	Options
	BlockName         *string // 组码 2
	StyleName         string  // 组码 3，默认 Standard
	Attachment        AttachmentPoint
	LineSpacingStyle  *int     // 组码 72
	LineSpacingFactor *float64 // 组码 41
	Measurement       *float64 // 组码 42
	Text              *string  // 组码 1，"<>" 表示测量值
	TextRotation      *float64 // 组码 53
}

// Dimension 各类标注的公共部分
type Dimension struct {
	BaseEntity
	DimType           DimensionType
	BlockName         *string
	StyleName         string
	Attachment        AttachmentPoint
	LineSpacingStyle  *int
	LineSpacingFactor *float64
	Measurement       *float64
	Text              *string
	TextRotation      *float64
	DefPoint          core.Point // 组码 10
	TextMidPoint      core.Point // 组码 11
}

func newDimension(dimType DimensionType, options *DimensionOptions) Dimension {
	if options == nil {
		options = &DimensionOptions{}
	}
	d := Dimension{
		BaseEntity:        newBase("DIMENSION", "AcDbDimension", &options.Options),
		DimType:           dimType,
		BlockName:         options.BlockName,
		StyleName:         options.StyleName,
		Attachment:        options.Attachment,
		LineSpacingStyle:  options.LineSpacingStyle,
		LineSpacingFactor: options.LineSpacingFactor,
		Measurement:       options.Measurement,
		Text:              options.Text,
		TextRotation:      options.TextRotation,
	}
	if d.StyleName == "" {
		d.StyleName = "Standard"
	}
	if d.Attachment == 0 {
		d.Attachment = AttachMiddleCenter
	}
	return d
}

// serializeCommon 写出 AcDbDimension 部分
func (d *Dimension) serializeCommon(w *core.Writer) {
	d.BaseEntity.Serialize(w)
	w.Push(2, d.BlockName)
	w.Point3D(d.DefPoint)
	w.Point3D(d.TextMidPoint, 1)
	w.Push(70, int(d.DimType))
	w.Push(71, int(d.Attachment))
	w.Push(72, d.LineSpacingStyle)
	w.Push(41, d.LineSpacingFactor)
	w.Push(42, d.Measurement)
	w.Push(1, d.Text)
	w.Push(53, d.TextRotation)
	w.Push(3, d.StyleName)
}

// AlignedDimension 对齐标注，标注线平行于两测量点连线
type AlignedDimension struct {
	Dimension
	MeasureStart core.Point // 组码 13
	MeasureEnd   core.Point // 组码 14
	Offset       float64
}

type AlignedDimOptions struct {
	DimensionOptions
	Offset float64 // 标注线到测量点连线的距离，正值在左侧
}

func NewAlignedDimension(first, second core.Point, options *AlignedDimOptions) *AlignedDimension {
	if options == nil {
		options = &AlignedDimOptions{}
	}
	d := &AlignedDimension{
		Dimension:    newDimension(DimensionAligned, &options.DimensionOptions),
		MeasureStart: first,
		MeasureEnd:   second,
		Offset:       options.Offset,
	}
	d.place()
	return d
}

// place 根据偏移计算定义点与文字中点
func (d *AlignedDimension) place() {
	dir := unit(d.MeasureEnd.Sub(d.MeasureStart))
	n := core.Point{X: -dir.Y, Y: dir.X}.Scale(d.Offset)
	d.DefPoint = d.MeasureEnd.Add(n)
	d.TextMidPoint = midpoint(d.MeasureStart, d.MeasureEnd).Add(n)
}

func (d *AlignedDimension) Serialize(w *core.Writer) {
	d.serializeCommon(w)
	w.SubclassMarker("AcDbAlignedDimension")
	w.Point3D(d.MeasureStart, 3)
	w.Point3D(d.MeasureEnd, 4)
}

// BBox 包含所有定义点
func (d *AlignedDimension) BBox() core.BBox {
	return core.PointsBBox(d.DefPoint, d.TextMidPoint, d.MeasureStart, d.MeasureEnd)
}

// LinearDimension 线性（转角）标注，标注线方向由 Angle 决定
type LinearDimension struct {
	Dimension
	MeasureStart core.Point
	MeasureEnd   core.Point
	Angle        float64 // 组码 50，度
	Offset       float64
}

type LinearDimOptions struct {
	DimensionOptions
	Offset float64
	Angle  float64
}

func NewLinearDimension(first, second core.Point, options *LinearDimOptions) *LinearDimension {
	if options == nil {
		options = &LinearDimOptions{}
	}
	d := &LinearDimension{
		Dimension:    newDimension(DimensionRotated, &options.DimensionOptions),
		MeasureStart: first,
		MeasureEnd:   second,
		Angle:        options.Angle,
		Offset:       options.Offset,
	}
	d.place()
	return d
}

// ExtensionPoints 两个测量点在标注线上的投影（延伸线与标注线的交点）
func (d *LinearDimension) ExtensionPoints() (startCorner, endCorner core.Point) {
	// 将角度从角度制转为弧度制
	rad := d.Angle * math.Pi / 180.0
	v := core.Point{X: math.Cos(rad), Y: math.Sin(rad)}
	n := core.Point{X: -v.Y, Y: v.X}

	// 标注线经过第一个测量点沿法向偏移 Offset 后的点
	origin := d.MeasureStart.Add(n.Scale(d.Offset))
	return project(d.MeasureStart, origin, v), project(d.MeasureEnd, origin, v)
}

func (d *LinearDimension) place() {
	c1, c2 := d.ExtensionPoints()
	d.DefPoint = c2
	d.TextMidPoint = midpoint(c1, c2)
}

func (d *LinearDimension) Serialize(w *core.Writer) {
	d.serializeCommon(w)
	w.SubclassMarker("AcDbAlignedDimension")
	w.Point3D(d.MeasureStart, 3)
	w.Point3D(d.MeasureEnd, 4)
	w.Push(50, d.Angle)
	w.SubclassMarker("AcDbRotatedDimension")
}

func (d *LinearDimension) BBox() core.BBox {
	c1, c2 := d.ExtensionPoints()
	return core.PointsBBox(d.MeasureStart, d.MeasureEnd, c1, c2, d.TextMidPoint)
}

// DiameterDimension 直径标注，First 与 Second 为直径两端
type DiameterDimension struct {
	Dimension
	ChordPoint   core.Point // 组码 15
	LeaderLength float64    // 组码 40
}

type DiameterDimOptions struct {
	DimensionOptions
	LeaderLength float64
}

func NewDiameterDimension(first, second core.Point, options *DiameterDimOptions) *DiameterDimension {
	if options == nil {
		options = &DiameterDimOptions{}
	}
	d := &DiameterDimension{
		Dimension:    newDimension(DimensionDiameter, &options.DimensionOptions),
		ChordPoint:   second,
		LeaderLength: options.LeaderLength,
	}
	d.DefPoint = first
	d.TextMidPoint = midpoint(first, second)
	return d
}

func (d *DiameterDimension) Serialize(w *core.Writer) {
	d.serializeCommon(w)
	w.SubclassMarker("AcDbDiametricDimension")
	w.Point3D(d.ChordPoint, 5)
	w.Push(40, d.LeaderLength)
}

func (d *DiameterDimension) BBox() core.BBox {
	return core.PointsBBox(d.DefPoint, d.ChordPoint, d.TextMidPoint)
}

// RadialDimension 半径标注，First 为圆心，Second 为圆上一点
type RadialDimension struct {
	Dimension
	ChordPoint   core.Point
	LeaderLength float64
}

type RadialDimOptions struct {
	DimensionOptions
	LeaderLength float64
}

func NewRadialDimension(first, second core.Point, options *RadialDimOptions) *RadialDimension {
	if options == nil {
		options = &RadialDimOptions{}
	}
	d := &RadialDimension{
		Dimension:    newDimension(DimensionRadius, &options.DimensionOptions),
		ChordPoint:   second,
		LeaderLength: options.LeaderLength,
	}
	d.DefPoint = first
	d.TextMidPoint = second.Add(unit(second.Sub(first)).Scale(d.LeaderLength))
	return d
}

func (d *RadialDimension) Serialize(w *core.Writer) {
	d.serializeCommon(w)
	w.SubclassMarker("AcDbRadialDimension")
	w.Point3D(d.ChordPoint, 5)
	w.Push(40, d.LeaderLength)
}

func (d *RadialDimension) BBox() core.BBox {
	return core.PointsBBox(d.DefPoint, d.ChordPoint, d.TextMidPoint)
}

// project 点 p 在经过 origin、方向为单位向量 v 的直线上的投影
func project(p, origin, v core.Point) core.Point {
	d := p.Sub(origin)
	dot := d.X*v.X + d.Y*v.Y
	return core.Point{X: origin.X + v.X*dot, Y: origin.Y + v.Y*dot, Z: p.Z}
}

func midpoint(a, b core.Point) core.Point {
	return a.Add(b).Scale(0.5)
}

func unit(p core.Point) core.Point {
	l := core.Pt(p.X, p.Y).Len()
	if l == 0 {
		return core.Point{}
	}
	return core.Point{X: p.X / l, Y: p.Y / l}
}
