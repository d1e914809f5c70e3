package drawing

import (
	"fmt"
	"math"
	"strings"

	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

var versions = map[string]dxf.Version{
	"R2000": dxf.R2000, "AC1015": dxf.R2000,
	"R2004": dxf.R2004, "AC1018": dxf.R2004,
	"R2007": dxf.R2007, "AC1021": dxf.R2007,
	"R2010": dxf.R2010, "AC1024": dxf.R2010,
	"R2013": dxf.R2013, "AC1027": dxf.R2013,
	"R2018": dxf.R2018, "AC1032": dxf.R2018,
}

var units = map[string]dxf.Units{
	"":         dxf.Unitless,
	"unitless": dxf.Unitless,
	"in":       dxf.Inches,
	"inch":     dxf.Inches,
	"inches":   dxf.Inches,
	"ft":       dxf.Feet,
	"feet":     dxf.Feet,
	"mm":       dxf.Millimeters,
	"cm":       dxf.Centimeters,
	"m":        dxf.Meters,
}

// Build 构建文档：先声明图层与块，再添加模型空间实体
func (f *File) Build() (*dxf.Document, error) {
	var options []dxf.Option

	if f.Version != "" {
		v, ok := versions[strings.ToUpper(f.Version)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown version %q", ErrInvalid, f.Version)
		}
		options = append(options, dxf.WithVersion(v))
	}
	u, ok := units[strings.ToLower(f.Units)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown units %q", ErrInvalid, f.Units)
	}
	options = append(options, dxf.WithUnits(u))
	if f.CodePage != "" {
		options = append(options, dxf.WithCodePage(f.CodePage))
	}
	if f.Layer != "" {
		options = append(options, dxf.WithLayer(f.Layer))
	}

	doc := dxf.New(options...)
	for _, l := range f.Layers {
		if l.Name == "" {
			return nil, fmt.Errorf("%w: layer without name", ErrInvalid)
		}
		doc.AddLayer(l.Name, l.Color, l.LineType)
	}

	for _, b := range f.Blocks {
		base, err := optionalPoint(b.Base)
		if err != nil {
			return nil, fmt.Errorf("block %q base: %w", b.Name, err)
		}
		block, err := doc.AddBlock(b.Name, base)
		if err != nil {
			return nil, err
		}
		for i, e := range b.Entities {
			if err = add(block.Manager, e); err != nil {
				return nil, fmt.Errorf("block %q entity %d: %w", b.Name, i, err)
			}
		}
	}

	for i, e := range f.Entities {
		if err := add(doc.ModelSpace().Manager, e); err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
	}

	dxf.Logger().Debug("drawing: built",
		"layers", len(doc.Layers()), "blocks", len(doc.Blocks()), "entities", len(doc.ModelSpace().Entities()))
	return doc, nil
}

// add 按 Kind 添加一个实体，图层只对该实体生效
func add(m *entities.Manager, e Entity) error {
	if e.Layer != "" {
		defer func(layer string) { m.LayerName = layer }(m.LayerName)
		m.LayerName = e.Layer
	}

	points, err := pointList(e.Points)
	if err != nil {
		return err
	}
	options := &entities.Options{Color: e.Color}

	switch strings.ToLower(e.Kind) {
	case "line":
		if err = need(points, 2); err != nil {
			return err
		}
		m.AddLine(points[0], points[1], options)
	case "point":
		if err = need(points, 1); err != nil {
			return err
		}
		m.AddPoint(points[0].X, points[0].Y, points[0].Z, options)
	case "circle":
		center, err := point(e.Center)
		if err != nil {
			return err
		}
		m.AddCircle(center, e.Radius, options)
	case "arc":
		center, err := point(e.Center)
		if err != nil {
			return err
		}
		m.AddArc(center, e.Radius, value(e.Start, 0), value(e.End, 360), options)
	case "ellipse":
		center, err := point(e.Center)
		if err != nil {
			return err
		}
		major, err := point(e.Major)
		if err != nil {
			return err
		}
		ratio := e.Ratio
		if ratio == 0 {
			ratio = 1
		}
		m.AddEllipse(center, major, ratio, value(e.Start, 0), value(e.End, 2*math.Pi), options)
	case "lwpolyline":
		vertices := make([]entities.LWPolylineVertex, len(points))
		for i, p := range points {
			vertices[i] = entities.LWPolylineVertex{Point: p}
		}
		lw := &entities.LWPolylineOptions{Options: *options}
		if e.Closed {
			lw.Flags |= entities.LWPolylineClosed
		}
		m.AddLWPolyline(vertices, lw)
	case "rectangle":
		if err = need(points, 2); err != nil {
			return err
		}
		rect := &entities.RectangleOptions{Fillet: e.Fillet}
		rect.Options = *options
		if e.Chamfer != nil {
			rect.Chamfer = &entities.Chamfer{First: *e.Chamfer}
		}
		if _, err = m.AddRectangle(points[0], points[1], rect); err != nil {
			return err
		}
	case "polyline3d":
		if err = need(points, 2); err != nil {
			return err
		}
		m.AddPolyline3D(points, &entities.PolylineOptions{Options: *options})
	case "spline":
		if err = need(points, 2); err != nil {
			return err
		}
		m.AddSpline(entities.SplineArgs{ControlPoints: points}, options)
	case "3dface":
		if err = need(points, 3); err != nil {
			return err
		}
		fourth := points[2]
		if len(points) > 3 {
			fourth = points[3]
		}
		m.Add3DFace(points[0], points[1], points[2], fourth, &entities.FaceOptions{Options: *options})
	case "text":
		if err = need(points, 1); err != nil {
			return err
		}
		text := &entities.TextOptions{Options: *options}
		if e.Rotation != 0 {
			text.Rotation = core.Ptr(e.Rotation)
		}
		m.AddText(points[0], e.Height, e.Text, text)
	case "insert":
		if err = need(points, 1); err != nil {
			return err
		}
		if e.Block == "" {
			return fmt.Errorf("%w: insert without block", ErrInvalid)
		}
		insert := &entities.InsertOptions{Options: *options, Rotation: e.Rotation}
		if e.Scale != 0 {
			insert.Scale = &core.Point{X: e.Scale, Y: e.Scale, Z: e.Scale}
		}
		m.AddInsert(e.Block, points[0], insert)
	case "hatch":
		if err = need(points, 3); err != nil {
			return err
		}
		path := &entities.HatchPolylinePath{Closed: true}
		for _, p := range points {
			path.Vertices = append(path.Vertices, entities.HatchPolylineVertex{Point: p})
		}
		fill := entities.SolidFill()
		if e.Pattern != "" {
			fill = entities.HatchFill{Pattern: &entities.HatchPattern{Name: e.Pattern, Angle: e.Angle, Scale: e.Scale}}
		}
		m.AddHatch([]entities.HatchBoundaryPath{path}, fill, &entities.HatchOptions{Options: *options})
	case "image":
		if err = need(points, 1); err != nil {
			return err
		}
		if e.Path == "" || e.Name == "" {
			return fmt.Errorf("%w: image needs path and name", ErrInvalid)
		}
		scale := e.Scale
		if scale == 0 {
			scale = 1
		}
		image := &entities.ImageOptions{Options: *options}
		if _, err = m.AddImage(e.Path, e.Name, points[0], e.Width, e.Height, scale, e.Rotation, image); err != nil {
			return err
		}
	case "aligned-dim":
		if err = need(points, 2); err != nil {
			return err
		}
		dim := &entities.AlignedDimOptions{Offset: e.Offset}
		dim.Options = *options
		m.AddAlignedDim(points[0], points[1], dim)
	case "linear-dim":
		if err = need(points, 2); err != nil {
			return err
		}
		dim := &entities.LinearDimOptions{Offset: e.Offset, Angle: e.Angle}
		dim.Options = *options
		m.AddLinearDim(points[0], points[1], dim)
	case "diameter-dim":
		if err = need(points, 2); err != nil {
			return err
		}
		dim := &entities.DiameterDimOptions{LeaderLength: e.Offset}
		dim.Options = *options
		m.AddDiameterDim(points[0], points[1], dim)
	case "radial-dim":
		if err = need(points, 2); err != nil {
			return err
		}
		dim := &entities.RadialDimOptions{LeaderLength: e.Offset}
		dim.Options = *options
		m.AddRadialDim(points[0], points[1], dim)
	default:
		return fmt.Errorf("%w: unknown entity kind %q", ErrInvalid, e.Kind)
	}
	return nil
}

func value(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func point(v []float64) (core.Point, error) {
	switch len(v) {
	case 2:
		return core.Pt(v[0], v[1]), nil
	case 3:
		return core.Pt3(v[0], v[1], v[2]), nil
	}
	return core.Point{}, fmt.Errorf("%w: point needs 2 or 3 coordinates, got %d", ErrInvalid, len(v))
}

func optionalPoint(v []float64) (core.Point, error) {
	if len(v) == 0 {
		return core.Point{}, nil
	}
	return point(v)
}

func pointList(vs [][]float64) ([]core.Point, error) {
	points := make([]core.Point, 0, len(vs))
	for _, v := range vs {
		p, err := point(v)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func need(points []core.Point, n int) error {
	if len(points) < n {
		return fmt.Errorf("%w: need at least %d points, got %d", ErrInvalid, n, len(points))
	}
	return nil
}
