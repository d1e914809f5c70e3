package entities

import "github.com/zooyer/dxfwriter/core"

// SplineFlags 组码 70
type SplineFlags int

const (
	SplineClosed   SplineFlags = 1
	SplinePeriodic SplineFlags = 2
	SplineRational SplineFlags = 4
	SplinePlanar   SplineFlags = 8
	SplineLinear   SplineFlags = 16
)

type SplineArgs struct {
	ControlPoints []core.Point
	FitPoints     []core.Point
	Degree        int         // 默认 3
	Flags         SplineFlags // 默认 SplinePlanar
	Knots         []float64   // 为空时生成钳制均匀节点
	Weights       []float64
	Normal        *core.Point
}

type Spline struct {
	BaseEntity
	ControlPoints []core.Point
	FitPoints     []core.Point
	Degree        int
	Flags         SplineFlags
	Knots         []float64
	Weights       []float64
	Normal        *core.Point
}

func NewSpline(args SplineArgs, options *Options) *Spline {
	s := &Spline{
		BaseEntity:    newBase("SPLINE", "AcDbSpline", options),
		ControlPoints: args.ControlPoints,
		FitPoints:     args.FitPoints,
		Degree:        args.Degree,
		Flags:         args.Flags,
		Knots:         args.Knots,
		Weights:       args.Weights,
		Normal:        args.Normal,
	}
	if s.Degree <= 0 {
		s.Degree = 3
	}
	if s.Flags == 0 {
		s.Flags = SplinePlanar
	}
	if len(s.Knots) == 0 {
		s.Knots = ClampedKnots(len(s.ControlPoints), s.Degree)
	}
	return s
}

// ClampedKnots 钳制均匀节点向量，长度为 n+degree+1
func ClampedKnots(n, degree int) []float64 {
	if n <= degree {
		return nil
	}
	knots := make([]float64, 0, n+degree+1)
	for i := 0; i <= degree; i++ {
		knots = append(knots, 0)
	}
	for i := 1; i < n-degree; i++ {
		knots = append(knots, float64(i))
	}
	for i := 0; i <= degree; i++ {
		knots = append(knots, float64(n-degree))
	}
	return knots
}

func (s *Spline) Serialize(w *core.Writer) {
	s.BaseEntity.Serialize(w)
	if s.Normal != nil {
		w.Point3D(*s.Normal, 200)
	}
	w.Push(70, int(s.Flags))
	w.Push(71, s.Degree)
	w.Push(72, len(s.Knots))
	w.Push(73, len(s.ControlPoints))
	w.Push(74, len(s.FitPoints))
	w.Push(42, "0.0000001")
	w.Push(43, "0.0000001")
	w.Push(44, "0.0000000001")
	for _, k := range s.Knots {
		w.Push(40, k)
	}
	for _, wt := range s.Weights {
		w.Push(41, wt)
	}
	for _, p := range s.ControlPoints {
		w.Point3D(p)
	}
	for _, p := range s.FitPoints {
		w.Point3D(p, 1)
	}
}

// BBox 按控制点近似，不是曲线的精确范围
func (s *Spline) BBox() core.BBox {
	if len(s.ControlPoints) == 0 {
		return core.PointsBBox(s.FitPoints...)
	}
	return core.PointsBBox(s.ControlPoints...)
}
