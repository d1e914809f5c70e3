package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertBox(t *testing.T, want, got BBox) {
	t.Helper()
	const eps = 1e-9
	assert.InDelta(t, want.Min.X, got.Min.X, eps, "min x")
	assert.InDelta(t, want.Min.Y, got.Min.Y, eps, "min y")
	assert.InDelta(t, want.Max.X, got.Max.X, eps, "max x")
	assert.InDelta(t, want.Max.Y, got.Max.Y, eps, "max y")
}

func TestBBox_Empty(t *testing.T) {
	empty := EmptyBBox()
	assert.True(t, empty.IsEmpty())
	assert.True(t, MergeBBox().IsEmpty())
	assert.True(t, PointsBBox().IsEmpty())

	box := BBox{Min: Pt(1, 2), Max: Pt(3, 4)}
	assert.Equal(t, box, empty.Union(box))
	assert.Equal(t, box, box.Union(empty))
	assert.False(t, PointBBox(Pt(1, 1)).IsEmpty())
}

func TestBBox_Merge(t *testing.T) {
	a := BBox{Min: Pt(0, 0), Max: Pt(1, 1)}
	b := BBox{Min: Pt(-2, 0.5), Max: Pt(0.5, 3)}
	got := MergeBBox(a, EmptyBBox(), b)

	assert.Equal(t, BBox{Min: Pt(-2, 0), Max: Pt(1, 3)}, got)
	assert.Equal(t, 3.0, got.Width())
	assert.Equal(t, 3.0, got.Height())
	assert.Equal(t, Pt(-0.5, 1.5), got.Center())
}

func TestBBox_CenterRadius(t *testing.T) {
	box := CenterRadiusBBox(Pt3(1, 1, 5), 2)
	assert.Equal(t, BBox{Min: Pt3(-1, -1, 5), Max: Pt3(3, 3, 5)}, box)
}

func TestArcBBox(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		want       BBox
	}{
		{"quarter", 0, 90, BBox{Min: Pt(0, 0), Max: Pt(1, 1)}},
		{"half", 0, 180, BBox{Min: Pt(-1, 0), Max: Pt(1, 1)}},
		{"full", 0, 360, BBox{Min: Pt(-1, -1), Max: Pt(1, 1)}},
		{"wrap", 350, 10, BBox{
			Min: Pt(math.Cos(10*math.Pi/180), -math.Sin(10*math.Pi/180)),
			Max: Pt(1, math.Sin(10*math.Pi/180)),
		}},
		{"negative", -90, 0, BBox{Min: Pt(0, -1), Max: Pt(1, 0)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertBox(t, c.want, ArcBBox(Point{}, 1, c.start, c.end))
		})
	}
}

func TestPoint_Equal(t *testing.T) {
	assert.True(t, Pt(1, 2).Equal(Pt(1+1e-10, 2), 1e-9))
	assert.False(t, Pt(1, 2).Equal(Pt(1.1, 2), 1e-9))
	assert.Equal(t, 5.0, Pt(0, 0).Distance(Pt(3, 4)))
}
