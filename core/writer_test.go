package core

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Push(t *testing.T) {
	w := NewWriter()
	w.Push(1, "text")
	w.Push(40, 2.5)
	w.Push(41, 0.0)
	w.Push(42, 1e-7)
	w.Push(70, 3)
	w.Push(73, true)
	w.Push(74, false)
	w.Push(6, (*string)(nil))
	w.Push(62, (*int)(nil))
	w.Push(48, (*float64)(nil))
	w.Push(60, (*bool)(nil))
	w.Push(2, nil)
	w.Push(62, Ptr(256))
	w.Push(1, "")

	assert.Equal(t, []Tag{
		{1, "text"},
		{40, "2.5"},
		{41, "0"},
		{42, "0.0000001"},
		{70, "3"},
		{73, "1"},
		{74, "0"},
		{62, "256"},
		{1, ""},
	}, w.Tags())
	assert.Equal(t, 9, w.Len())
}

type testFlags int

type testScale float64

func TestWriter_PushPointers(t *testing.T) {
	w := NewWriter()
	w.Push(70, (*int64)(nil))
	w.Push(72, (*testFlags)(nil))
	w.Push(10, (*Point)(nil))
	w.Push(41, (*testScale)(nil))
	w.Push(1, any((*string)(nil)))
	assert.Zero(t, w.Len())

	w.Push(70, Ptr(int64(12)))
	w.Push(72, Ptr(testFlags(4)))
	w.Push(73, testFlags(2))
	w.Push(41, Ptr(testScale(0.5)))
	w.Push(42, testScale(0))
	w.Push(74, Ptr(Ptr(true)))
	w.Push(75, uint8(9))

	assert.Equal(t, []Tag{
		{70, "12"},
		{72, "4"},
		{73, "2"},
		{41, "0.5"},
		{42, "0"},
		{74, "1"},
		{75, "9"},
	}, w.Tags())
}

func TestWriter_Points(t *testing.T) {
	w := NewWriter()
	w.Point2D(Pt(1, 2))
	w.Point3D(Pt3(3, 4, 5), 1)

	assert.Equal(t, []Tag{
		{10, "1"}, {20, "2"},
		{11, "3"}, {21, "4"}, {31, "5"},
	}, w.Tags())
}

func TestWriter_Balanced(t *testing.T) {
	w := NewWriter()
	w.Start("TABLES")
	w.StartTable("LAYER")
	w.End()
	w.End()
	w.StartBlock()
	w.Name("B")
	w.End()
	w.Type("EOF")

	require.NoError(t, w.Err())
	text, err := w.Stringify()
	require.NoError(t, err)
	assert.Equal(t, "0\nSECTION\n2\nTABLES\n0\nTABLE\n2\nLAYER\n0\nENDTAB\n0\nENDSEC\n0\nBLOCK\n2\nB\n0\nENDBLK\n0\nEOF\n", text)

	tags, err := ReadTags(bytes.NewBufferString(text))
	require.NoError(t, err)
	assert.Equal(t, w.Tags(), tags)
}

func TestWriter_Unbalanced(t *testing.T) {
	open := NewWriter()
	open.Start("ENTITIES")
	_, err := open.Stringify()
	assert.True(t, errors.Is(err, ErrUnbalanced))

	extra := NewWriter()
	extra.End()
	extra.Start("HEADER")
	extra.End()
	assert.ErrorIs(t, extra.Err(), ErrUnbalanced)

	var buf bytes.Buffer
	n, err := extra.WriteTo(&buf)
	assert.ErrorIs(t, err, ErrUnbalanced)
	assert.Zero(t, n)
	assert.Zero(t, buf.Len())
}

func TestWriter_TagsIsCopy(t *testing.T) {
	w := NewWriter()
	w.Push(0, "LINE")
	tags := w.Tags()
	tags[0].Value = "CIRCLE"
	assert.Equal(t, "LINE", w.Tags()[0].Value)
}
