package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
)

func TestInspect_Document(t *testing.T) {
	doc := dxf.New(dxf.WithUnits(dxf.Millimeters))
	doc.ModelSpace().AddLine(core.Pt(0, 0), core.Pt(1, 1), nil)
	doc.ModelSpace().AddLine(core.Pt(1, 1), core.Pt(2, 0), nil)
	doc.ModelSpace().AddCircle(core.Pt(0, 0), 1, nil)

	text, err := doc.Stringify()
	require.NoError(t, err)
	tags, err := core.ReadTags(strings.NewReader(text))
	require.NoError(t, err)

	r := inspect(tags)
	assert.True(t, r.Balanced)
	assert.True(t, r.EOF)
	assert.Equal(t, []string{"HEADER", "TABLES", "BLOCKS", "ENTITIES", "OBJECTS"}, r.Sections)
	assert.Equal(t, 2, r.Counts["ENTITIES/LINE"])
	assert.Equal(t, 1, r.Counts["ENTITIES/CIRCLE"])
	assert.Equal(t, 2, r.Counts["OBJECTS/DICTIONARY"])
	assert.Equal(t, 4, r.Units)
	assert.Equal(t, core.Pt(-1, -1), r.ExtMin)
	assert.Equal(t, core.Pt(2, 1), r.ExtMax)

	var out bytes.Buffer
	r.print(&out)
	assert.Contains(t, out.String(), "ENTITIES/LINE")
}

func TestInspect_Unbalanced(t *testing.T) {
	tags := []core.Tag{
		{Code: 0, Value: "SECTION"}, {Code: 2, Value: "ENTITIES"},
		{Code: 0, Value: "ENDTAB"},
	}
	r := inspect(tags)
	assert.False(t, r.Balanced)
	assert.False(t, r.EOF)
}
