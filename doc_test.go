package dxf

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
)

func render(t *testing.T, d *Document) []core.Tag {
	t.Helper()
	text, err := d.Stringify()
	require.NoError(t, err)
	tags, err := core.ReadTags(strings.NewReader(text))
	require.NoError(t, err)
	return tags
}

// headerValue 返回 $ 变量后的第一个标签
func headerValue(tags []core.Tag, name string) []core.Tag {
	for i, t := range tags {
		if t.Code == 9 && t.Value == name {
			end := i + 1
			for end < len(tags) && tags[end].Code != 9 && tags[end].Code != 0 {
				end++
			}
			return tags[i+1 : end]
		}
	}
	return nil
}

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	d := New(WithUnits(Millimeters))
	ms := d.ModelSpace()
	ms.AddLine(core.Pt(0, 0), core.Pt(10, 5), nil)
	ms.LayerName = "WALLS"
	ms.AddCircle(core.Pt(5, 5), 2, nil)
	ms.LayerName = "0"
	_, err := ms.AddRectangle(core.Pt(0, 5), core.Pt(5, 0), &entities.RectangleOptions{Fillet: core.Ptr(1.0)})
	require.NoError(t, err)
	ms.AddPolyline3D([]core.Point{core.Pt3(0, 0, 0), core.Pt3(1, 1, 1)}, nil)
	_, err = ms.AddImage("logo.png", "logo", core.Pt(20, 0), 100, 50, 0.1, 0, nil)
	require.NoError(t, err)
	ms.AddText(core.Pt(0, -5), 2.5, "café", nil)
	return d
}

func TestDocument_Structure(t *testing.T) {
	tags := render(t, sampleDocument(t))

	var (
		sections []string
		eof      int
		depth    int
	)
	for i, tag := range tags {
		if tag.Code != 0 {
			continue
		}
		switch tag.Value {
		case "SECTION":
			depth++
			sections = append(sections, tags[i+1].Value)
		case "ENDSEC":
			depth--
		case "EOF":
			eof++
		}
	}
	assert.Equal(t, []string{"HEADER", "TABLES", "BLOCKS", "ENTITIES", "OBJECTS"}, sections)
	assert.Zero(t, depth)
	assert.Equal(t, 1, eof)
	assert.Equal(t, core.Tag{Code: 0, Value: "EOF"}, tags[len(tags)-1])
}

func TestDocument_Header(t *testing.T) {
	d := sampleDocument(t)
	tags := render(t, d)

	assert.Equal(t, []core.Tag{{1, "AC1021"}}, headerValue(tags, "$ACADVER"))
	assert.Equal(t, []core.Tag{{70, "4"}}, headerValue(tags, "$INSUNITS"))
	assert.Equal(t, []core.Tag{{3, "ANSI_1252"}}, headerValue(tags, "$DWGCODEPAGE"))
	assert.Len(t, headerValue(tags, "$EXTMIN"), 3)

	guid := headerValue(tags, "$FINGERPRINTGUID")
	require.Len(t, guid, 1)
	assert.Len(t, guid[0].Value, 38)
	assert.True(t, strings.HasPrefix(guid[0].Value, "{"))

	// HANDSEED 大于所有已用句柄，句柄不重复
	seedTags := headerValue(tags, "$HANDSEED")
	require.Len(t, seedTags, 1)
	seed, err := strconv.ParseUint(seedTags[0].Value, 16, 64)
	require.NoError(t, err)
	assert.Equal(t, d.Handles().Peek(), seedTags[0].Value)

	seen := make(map[string]bool)
	for i, tag := range tags {
		if tag.Code != 5 && tag.Code != 105 || tags[i-1].Value == "$HANDSEED" {
			continue
		}
		assert.Falsef(t, seen[tag.Value], "duplicate handle %s", tag.Value)
		seen[tag.Value] = true

		n, err := strconv.ParseUint(tag.Value, 16, 64)
		require.NoError(t, err)
		assert.Less(t, n, seed)
	}
}

func TestDocument_StableRendering(t *testing.T) {
	d := sampleDocument(t)
	first, err := d.Stringify()
	require.NoError(t, err)
	second, err := d.Stringify()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, first, d.String())
}

func TestDocument_Layers(t *testing.T) {
	d := sampleDocument(t)
	d.AddLayer("DOORS", 3, "")
	tags := render(t, d)

	var names []string
	for i, tag := range tags {
		if tag.Code == 100 && tag.Value == "AcDbLayerTableRecord" {
			names = append(names, tags[i+1].Value)
		}
	}
	assert.Equal(t, []string{"0", "DOORS", "WALLS"}, names)
	assert.Same(t, d.AddLayer("walls", 1, ""), d.Layers()[2])
}

func TestDocument_LineTypes(t *testing.T) {
	d := New()
	dashed := d.AddLineType("DASHED", "Dashed __ __", 0.5, -0.25)
	require.NotNil(t, dashed)
	assert.Same(t, dashed, d.AddLineType("dashed", ""))
	assert.Nil(t, d.AddLineType("continuous", ""))

	d.AddLayer("HIDDEN", 1, "HIDDEN")
	d.ModelSpace().AddLine(core.Pt(0, 0), core.Pt(1, 1), &entities.Options{LineType: core.Ptr("CENTER")})
	d.ModelSpace().AddLine(core.Pt(0, 0), core.Pt(1, 1), &entities.Options{LineType: core.Ptr("ByLayer")})
	tags := render(t, d)

	var names []string
	for i, tag := range tags {
		if tag.Code == 100 && tag.Value == "AcDbLinetypeTableRecord" {
			names = append(names, tags[i+1].Value)
		}
	}
	assert.Equal(t, []string{"ByBlock", "ByLayer", "Continuous", "DASHED", "HIDDEN", "CENTER"}, names)

	// 图形线型写出总长与每段长度
	for i, tag := range tags {
		if tag.Code == 2 && tag.Value == "DASHED" {
			assert.Equal(t, []core.Tag{
				{70, "0"}, {3, "Dashed __ __"}, {72, "65"}, {73, "2"}, {40, "0.75"},
				{49, "0.5"}, {74, "0"}, {49, "-0.25"}, {74, "0"},
			}, tags[i+1:i+10])
		}
	}
}

func TestDocument_Blocks(t *testing.T) {
	d := New()
	door, err := d.AddBlock("DOOR", core.Pt(0, 0))
	require.NoError(t, err)
	door.AddLine(core.Pt(0, 0), core.Pt(1, 2), nil)

	_, err = d.AddBlock("door", core.Pt(0, 0))
	assert.ErrorIs(t, err, ErrDuplicateBlock)
	_, err = d.AddBlock("*MODEL_SPACE", core.Pt(0, 0))
	assert.ErrorIs(t, err, ErrDuplicateBlock)
	assert.Same(t, door, d.Block("Door"))

	d.ModelSpace().AddInsert("DOOR", core.Pt(10, 10), nil)
	tags := render(t, d)

	var blocks []string
	for i, tag := range tags {
		if tag.Code == 100 && tag.Value == "AcDbBlockBegin" {
			blocks = append(blocks, tags[i+1].Value)
		}
	}
	assert.Equal(t, []string{"*Model_Space", "*Paper_Space", "DOOR"}, blocks)

	// 块内实体写在 BLOCKS 段，所属为块记录
	var owners []string
	for i, tag := range tags {
		if tag.Code == 0 && tag.Value == "LINE" {
			owners = append(owners, tags[i+2].Value)
		}
	}
	assert.Equal(t, []string{door.Handle}, owners)
}

func TestDocument_Extents(t *testing.T) {
	d := New()
	_, ok := d.Extents()
	assert.False(t, ok)

	door, err := d.AddBlock("DOOR", core.Pt(0, 0))
	require.NoError(t, err)
	door.AddLine(core.Pt(0, 0), core.Pt(1, 2), nil)

	win, err := d.AddBlock("WIN", core.Pt(0, 0))
	require.NoError(t, err)
	win.AddInsert("DOOR", core.Pt(5, 0), nil)

	ms := d.ModelSpace()
	ms.AddInsert("DOOR", core.Pt(10, 10), &entities.InsertOptions{Scale: &core.Point{X: 2, Y: 2, Z: 1}})
	box, ok := d.Extents()
	require.True(t, ok)
	assert.True(t, box.Min.Equal(core.Pt(10, 10), 1e-9))
	assert.True(t, box.Max.Equal(core.Pt(12, 14), 1e-9))

	ms.AddInsert("WIN", core.Pt(100, 0), nil)
	box, ok = d.Extents()
	require.True(t, ok)
	assert.True(t, box.Min.Equal(core.Pt(10, 0), 1e-9))
	assert.True(t, box.Max.Equal(core.Pt(106, 14), 1e-9))

	// 未定义的块只计插入点
	ms.AddInsert("MISSING", core.Pt(-5, -5), nil)
	box, _ = d.Extents()
	assert.True(t, box.Min.Equal(core.Pt(-5, -5), 1e-9))
}

func TestDocument_ActiveViewport(t *testing.T) {
	d := New()
	door, err := d.AddBlock("DOOR", core.Pt(0, 0))
	require.NoError(t, err)
	door.AddLine(core.Pt(0, 0), core.Pt(4, 20), nil)
	d.ModelSpace().AddInsert("DOOR", core.Pt(10, 10), nil)

	tags := render(t, d)
	var vport []core.Tag
	for i, tag := range tags {
		if tag.Code == 2 && tag.Value == "*Active" {
			vport = tags[i:]
			break
		}
	}
	require.NotEmpty(t, vport)

	find := func(code int) string {
		for _, tag := range vport {
			if tag.Code == code {
				return tag.Value
			}
		}
		return ""
	}
	assert.Equal(t, "12", find(12))
	assert.Equal(t, "20", find(22))
	assert.Equal(t, "20", find(40))
}

func TestDocument_CodePage(t *testing.T) {
	legacy := New(WithVersion(R2000))
	legacy.ModelSpace().AddText(core.Pt(0, 0), 1, "café", nil)
	var buf bytes.Buffer
	_, err := legacy.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "caf\xe9\n")

	modern := New()
	modern.ModelSpace().AddText(core.Pt(0, 0), 1, "café", nil)
	buf.Reset()
	_, err = modern.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "café\n")
}

func TestDocument_Save(t *testing.T) {
	d := sampleDocument(t)
	var want bytes.Buffer
	_, err := d.WriteTo(&want)
	require.NoError(t, err)

	var logs bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	defer SetLogger(nil)

	for _, name := range []string{"plain.dxf", "packed.dxf.gz", "packed.dxf.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, d.Save(path))

			file, err := Open(path)
			require.NoError(t, err)
			defer file.Close()

			got, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, want.String(), string(got))
		})
	}
	assert.Contains(t, logs.String(), "document saved")
}

// openSection 只写出 SECTION 开头的实体
type openSection struct {
	entities.BaseEntity
}

func (o *openSection) BBox() core.BBox { return core.EmptyBBox() }

func (o *openSection) Serialize(w *core.Writer) { w.Start("BROKEN") }

func TestDocument_SaveUnbalanced(t *testing.T) {
	d := New()
	d.ModelSpace().AddEntity(&openSection{BaseEntity: entities.BaseEntity{TypeName: "BROKEN"}})

	for _, name := range []string{"broken.dxf", "broken.dxf.gz"} {
		path := filepath.Join(t.TempDir(), name)
		err := d.Save(path)
		assert.ErrorIs(t, err, core.ErrUnbalanced)

		_, err = os.Stat(path)
		assert.Truef(t, os.IsNotExist(err), "%s should not be created", name)
	}
}

func TestDocument_ObjectsSection(t *testing.T) {
	tags := render(t, sampleDocument(t))

	var types []string
	inObjects := false
	for i, tag := range tags {
		if tag.Code == 2 && tag.Value == "OBJECTS" && tags[i-1].Value == "SECTION" {
			inObjects = true
			continue
		}
		if inObjects && tag.Code == 0 {
			if tag.Value == "ENDSEC" {
				break
			}
			types = append(types, tag.Value)
		}
	}
	assert.Equal(t, []string{"DICTIONARY", "DICTIONARY", "DICTIONARY", "IMAGEDEF", "IMAGEDEF_REACTOR"}, types)
}
