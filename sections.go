package dxf

import (
	"math"

	"github.com/zooyer/dxfwriter/core"
)

// 固定表与表记录，句柄在 New 中按此顺序分配
const (
	tableVPort       = "TABLE:VPORT"
	tableLType       = "TABLE:LTYPE"
	tableLayer       = "TABLE:LAYER"
	tableStyle       = "TABLE:STYLE"
	tableView        = "TABLE:VIEW"
	tableUCS         = "TABLE:UCS"
	tableAppID       = "TABLE:APPID"
	tableDimStyle    = "TABLE:DIMSTYLE"
	tableBlockRecord = "TABLE:BLOCK_RECORD"

	recordActiveVPort = "VPORT:*ACTIVE"
	recordByBlock     = "LTYPE:BYBLOCK"
	recordByLayer     = "LTYPE:BYLAYER"
	recordContinuous  = "LTYPE:CONTINUOUS"
	recordStandard    = "STYLE:STANDARD"
	recordAcad        = "APPID:ACAD"
	recordDimStandard = "DIMSTYLE:STANDARD"
)

var fixedRecords = []string{
	tableVPort, tableLType, tableLayer, tableStyle, tableView, tableUCS,
	tableAppID, tableDimStyle, tableBlockRecord,
	recordActiveVPort, recordByBlock, recordByLayer, recordContinuous,
	recordStandard, recordAcad, recordDimStandard,
}

// headerVar 写出一个 $ 变量名
func headerVar(w *core.Writer, name string) {
	w.Push(9, name)
}

func (d *Document) serializeHeader(w *core.Writer) {
	w.Start("HEADER")

	headerVar(w, "$ACADVER")
	w.Push(1, string(d.Version))

	// 写出 HANDSEED 之后不再分配句柄
	headerVar(w, "$HANDSEED")
	w.Push(5, d.handles.Peek())

	headerVar(w, "$INSUNITS")
	w.Push(70, int(d.Units))

	headerVar(w, "$DWGCODEPAGE")
	w.Push(3, d.CodePage)

	box, ok := d.Extents()
	if !ok {
		box = core.BBox{}
	}
	headerVar(w, "$EXTMIN")
	w.Point3D(box.Min)
	headerVar(w, "$EXTMAX")
	w.Point3D(box.Max)

	headerVar(w, "$FINGERPRINTGUID")
	w.Push(2, d.fingerprint)
	headerVar(w, "$VERSIONGUID")
	w.Push(2, d.versionGUID)

	w.End()
}

// startTable 写出表头
func (d *Document) startTable(w *core.Writer, name string, count int) {
	w.StartTable(name)
	w.Handle(d.fixed["TABLE:"+name])
	w.Push(330, "0")
	w.SubclassMarker("AcDbSymbolTable")
	w.Push(70, count)
}

// record 表记录的公共头部
func record(w *core.Writer, typeName, handle, owner, subclass string) {
	w.Type(typeName)
	if typeName == "DIMSTYLE" {
		w.Push(105, handle)
	} else {
		w.Handle(handle)
	}
	w.Push(330, owner)
	w.SubclassMarker("AcDbSymbolTableRecord")
	w.SubclassMarker(subclass)
}

func (d *Document) serializeTables(w *core.Writer) {
	w.Start("TABLES")
	d.serializeVPorts(w)
	d.serializeLineTypes(w)
	d.serializeLayers(w)
	d.serializeStyles(w)

	d.startTable(w, "VIEW", 0)
	w.End()
	d.startTable(w, "UCS", 0)
	w.End()

	d.startTable(w, "APPID", 1)
	record(w, "APPID", d.fixed[recordAcad], d.fixed[tableAppID], "AcDbRegAppTableRecord")
	w.Name("ACAD")
	w.Push(70, 0)
	w.End()

	d.startTable(w, "DIMSTYLE", 1)
	w.SubclassMarker("AcDbDimStyleTable")
	record(w, "DIMSTYLE", d.fixed[recordDimStandard], d.fixed[tableDimStyle], "AcDbDimStyleTableRecord")
	w.Name("Standard")
	w.Push(70, 0)
	w.End()

	d.serializeBlockRecords(w)
	w.End()
}

// serializeVPorts *Active 视口按文档范围（含块参照展开）居中
func (d *Document) serializeVPorts(w *core.Writer) {
	var (
		center core.Point
		height = 1.0
	)
	if box, ok := d.Extents(); ok {
		center = box.Center()
		if h := box.Height(); h > 0 {
			height = h
		}
	}

	d.startTable(w, "VPORT", 1)
	record(w, "VPORT", d.fixed[recordActiveVPort], d.fixed[tableVPort], "AcDbViewportTableRecord")
	w.Name("*Active")
	w.Push(70, 0)
	w.Point2D(core.Pt(0, 0))
	w.Point2D(core.Pt(1, 1), 1)
	w.Point2D(center, 2)
	w.Point2D(core.Pt(0, 0), 3)
	w.Point2D(core.Pt(10, 10), 4)
	w.Point2D(core.Pt(10, 10), 5)
	w.Point3D(core.Pt3(0, 0, 1), 6)
	w.Point3D(core.Pt3(0, 0, 0), 7)
	w.Push(40, height)
	w.Push(41, 2.0)
	w.Push(42, 50.0)
	w.Push(43, 0.0)
	w.Push(44, 0.0)
	w.Push(50, 0.0)
	w.Push(51, 0.0)
	w.Push(71, 0)
	w.Push(72, 100)
	w.Push(73, 1)
	w.Push(74, 3)
	w.Push(75, 0)
	w.Push(76, 0)
	w.Push(77, 0)
	w.Push(78, 0)
	w.End()
}

func (d *Document) serializeLineTypes(w *core.Writer) {
	lineType := func(handle, name, description string, pattern []float64) {
		record(w, "LTYPE", handle, d.fixed[tableLType], "AcDbLinetypeTableRecord")
		w.Name(name)
		w.Push(70, 0)
		w.Push(3, description)
		w.Push(72, 65)
		w.Push(73, len(pattern))

		total := 0.0
		for _, p := range pattern {
			total += math.Abs(p)
		}
		w.Push(40, total)
		for _, p := range pattern {
			w.Push(49, p)
			w.Push(74, 0)
		}
	}

	d.startTable(w, "LTYPE", 3+len(d.lineTypes))
	lineType(d.fixed[recordByBlock], "ByBlock", "", nil)
	lineType(d.fixed[recordByLayer], "ByLayer", "", nil)
	lineType(d.fixed[recordContinuous], "Continuous", "Solid line", nil)
	for _, lt := range d.lineTypes {
		lineType(lt.Handle, lt.Name, lt.Description, lt.Pattern)
	}
	w.End()
}

func (d *Document) serializeLayers(w *core.Writer) {
	d.startTable(w, "LAYER", len(d.layers))
	for _, l := range d.layers {
		record(w, "LAYER", l.Handle, d.fixed[tableLayer], "AcDbLayerTableRecord")
		w.Name(l.Name)
		w.Push(70, 0)
		w.Push(62, l.Color)
		w.Push(6, l.LineType)
		w.Push(370, -3)
	}
	w.End()
}

func (d *Document) serializeStyles(w *core.Writer) {
	d.startTable(w, "STYLE", 1)
	record(w, "STYLE", d.fixed[recordStandard], d.fixed[tableStyle], "AcDbTextStyleTableRecord")
	w.Name("Standard")
	w.Push(70, 0)
	w.Push(40, 0.0)
	w.Push(41, 1.0)
	w.Push(50, 0.0)
	w.Push(71, 0)
	w.Push(42, 2.5)
	w.Push(3, "txt")
	w.Push(4, "")
	w.End()
}

func (d *Document) serializeBlockRecords(w *core.Writer) {
	blocks := d.allBlocks()
	d.startTable(w, "BLOCK_RECORD", len(blocks))
	for _, b := range blocks {
		record(w, "BLOCK_RECORD", b.Handle, d.fixed[tableBlockRecord], "AcDbBlockTableRecord")
		w.Name(b.Name)
		w.Push(70, int(d.Units))
		w.Push(280, 1)
		w.Push(281, 0)
	}
	w.End()
}

// serializeBlocks 模型空间与图纸空间的块定义为空，实体写在 ENTITIES 段
func (d *Document) serializeBlocks(w *core.Writer) {
	w.Start("BLOCKS")
	for _, b := range d.allBlocks() {
		d.serializeBlock(w, b, b != d.modelSpace && b != d.paperSpace)
	}
	w.End()
}

func (d *Document) serializeBlock(w *core.Writer, b *Block, withEntities bool) {
	w.StartBlock()
	w.Handle(b.BlockHandle)
	w.Push(330, b.Handle)
	w.SubclassMarker("AcDbEntity")
	if b == d.paperSpace {
		w.Push(67, 1)
	}
	w.LayerName("0")
	w.SubclassMarker("AcDbBlockBegin")
	w.Name(b.Name)
	w.Push(70, 0)
	w.Point3D(b.BasePoint)
	w.Push(3, b.Name)
	w.Push(1, "")

	if withEntities {
		b.Serialize(w)
	}

	w.End()
	w.Handle(b.EndHandle)
	w.Push(330, b.Handle)
	w.SubclassMarker("AcDbEntity")
	if b == d.paperSpace {
		w.Push(67, 1)
	}
	w.LayerName("0")
	w.SubclassMarker("AcDbBlockEnd")
}
