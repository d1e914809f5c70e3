package dxf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
	"github.com/zooyer/dxfwriter/objects"
)

// ErrDuplicateBlock 块名已存在（不区分大小写）
var ErrDuplicateBlock = errors.New("dxf: duplicate block name")

// Version $ACADVER
type Version string

const (
	R2000 Version = "AC1015"
	R2004 Version = "AC1018"
	R2007 Version = "AC1021"
	R2010 Version = "AC1024"
	R2013 Version = "AC1027"
	R2018 Version = "AC1032"
)

// Units $INSUNITS
type Units int

const (
	Unitless    Units = 0
	Inches      Units = 1
	Feet        Units = 2
	Millimeters Units = 4
	Centimeters Units = 5
	Meters      Units = 6
)

const (
	modelSpaceName = "*Model_Space"
	paperSpaceName = "*Paper_Space"
)

// Layer 图层表记录
type Layer struct {
	Name     string
	Color    int
	LineType string
	Handle   string
}

// LineType 线型表记录，Pattern 为空时等同实线
type LineType struct {
	Name        string
	Description string
	Pattern     []float64 // 正数为线段，负数为空白，0 为点
	Handle      string
}

// Block 块定义，实体容器的句柄即块记录句柄
type Block struct {
	*entities.Manager
	Name        string
	BasePoint   core.Point
	BlockHandle string // BLOCK 实体
	EndHandle   string // ENDBLK 实体
}

// Document 文档：模型空间、块、图层和 OBJECTS 段
type Document struct {
	Version  Version
	CodePage string
	Units    Units

	handles    *core.Handles
	objects    *objects.Section
	modelSpace *Block
	paperSpace *Block
	blocks     []*Block
	blockIndex map[string]*Block
	layers     []*Layer
	layerIndex map[string]*Layer
	lineTypes  []*LineType
	lineIndex  map[string]*LineType
	fixed      map[string]string // 固定表与表记录的句柄

	fingerprint string
	versionGUID string
}

type config struct {
	version  Version
	codePage string
	units    Units
	layer    string
	handles  *core.Handles
}

type Option func(c *config)

func WithVersion(v Version) Option {
	return func(c *config) { c.version = v }
}

// WithCodePage $DWGCODEPAGE，如 ANSI_1252；AC1021 之前的版本按该代码页编码输出
func WithCodePage(codePage string) Option {
	return func(c *config) { c.codePage = codePage }
}

func WithUnits(u Units) Option {
	return func(c *config) { c.units = u }
}

// WithLayer 模型空间新实体的默认图层
func WithLayer(name string) Option {
	return func(c *config) { c.layer = name }
}

// WithHandles 使用外部句柄分配器
func WithHandles(h *core.Handles) Option {
	return func(c *config) { c.handles = h }
}

func New(options ...Option) *Document {
	c := config{
		version:  R2007,
		codePage: "ANSI_1252",
		units:    Unitless,
		layer:    "0",
	}
	for _, opt := range options {
		opt(&c)
	}
	if c.handles == nil {
		c.handles = core.NewHandles()
	}

	d := &Document{
		Version:    c.version,
		CodePage:   c.codePage,
		Units:      c.units,
		handles:    c.handles,
		blockIndex: make(map[string]*Block),
		layerIndex: make(map[string]*Layer),
		lineIndex:  make(map[string]*LineType),
		fixed:      make(map[string]string),
	}

	d.objects = objects.NewSection(d.handles)
	d.modelSpace = d.newBlock(modelSpaceName, core.Point{})
	d.modelSpace.LayerName = c.layer
	d.paperSpace = d.newBlock(paperSpaceName, core.Point{})
	for _, name := range fixedRecords {
		d.fixed[name] = d.handles.Next()
	}
	d.AddLayer("0", 7, "Continuous")

	d.fingerprint = guid()
	d.versionGUID = guid()
	return d
}

func guid() string {
	return "{" + strings.ToUpper(uuid.New().String()) + "}"
}

func (d *Document) newBlock(name string, basePoint core.Point) *Block {
	return &Block{
		Manager:     entities.NewManager(d.handles, d.objects, "0"),
		Name:        name,
		BasePoint:   basePoint,
		BlockHandle: d.handles.Next(),
		EndHandle:   d.handles.Next(),
	}
}

// Handles 文档的句柄分配器
func (d *Document) Handles() *core.Handles {
	return d.handles
}

// Objects OBJECTS 段
func (d *Document) Objects() *objects.Section {
	return d.objects
}

// ModelSpace 模型空间
func (d *Document) ModelSpace() *Block {
	return d.modelSpace
}

// SetLayerName 修改模型空间默认图层，只影响之后添加的实体
func (d *Document) SetLayerName(name string) {
	d.modelSpace.LayerName = name
}

// AddBlock 新建块定义
func (d *Document) AddBlock(name string, basePoint core.Point) (*Block, error) {
	key := strings.ToUpper(name)
	if _, ok := d.blockIndex[key]; ok || key == strings.ToUpper(modelSpaceName) || key == strings.ToUpper(paperSpaceName) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateBlock, name)
	}
	b := d.newBlock(name, basePoint)
	d.blocks = append(d.blocks, b)
	d.blockIndex[key] = b
	return b, nil
}

// Block 按名称查找块（不区分大小写）
func (d *Document) Block(name string) *Block {
	return d.blockIndex[strings.ToUpper(name)]
}

// Blocks 用户块，按添加顺序
func (d *Document) Blocks() []*Block {
	return d.blocks
}

// AddLayer 声明图层，已存在时返回已有图层
func (d *Document) AddLayer(name string, color int, lineType string) *Layer {
	if l, ok := d.layerIndex[strings.ToUpper(name)]; ok {
		return l
	}
	if lineType == "" {
		lineType = "Continuous"
	}
	l := &Layer{Name: name, Color: color, LineType: lineType, Handle: d.handles.Next()}
	d.layers = append(d.layers, l)
	d.layerIndex[strings.ToUpper(name)] = l
	return l
}

// Layers 已声明的图层
func (d *Document) Layers() []*Layer {
	return d.layers
}

// declareLayers 为实体用到但未声明的图层补充表记录
func (d *Document) declareLayers() {
	for _, b := range d.allBlocks() {
		for _, e := range b.Entities() {
			if name := e.Layer(); name != "" {
				d.AddLayer(name, 7, "")
			}
		}
	}
}

// builtinLineTypes 固定写出的线型
var builtinLineTypes = map[string]bool{"BYBLOCK": true, "BYLAYER": true, "CONTINUOUS": true}

// AddLineType 声明线型，已存在（含内置线型）时返回 nil 或已有线型
func (d *Document) AddLineType(name, description string, pattern ...float64) *LineType {
	key := strings.ToUpper(name)
	if builtinLineTypes[key] {
		return nil
	}
	if lt, ok := d.lineIndex[key]; ok {
		return lt
	}
	lt := &LineType{Name: name, Description: description, Pattern: pattern, Handle: d.handles.Next()}
	d.lineTypes = append(d.lineTypes, lt)
	d.lineIndex[key] = lt
	return lt
}

// LineTypes 内置线型之外已声明的线型
func (d *Document) LineTypes() []*LineType {
	return d.lineTypes
}

// declareLineTypes 为图层与实体引用但未声明的线型补充表记录
func (d *Document) declareLineTypes() {
	for _, l := range d.layers {
		if l.LineType != "" {
			d.AddLineType(l.LineType, "")
		}
	}
	for _, b := range d.allBlocks() {
		for _, e := range b.Entities() {
			if name := e.Base().LineType; name != nil && *name != "" {
				d.AddLineType(*name, "")
			}
		}
	}
}

func (d *Document) allBlocks() []*Block {
	return append([]*Block{d.modelSpace, d.paperSpace}, d.blocks...)
}

// Serialize 按文件顺序写出全部段
func (d *Document) Serialize(w *core.Writer) {
	// 句柄必须在写 HEADER 之前全部分配完
	d.declareLayers()
	d.declareLineTypes()

	d.serializeHeader(w)
	d.serializeTables(w)
	d.serializeBlocks(w)

	w.Start("ENTITIES")
	d.modelSpace.Serialize(w)
	w.End()

	d.objects.Serialize(w)
	w.Push(0, "EOF")
}

// Stringify 渲染为 DXF 文本（UTF-8）
func (d *Document) Stringify() (string, error) {
	w := core.NewWriter()
	d.Serialize(w)
	return w.Stringify()
}

// WriteTo 写出 DXF 文本，AC1021 之前的版本按代码页编码
func (d *Document) WriteTo(dst io.Writer) (int64, error) {
	text, err := d.Stringify()
	if err != nil {
		return 0, err
	}

	data, err := encode(text, d.Version, d.CodePage)
	if err != nil {
		return 0, err
	}
	n, err := dst.Write(data)
	return int64(n), err
}

// String 渲染失败时返回空串
func (d *Document) String() string {
	s, err := d.Stringify()
	if err != nil {
		return ""
	}
	return s
}
