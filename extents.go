package dxf

import (
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
	"github.com/zooyer/dxfwriter/utils"
)

// maxBlockDepth 嵌套块参照的最大展开深度，超过时只取插入点
const maxBlockDepth = 16

// Extents 模型空间的世界坐标范围，块参照按块定义展开
// 阵列参照只计算第一个实例
func (d *Document) Extents() (core.BBox, bool) {
	box := core.EmptyBBox()
	for _, e := range d.modelSpace.Entities() {
		box = box.Union(d.entityBBox(e, utils.Identity(), 0))
	}
	return box, !box.IsEmpty()
}

// entityBBox 实体在变换 t 下的包围盒
func (d *Document) entityBBox(e entities.Entity, t utils.Transform, depth int) core.BBox {
	ins, ok := e.(*entities.Insert)
	if !ok {
		return t.BBox(e.BBox())
	}

	block := d.Block(ins.BlockName)
	if block == nil || depth >= maxBlockDepth || len(block.Entities()) == 0 {
		return t.BBox(ins.BBox())
	}

	local := utils.FromInsert(ins, block.BasePoint).Then(t)
	box := core.EmptyBBox()
	for _, sub := range block.Entities() {
		box = box.Union(d.entityBBox(sub, local, depth+1))
	}
	return box
}
