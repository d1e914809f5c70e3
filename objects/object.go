package objects

import "github.com/zooyer/dxfwriter/core"

// Object 非图形对象（字典、图像定义、反应器），没有几何
type Object interface {
	Type() string
	Handle() string
	Serialize(w *core.Writer)
}

// BaseObject 对象通用属性
type BaseObject struct {
	TypeName    string
	handle      string
	OwnerHandle string
}

func (b *BaseObject) Type() string { return b.TypeName }

func (b *BaseObject) Handle() string { return b.handle }

// serialize 写出对象公共部分，reactors 为 ACAD_REACTORS 应用组中的句柄
func (b *BaseObject) serialize(w *core.Writer, reactors ...string) {
	w.Type(b.TypeName)
	w.Handle(b.handle)
	if len(reactors) > 0 {
		w.Push(102, "{ACAD_REACTORS")
		for _, h := range reactors {
			w.Push(330, h)
		}
		w.Push(102, "}")
	}
	w.Push(330, b.OwnerHandle)
}
