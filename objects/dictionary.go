package objects

import "github.com/zooyer/dxfwriter/core"

type DictionaryEntry struct {
	Name   string
	Handle string
}

// Dictionary 名称到对象句柄的映射，保持插入顺序
type Dictionary struct {
	BaseObject
	Entries []DictionaryEntry
	// DuplicateRecordCloning 组码 281，1 表示保留已有记录
	DuplicateRecordCloning int
}

func newDictionary(handle string) *Dictionary {
	return &Dictionary{
		BaseObject:             BaseObject{TypeName: "DICTIONARY", handle: handle},
		DuplicateRecordCloning: 1,
	}
}

// AddEntryObject 添加条目，同名条目改指向新句柄
func (d *Dictionary) AddEntryObject(name, handle string) {
	for i := range d.Entries {
		if d.Entries[i].Name == name {
			d.Entries[i].Handle = handle
			return
		}
	}
	d.Entries = append(d.Entries, DictionaryEntry{Name: name, Handle: handle})
}

// Entry 按名称查找条目句柄
func (d *Dictionary) Entry(name string) (string, bool) {
	for _, e := range d.Entries {
		if e.Name == name {
			return e.Handle, true
		}
	}
	return "", false
}

func (d *Dictionary) Serialize(w *core.Writer) {
	d.serialize(w)
	w.SubclassMarker("AcDbDictionary")
	w.Push(281, d.DuplicateRecordCloning)
	for _, e := range d.Entries {
		w.Push(3, e.Name)
		w.Push(350, e.Handle)
	}
}
