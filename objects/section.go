package objects

import (
	"errors"

	"github.com/zooyer/dxfwriter/core"
)

// ErrImageNameConflict 图像字典中同名条目指向不同路径的图像
var ErrImageNameConflict = errors.New("dxf: image name already defined with a different path")

const (
	groupDictName = "ACAD_GROUP"
	imageDictName = "ACAD_IMAGE_DICT"
)

// Section OBJECTS 段：根字典加按注册顺序排列的对象
type Section struct {
	handles   *core.Handles
	root      *Dictionary
	objects   []Object
	index     map[string]Object
	imageDict *Dictionary
}

func NewSection(handles *core.Handles) *Section {
	s := &Section{
		handles: handles,
		index:   make(map[string]Object),
	}
	s.root = newDictionary(handles.Next())
	s.root.OwnerHandle = "0"
	s.index[s.root.Handle()] = s.root

	group := s.AddDictionary()
	s.root.AddEntryObject(groupDictName, group.Handle())
	return s
}

// Root 根字典
func (s *Section) Root() *Dictionary {
	return s.root
}

// AddObject 注册对象，按注册顺序写出
func (s *Section) AddObject(obj Object) {
	s.objects = append(s.objects, obj)
	s.index[obj.Handle()] = obj
}

// Object 按句柄查找已注册对象
func (s *Section) Object(handle string) (Object, bool) {
	obj, ok := s.index[handle]
	return obj, ok
}

// Objects 已注册对象（不含根字典）
func (s *Section) Objects() []Object {
	return s.objects
}

// NewDictionary 分配句柄创建字典，所有者为根字典，不注册
func (s *Section) NewDictionary() *Dictionary {
	d := newDictionary(s.handles.Next())
	d.OwnerHandle = s.root.Handle()
	return d
}

// AddDictionary 创建并注册字典
func (s *Section) AddDictionary() *Dictionary {
	d := s.NewDictionary()
	s.AddObject(d)
	return d
}

// AddImageDef 创建图像定义，不注册
func (s *Section) AddImageDef(path string) *ImageDef {
	return newImageDef(s.handles.Next(), path)
}

// AddImageDefReactor 创建图像反应器，不注册
func (s *Section) AddImageDefReactor(imageHandle string) *ImageDefReactor {
	return newImageDefReactor(s.handles.Next(), imageHandle)
}

// ImageDictionary 已存在的 ACAD_IMAGE_DICT，没有时返回 nil
func (s *Section) ImageDictionary() *Dictionary {
	return s.imageDict
}

// SetImageDictionary 注册 ACAD_IMAGE_DICT 并挂到根字典，每个文档只有一个
func (s *Section) SetImageDictionary(d *Dictionary) {
	if s.imageDict != nil {
		return
	}
	s.imageDict = d
	s.AddObject(d)
	s.root.AddEntryObject(imageDictName, d.Handle())
}

// LookupImageDef 在图像字典中按名称查找图像定义
// 同名但路径不同返回 ErrImageNameConflict
func (s *Section) LookupImageDef(name, path string) (*ImageDef, error) {
	if s.imageDict == nil {
		return nil, nil
	}
	handle, ok := s.imageDict.Entry(name)
	if !ok {
		return nil, nil
	}
	obj, _ := s.Object(handle)
	def, ok := obj.(*ImageDef)
	if !ok || def.Path != path {
		return nil, ErrImageNameConflict
	}
	return def, nil
}

func (s *Section) Serialize(w *core.Writer) {
	w.Start("OBJECTS")
	s.root.Serialize(w)
	for _, obj := range s.objects {
		obj.Serialize(w)
	}
	w.End()
}
