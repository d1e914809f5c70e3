// Package drawing 从 YAML / TOML 描述文件构建 DXF 文档
package drawing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid 描述文件内容不合法
var ErrInvalid = errors.New("drawing: invalid description")

// File 描述文件的根
type File struct {
	Version  string   `yaml:"version" toml:"version"`
	CodePage string   `yaml:"codepage" toml:"codepage"`
	Units    string   `yaml:"units" toml:"units"`
	Layer    string   `yaml:"layer" toml:"layer"` // 模型空间默认图层
	Layers   []Layer  `yaml:"layers" toml:"layers"`
	Blocks   []Block  `yaml:"blocks" toml:"blocks"`
	Entities []Entity `yaml:"entities" toml:"entities"`
}

type Layer struct {
	Name     string `yaml:"name" toml:"name"`
	Color    int    `yaml:"color" toml:"color"`
	LineType string `yaml:"linetype" toml:"linetype"`
}

type Block struct {
	Name     string    `yaml:"name" toml:"name"`
	Base     []float64 `yaml:"base" toml:"base"`
	Entities []Entity  `yaml:"entities" toml:"entities"`
}

// Entity 一个实体，Kind 决定使用哪些字段
//
// 角度均为度（椭圆的 start/end 为参数，弧度）；点为 [x, y] 或 [x, y, z]
type Entity struct {
	Kind  string `yaml:"kind" toml:"kind"`
	Layer string `yaml:"layer" toml:"layer"`
	Color *int   `yaml:"color" toml:"color"`

	Points [][]float64 `yaml:"points" toml:"points"`
	Center []float64   `yaml:"center" toml:"center"`
	Radius float64     `yaml:"radius" toml:"radius"`
	Start  *float64    `yaml:"start" toml:"start"`
	End    *float64    `yaml:"end" toml:"end"`
	Major  []float64   `yaml:"major" toml:"major"`
	Ratio  float64     `yaml:"ratio" toml:"ratio"`
	Closed bool        `yaml:"closed" toml:"closed"`

	Fillet  *float64 `yaml:"fillet" toml:"fillet"`
	Chamfer *float64 `yaml:"chamfer" toml:"chamfer"`

	Text     string  `yaml:"text" toml:"text"`
	Height   float64 `yaml:"height" toml:"height"`
	Width    float64 `yaml:"width" toml:"width"`
	Rotation float64 `yaml:"rotation" toml:"rotation"`
	Scale    float64 `yaml:"scale" toml:"scale"`

	Block string `yaml:"block" toml:"block"`

	Offset float64 `yaml:"offset" toml:"offset"`
	Angle  float64 `yaml:"angle" toml:"angle"`

	Pattern string `yaml:"pattern" toml:"pattern"`

	Path string `yaml:"path" toml:"path"`
	Name string `yaml:"name" toml:"name"`
}

// Load 按扩展名选择格式读取描述文件
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// Parse format 为 yaml、yml 或 toml
func Parse(data []byte, format string) (*File, error) {
	var f File
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalid, format)
	}
	return &f, nil
}
