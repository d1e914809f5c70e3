package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/core"
)

// report 标签级统计结果
type report struct {
	Tags     int
	Sections []string
	Counts   map[string]int // 段内实体/对象类型计数，键为 "段/类型"
	Balanced bool
	EOF      bool

	Units          int // $INSUNITS
	ExtMin, ExtMax core.Point
}

// inspect 只在标签层面检查结构：SECTION/ENDSEC、TABLE/ENDTAB、BLOCK/ENDBLK 是否配对
func inspect(tags []core.Tag) report {
	var (
		r        = report{Tags: len(tags), Counts: make(map[string]int), Balanced: true}
		stack    []string
		section  string
		variable string
	)
	pairs := map[string]string{"ENDSEC": "SECTION", "ENDTAB": "TABLE", "ENDBLK": "BLOCK"}

	for i, t := range tags {
		if t.Code != 0 {
			if section == "HEADER" {
				variable = r.header(variable, t)
			}
			continue
		}
		value := t.AsString()
		switch value {
		case "SECTION", "TABLE", "BLOCK":
			stack = append(stack, value)
			if value == "SECTION" && i+1 < len(tags) && tags[i+1].Code == 2 {
				section = tags[i+1].AsString()
				r.Sections = append(r.Sections, section)
			}
		case "ENDSEC", "ENDTAB", "ENDBLK":
			if len(stack) == 0 || stack[len(stack)-1] != pairs[value] {
				r.Balanced = false
				continue
			}
			stack = stack[:len(stack)-1]
			if value == "ENDSEC" {
				section = ""
			}
		case "EOF":
			r.EOF = true
		default:
			if section == "ENTITIES" || section == "OBJECTS" || section == "BLOCKS" {
				r.Counts[section+"/"+value]++
			}
		}
	}
	if len(stack) > 0 {
		r.Balanced = false
	}
	return r
}

// header 读取 HEADER 段中的单位与范围，返回当前变量名
func (r *report) header(variable string, t core.Tag) string {
	if t.Code == 9 {
		return t.AsString()
	}

	var p *core.Point
	switch variable {
	case "$INSUNITS":
		if t.Code == 70 {
			r.Units = t.AsInt()
		}
		return variable
	case "$EXTMIN":
		p = &r.ExtMin
	case "$EXTMAX":
		p = &r.ExtMax
	default:
		return variable
	}
	switch t.Code {
	case 10:
		p.X = t.AsFloat()
	case 20:
		p.Y = t.AsFloat()
	case 30:
		p.Z = t.AsFloat()
	}
	return variable
}

func renderBool(b bool) string {
	if b {
		return "✅"
	}
	return "❌"
}

func (r report) print(w io.Writer) {
	fmt.Fprintf(w, "标签: %d | 结构平衡: %s | EOF: %s\n", r.Tags, renderBool(r.Balanced), renderBool(r.EOF))
	fmt.Fprintf(w, "段: %v\n", r.Sections)
	fmt.Fprintf(w, "单位: %d | 范围: (%g, %g, %g) - (%g, %g, %g)\n", r.Units,
		r.ExtMin.X, r.ExtMin.Y, r.ExtMin.Z, r.ExtMax.X, r.ExtMax.Y, r.ExtMax.Z)

	keys := make([]string, 0, len(r.Counts))
	for k := range r.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-32s %d\n", k, r.Counts[k])
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.dxf>",
		Short: "统计 DXF 的段、结构平衡与实体数量",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := dxf.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			tags, err := core.ReadTags(file)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", args[0], err)
			}

			r := inspect(tags)
			r.print(cmd.OutOrStdout())
			if !r.Balanced {
				return core.ErrUnbalanced
			}
			return nil
		},
	}
}
