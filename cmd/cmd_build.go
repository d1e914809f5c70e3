package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"

	dxf "github.com/zooyer/dxfwriter"
	"github.com/zooyer/dxfwriter/drawing"
)

func newBuildCmd() *cobra.Command {
	var (
		output  string
		dialog  bool
		verbose bool
		pause   bool
	)

	cmd := &cobra.Command{
		Use:   "build <description>",
		Short: "由描述文件生成 DXF（.gz/.zst 输出时压缩）",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if pause {
				defer xos.PauseExit()
			}
			if verbose {
				dxf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
				defer dxf.SetLogger(nil)
			}
			if dialog {
				defer func() {
					if err != nil {
						_ = zenity.Error(err.Error(), zenity.Title("dxfw"), zenity.ErrorIcon)
					}
				}()
			}

			file, err := drawing.Load(args[0])
			if err != nil {
				return err
			}
			doc, err := file.Build()
			if err != nil {
				return fmt.Errorf("build %s: %w", args[0], err)
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".dxf"
			}
			if dialog {
				if output, err = saveDialog(output); err != nil {
					return err
				}
			}

			if err = doc.Save(output); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "写入文件:", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "输出文件，默认与描述文件同名的 .dxf")
	cmd.Flags().BoolVar(&dialog, "dialog", false, "弹出保存对话框选择输出文件")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "输出调试日志到 stderr")
	cmd.Flags().BoolVar(&pause, "pause", false, "结束前按任意键退出")
	return cmd
}

// errCanceled 用户取消了保存对话框
var errCanceled = errors.New("dxfw: save canceled")

func saveDialog(filename string) (string, error) {
	name, err := zenity.SelectFileSave(
		zenity.Title("保存 DXF"),
		zenity.Filename(filename),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{
			{Name: "DXF", Patterns: []string{"*.dxf"}},
			{Name: "压缩 DXF", Patterns: []string{"*.dxf.gz", "*.dxf.zst"}},
		},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", errCanceled
	}
	return name, err
}
