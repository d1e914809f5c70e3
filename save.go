package dxf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	kgzip "github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// codePages $DWGCODEPAGE 与单字节字符集的对应
var codePages = map[string]*charmap.Charmap{
	"ANSI_874":  charmap.Windows874,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
	"ISO8859-1": charmap.ISO8859_1,
}

// encode AC1021 起 DXF 为 UTF-8，之前按代码页编码，无法表示的字符替换
func encode(text string, version Version, codePage string) ([]byte, error) {
	if version >= R2007 {
		return []byte(text), nil
	}
	cm, ok := codePages[strings.ToUpper(codePage)]
	if !ok {
		return []byte(text), nil
	}
	data, err := encoding.ReplaceUnsupported(cm.NewEncoder()).Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("dxf: encode %s: %w", codePage, err)
	}
	return data, nil
}

// Save 写入文件，扩展名为 .gz 或 .zst 时压缩
// 先完成渲染与编码，渲染失败时不创建文件
func (d *Document) Save(filename string) (err error) {
	text, err := d.Stringify()
	if err != nil {
		return fmt.Errorf("dxf: save %s: %w", filename, err)
	}
	data, err := encode(text, d.Version, d.CodePage)
	if err != nil {
		return fmt.Errorf("dxf: save %s: %w", filename, err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	var (
		w     io.Writer = file
		flush func() error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		zw, e := kgzip.NewWriterLevel(file, kgzip.BestCompression)
		if e != nil {
			return e
		}
		w, flush = zw, zw.Close
	case ".zst":
		zw, e := zstd.NewWriter(file)
		if e != nil {
			return e
		}
		w, flush = zw, zw.Close
	}

	n, err := w.Write(data)
	if flush != nil {
		if e := flush(); e != nil && err == nil {
			err = e
		}
	}
	if err != nil {
		return fmt.Errorf("dxf: save %s: %w", filename, err)
	}

	Logger().Info("dxf: document saved", "file", filename, "bytes", n, "version", string(d.Version))
	return nil
}

// Open 读取 Save 写出的文件，按扩展名解压
func Open(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		zr, err := kgzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, err
		}
		return readCloser{Reader: zr, close: func() error { _ = zr.Close(); return file.Close() }}, nil
	case ".zst":
		zr, err := zstd.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, err
		}
		return readCloser{Reader: zr, close: func() error { zr.Close(); return file.Close() }}, nil
	}
	return file, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error {
	return r.close()
}
