package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner 按行读取组码文本，用于校验写出的结果（不构建实体模型）
type Scanner struct {
	reader  *bufio.Reader
	line    int
	LastTag Tag
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

func (s *Scanner) Next() bool {
	var codeStr string
	for {
		codeLine, err := s.reader.ReadString('\n')
		if err != nil && (err != io.EOF || codeLine == "") {
			if err != io.EOF {
				s.err = err
			}
			return false
		}
		s.line++
		if codeStr = strings.TrimSpace(codeLine); codeStr != "" {
			break
		}
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = fmt.Errorf("line %d: invalid group code %q", s.line, codeStr)
		return false
	}

	// Value 行 EOF 说明标签不完整
	valueLine, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || valueLine == "") {
		s.err = fmt.Errorf("line %d: missing value for group code %d", s.line, code)
		return false
	}
	s.line++

	// 去掉行尾换行，保留 Value 开头的空格
	s.LastTag = Tag{Code: code, Value: strings.TrimRight(valueLine, "\r\n")}
	return true
}

func (s *Scanner) Err() error {
	return s.err
}

// ReadTags 读取全部标签
func ReadTags(r io.Reader) ([]Tag, error) {
	var (
		tags    []Tag
		scanner = NewScanner(r)
	)
	for scanner.Next() {
		tags = append(tags, scanner.LastTag)
	}
	return tags, scanner.Err()
}
