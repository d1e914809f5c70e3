package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Basic(t *testing.T) {
	// 模拟一个简单的 DXF 片段
	dxfData := "0\nSECTION\n2\nHEADER\n0\nENDSEC\n"
	scanner := NewScanner(strings.NewReader(dxfData))

	expected := []Tag{
		{0, "SECTION"},
		{2, "HEADER"},
		{0, "ENDSEC"},
	}

	for i, exp := range expected {
		require.Truef(t, scanner.Next(), "第 %d 步读取失败: %v", i, scanner.Err())
		assert.Equalf(t, exp, scanner.LastTag, "第 %d 步数据不符", i)
	}
	assert.False(t, scanner.Next())
	assert.NoError(t, scanner.Err())
}

func TestScanner_EmptyValueAndLeadingSpace(t *testing.T) {
	tags, err := ReadTags(strings.NewReader("  1\n\n999\n  comment\n0\nEOF"))
	require.NoError(t, err)
	assert.Equal(t, []Tag{{1, ""}, {999, "  comment"}, {0, "EOF"}}, tags)
}

func TestScanner_Errors(t *testing.T) {
	_, err := ReadTags(strings.NewReader("0\nSECTION\nabc\nHEADER\n"))
	assert.ErrorContains(t, err, "line 3")

	_, err = ReadTags(strings.NewReader("0\nSECTION\n2\n"))
	assert.ErrorContains(t, err, "missing value")
}

func TestTag_As(t *testing.T) {
	assert.Equal(t, 1.5, Tag{Code: 10, Value: " 1.5 "}.AsFloat())
	assert.Equal(t, 70, Tag{Code: 70, Value: "70"}.AsInt())
	assert.Equal(t, "LINE", Tag{Code: 0, Value: " LINE"}.AsString())
}
