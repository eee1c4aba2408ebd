package util

import (
	"strconv"
	"strings"
)

// Ptr 返回值的指针
func Ptr[T any](v T) *T {
	return &v
}

// ParseUint64 解析路径参数中的 ID，0 视为非法
func ParseUint64(s string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// ParseOptionalBool 空串返回 nil，支持 true/false/1/0
func ParseOptionalBool(s string) (*bool, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, false
	}
	return &b, true
}

// EscapeLike 转义 LIKE 通配符，配合 ESCAPE '!' 使用
func EscapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}
