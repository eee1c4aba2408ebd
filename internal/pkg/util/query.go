package util

import (
	"strconv"
	"strings"
)

// ParseOrder 解析排序参数，支持 "-field" 简写，direction 优先级低于前缀
func ParseOrder(order, direction string) (field string, desc bool) {
	field = strings.ToLower(strings.TrimSpace(order))
	if strings.HasPrefix(field, "-") {
		return strings.TrimPrefix(field, "-"), true
	}
	return field, strings.EqualFold(strings.TrimSpace(direction), "desc")
}

// MaxPage 页码上限，保证 (page-1)*pageSize 不溢出
const MaxPage = 1 << 20

// ParsePage 解析分页参数，非法值回落到默认值，page 不超过 MaxPage，pageSize 不超过 maxSize
func ParsePage(pageStr, sizeStr string, defaultSize, maxSize int) (page, pageSize int) {
	page, err := strconv.Atoi(strings.TrimSpace(pageStr))
	if err != nil || page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	pageSize, err = strconv.Atoi(strings.TrimSpace(sizeStr))
	if err != nil || pageSize < 1 {
		pageSize = defaultSize
	}
	if maxSize > 0 && pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}

// ClampPage 将页码限制在 [1, MaxPage]
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return min(page, MaxPage)
}
