package handler

import (
	"net/http"

	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/api/middleware"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/response"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/util"
	"github.com/Baktyiar1/Netflix144p/internal/service"

	"github.com/gin-gonic/gin"
)

// bindJSON 解析并校验请求体，失败时已写出响应
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return false
	}
	if err := util.ValidateDTO(req); err != nil {
		response.Fail(c, http.StatusBadRequest, service.KindValidation, err.Error())
		return false
	}
	return true
}

// pathID 解析路径中的正整数 ID，失败时已写出响应
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, ok := util.ParseUint64(c.Param(name))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return 0, false
	}
	return id, true
}

// contentQuery 解析列表查询参数，is_film 非法时已写出响应
func contentQuery(c *gin.Context) (*dto.ContentQuery, bool) {
	isFilm, ok := util.ParseOptionalBool(c.Query("is_film"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return nil, false
	}
	field, desc := util.ParseOrder(c.Query("order"), c.Query("direction"))
	direction := "asc"
	if desc {
		direction = "desc"
	}
	page, pageSize := util.ParsePage(c.Query("page"), c.Query("page_size"), 0, 0)

	return &dto.ContentQuery{
		IsFilm:    isFilm,
		Order:     field,
		Direction: direction,
		Page:      page,
		PageSize:  pageSize,
	}, true
}

// currentUserID 读取 AuthMiddleware 写入请求上下文的用户 ID
func currentUserID(c *gin.Context) uint64 {
	return middleware.UserIDFromContext(c.Request.Context())
}
