package response

import (
	"errors"
	log "log/slog"
	"net/http"

	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// Created 资源创建成功
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

// NoContent 删除成功，不返回响应体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, kind, message string) {
	c.JSON(status, dto.Response{
		Code:    status,
		Kind:    kind,
		Message: message,
	})
}

// Abort 失败返回并终止后续中间件
func Abort(c *gin.Context, status int, kind, message string) {
	Fail(c, status, kind, message)
	c.Abort()
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.KindValidation, service.ErrParamInvalid.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, service.KindValidation, "Json错误")
		return
	}

	sentinel, code, ok := service.LookupError(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "unexpected error", "err", err)
		Fail(c, http.StatusInternalServerError, service.KindStoreError, service.UnExpectedError.Error())
		return
	}
	if code.Status >= http.StatusInternalServerError {
		log.ErrorContext(c.Request.Context(), "request failed", "err", err)
	}
	Fail(c, code.Status, code.Kind, sentinel.Error())
}
