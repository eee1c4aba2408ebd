package service

import (
	"errors"
	"net/http"
)

// 机器可读的错误类别
const (
	KindNotFound        = "not_found"
	KindValidation      = "validation_error"
	KindDuplicateRating = "duplicate_rating"
	KindConflict        = "conflict"
	KindUnauthorized    = "unauthorized"
	KindForbidden       = "forbidden"
	KindStoreError      = "store_error"
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrScoreOutOfRange   = errors.New("评分必须在 1 到 10 之间")
	ErrFileNotSupported  = errors.New("不支持的文件类型")
	ErrUserExist         = errors.New("用户已存在")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrPasswordIncorrect = errors.New("用户名或密码错误")
	ErrContentNotFound   = errors.New("影片不存在")
	ErrTaxonomyNotFound  = errors.New("分类、类型或国家不存在")
	ErrCrewNotFound      = errors.New("演职人员不存在")
	ErrFavoriteNotFound  = errors.New("收藏不存在")
	ErrRatingNotFound    = errors.New("评分不存在")
	ErrDuplicateRating   = errors.New("已经评过分")
	ErrEpisodeExist      = errors.New("该集数已存在")
	ErrUnauthorized      = errors.New("未登录或登录已失效")
	ErrForbidden         = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

// ErrorCode 错误对应的 HTTP 状态与类别
type ErrorCode struct {
	Status int
	Kind   string
}

var ErrorMap = map[error]ErrorCode{
	ErrParamInvalid:      {http.StatusBadRequest, KindValidation},
	ErrScoreOutOfRange:   {http.StatusBadRequest, KindValidation},
	ErrFileNotSupported:  {http.StatusBadRequest, KindValidation},
	ErrUserExist:         {http.StatusBadRequest, KindValidation},
	ErrUserNotFound:      {http.StatusNotFound, KindNotFound},
	ErrPasswordIncorrect: {http.StatusUnauthorized, KindUnauthorized},
	ErrContentNotFound:   {http.StatusNotFound, KindNotFound},
	ErrTaxonomyNotFound:  {http.StatusNotFound, KindNotFound},
	ErrCrewNotFound:      {http.StatusNotFound, KindNotFound},
	ErrFavoriteNotFound:  {http.StatusNotFound, KindNotFound},
	ErrRatingNotFound:    {http.StatusNotFound, KindNotFound},
	ErrDuplicateRating:   {http.StatusBadRequest, KindDuplicateRating},
	ErrEpisodeExist:      {http.StatusConflict, KindConflict},
	ErrUnauthorized:      {http.StatusUnauthorized, KindUnauthorized},
	ErrForbidden:         {http.StatusForbidden, KindForbidden},
	UnExpectedError:      {http.StatusInternalServerError, KindStoreError},
}

// LookupError 按 errors.Is 查找映射，包装过的哨兵错误同样命中
func LookupError(err error) (error, ErrorCode, bool) {
	if code, ok := ErrorMap[err]; ok {
		return err, code, true
	}
	for sentinel, code := range ErrorMap {
		if errors.Is(err, sentinel) {
			return sentinel, code, true
		}
	}
	return nil, ErrorCode{}, false
}
