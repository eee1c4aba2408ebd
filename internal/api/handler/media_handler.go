package handler

import (
	"github.com/Baktyiar1/Netflix144p/internal/pkg/response"
	"github.com/Baktyiar1/Netflix144p/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

// Upload 表单字段 file，kind 决定存储目录与处理方式
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	res, err := s.mediaSvc.Upload(c.Request.Context(), c.Query("kind"), file.Filename, reader, file.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}
