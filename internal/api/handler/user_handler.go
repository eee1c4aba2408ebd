package handler

import (
	"strings"

	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/consts"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/response"
	"github.com/Baktyiar1/Netflix144p/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc  service.UserService
	mediaSvc service.MediaService
}

func NewUserHandler(userSvc service.UserService, mediaSvc service.MediaService) *UserHandler {
	return &UserHandler{
		userSvc:  userSvc,
		mediaSvc: mediaSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterDTO
	if !bindJSON(c, &req) {
		return
	}
	user, err := s.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

func (s *UserHandler) Login(c *gin.Context) {
	var req dto.CredentialDTO
	if !bindJSON(c, &req) {
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetProfile(c *gin.Context) {
	user, err := s.userSvc.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileDTO
	if !bindJSON(c, &req) {
		return
	}
	user, err := s.userSvc.UpdateProfile(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// UploadAvatar 上传头像并写入用户资料
func (s *UserHandler) UploadAvatar(c *gin.Context) {
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

	media, err := s.mediaSvc.Upload(c.Request.Context(), consts.MediaKindAvatar, file.Filename, reader, file.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := s.userSvc.UpdateCover(c.Request.Context(), currentUserID(c), media.Object)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}
