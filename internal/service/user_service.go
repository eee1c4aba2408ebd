package service

import (
	"context"
	"errors"
	log "log/slog"

	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/model"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/security"
	"github.com/Baktyiar1/Netflix144p/internal/repository"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, req *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, id uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error)
	UpdateCover(ctx context.Context, id uint64, objectName string) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo   repository.UserRepo
	jwt        *security.JWTManager
	tokenStore security.TokenStore
	media      MediaResolver
}

func NewUserService(userRepo repository.UserRepo, jwt *security.JWTManager, tokenStore security.TokenStore, media MediaResolver) UserService {
	return &UserServiceImpl{
		userRepo:   userRepo,
		jwt:        jwt,
		tokenStore: tokenStore,
		media:      media,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error) {
	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: passwordHash,
		Status:   model.UserStatusOrdinary,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExist
		}
		return nil, err
	}
	return s.toUser(ctx, user)
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		// 不区分用户不存在与密码错误
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPasswordIncorrect
		}
		return nil, err
	}
	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Roles())
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{Token: token}, nil
}

// Logout 将 Token 签名加入黑名单直至其自然过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return ErrUnauthorized
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrUnauthorized
	}
	if err = s.tokenStore.Revoke(ctx, signature, security.RemainingTTL(claims)); err != nil {
		return err
	}
	log.InfoContext(ctx, "user logged out", "user_id", claims.UserID)
	return nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.toUser(ctx, user)
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error) {
	fields := make(map[string]any)
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Cover != nil {
		fields["cover"] = *req.Cover
	}
	if req.Password != nil {
		passwordHash, err := security.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = passwordHash
	}

	if err := s.userRepo.UpdateUser(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, id)
}

func (s *UserServiceImpl) UpdateCover(ctx context.Context, id uint64, objectName string) (*dto.UserDTO, error) {
	return s.UpdateProfile(ctx, id, &dto.UpdateProfileDTO{Cover: &objectName})
}

func (s *UserServiceImpl) toUser(ctx context.Context, user *model.User) (*dto.UserDTO, error) {
	res := &dto.UserDTO{}
	if err := copier.Copy(res, user); err != nil {
		return nil, err
	}
	res.Cover = s.media.PublicURL(ctx, user.Cover)
	res.Roles = user.Roles()
	return res, nil
}
