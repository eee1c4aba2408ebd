package dto

import "time"

type RegisterDTO struct {
	Username string  `json:"username" validate:"required,min=3,max=64"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password string  `json:"password" validate:"required,min=6,max=64"`
}

type CredentialDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenDTO struct {
	Token string `json:"token"`
}

type UserDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	Cover     string    `json:"cover" copier:"-"`
	Status    uint8     `json:"status"`
	IsAdmin   bool      `json:"is_admin"`
	Roles     []string  `json:"roles" copier:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateProfileDTO struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Cover    *string `json:"cover,omitempty" validate:"omitempty,max=512"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=64"`
}

type MediaUploadDTO struct {
	Object      string `json:"object"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// MediaTempMetadata 上传登记信息，CreatedAt 为 Unix 秒
type MediaTempMetadata struct {
	ContentType string `json:"content_type"`
	CreatedAt   int64  `json:"created_at"`
}
