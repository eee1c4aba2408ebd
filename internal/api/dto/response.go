package dto

// Response 统一响应包装，Code 与 HTTP 状态码一致
type Response struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
