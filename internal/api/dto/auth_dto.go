package dto

type LoginDTO struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordDTO struct {
	Token     string `json:"token" binding:"required"`
	NovaSenha string `json:"novaSenha" binding:"required"`
}

// SessionDTO 当前会话信息，前端各受保护页面挂载时查询
type SessionDTO struct {
	AdminID uint64   `json:"adminId"`
	Email   string   `json:"email"`
	Roles   []string `json:"roles"`
}
