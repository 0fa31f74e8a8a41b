package handler

import (
	"ProtectAdmin/internal/api/dto"
	"ProtectAdmin/internal/pkg/response"
	"ProtectAdmin/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (s *AuthHandler) Login(c *gin.Context) {
	var loginDTO dto.LoginDTO
	err := c.ShouldBind(&loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.authSvc.Login(c.Request.Context(), loginDTO.Email, loginDTO.Senha)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *AuthHandler) Logout(c *gin.Context) {
	token := c.Request.Header.Get("Authorization")
	token = strings.Replace(token, "Bearer ", "", 1)
	err := s.authSvc.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetSession 受保护页面挂载时查询当前登录态
func (s *AuthHandler) GetSession(c *gin.Context) {
	adminID := c.GetUint64("admin_id")
	email := c.GetString("email")
	roles, _ := c.Get("roles")
	roleList, _ := roles.([]string)

	response.Success(c, dto.SessionDTO{
		AdminID: adminID,
		Email:   email,
		Roles:   roleList,
	})
}

func (s *AuthHandler) ForgotPassword(c *gin.Context) {
	var forgotDTO dto.ForgotPasswordDTO
	err := c.ShouldBind(&forgotDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	err = s.authSvc.ForgotPassword(c.Request.Context(), forgotDTO.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AuthHandler) ResetPassword(c *gin.Context) {
	var resetDTO dto.ResetPasswordDTO
	err := c.ShouldBind(&resetDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	err = s.authSvc.ResetPassword(c.Request.Context(), resetDTO.Token, resetDTO.NovaSenha)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
