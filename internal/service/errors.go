package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	TooManyRequests     = 429
	InternalServerError = 500
)

// 面向管理后台的提示文案统一用葡语（站点语言）
var (
	ErrParamInvalid       = errors.New("parâmetros inválidos")
	ErrBadCredentials     = errors.New("e-mail ou senha incorretos")
	ErrTooManyAttempts    = errors.New("muitas tentativas de login, aguarde alguns minutos")
	ErrEmailNotRegistered = errors.New("e-mail não cadastrado")
	ErrResetTokenInvalid  = errors.New("token de redefinição inválido ou expirado")
	ErrPasswordTooShort   = errors.New("a senha deve ter pelo menos 6 caracteres")
	ErrImageRequired      = errors.New("selecione uma imagem")
	ErrVideoRequired      = errors.New("selecione o vídeo e a capa")
	ErrFileNotSupported   = errors.New("tipo de arquivo não suportado")
	ErrPostNotFound       = errors.New("notícia não encontrada")
	ErrProductNotFound    = errors.New("produto não encontrado")
	ErrPhotoNotFound      = errors.New("foto não encontrada")
	ErrVideoNotFound      = errors.New("vídeo não encontrado")
	UnauthorizedError     = errors.New("acesso não autorizado")
	UnExpectedError       = errors.New("erro interno, tente novamente")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrBadCredentials:     Unauthorized,
	ErrTooManyAttempts:    TooManyRequests,
	ErrEmailNotRegistered: NotFound,
	ErrResetTokenInvalid:  Unauthorized,
	ErrPasswordTooShort:   BadRequest,
	ErrImageRequired:      BadRequest,
	ErrVideoRequired:      BadRequest,
	ErrFileNotSupported:   BadRequest,
	ErrPostNotFound:       NotFound,
	ErrProductNotFound:    NotFound,
	ErrPhotoNotFound:      NotFound,
	ErrVideoNotFound:      NotFound,
	UnauthorizedError:     Unauthorized,
	UnExpectedError:       InternalServerError,
}
