package service

import (
	"ProtectAdmin/internal/pkg/consts"
	"ProtectAdmin/internal/pkg/redis"
	"ProtectAdmin/internal/pkg/security"
	"ProtectAdmin/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// SessionStore 登录限流计数、token 黑名单和重置 token 的键值依赖
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type redisSessionStore struct{}

func NewRedisSessionStore() SessionStore {
	return &redisSessionStore{}
}

func (s *redisSessionStore) Get(ctx context.Context, key string) (string, error) {
	return redis.GetValue(ctx, key)
}

func (s *redisSessionStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return redis.SetWithExpiration(ctx, key, value, ttl)
}

func (s *redisSessionStore) Delete(ctx context.Context, key string) error {
	return redis.DeleteKey(ctx, key)
}

func (s *redisSessionStore) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	return redis.IncrWithExpiration(ctx, key, ttl)
}

// MailSender 事务邮件依赖
type MailSender interface {
	SendPasswordReset(ctx context.Context, to string, token string) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authServiceImpl struct {
	repo  repository.AdminUserRepo
	store SessionStore
	mail  MailSender
}

func NewAuthService(repo repository.AdminUserRepo, store SessionStore, mail MailSender) AuthService {
	return &authServiceImpl{
		repo:  repo,
		store: store,
		mail:  mail,
	}
}

const (
	loginAttemptsWindow = 10 * time.Minute
	resetTokenTTL       = time.Hour
)

// Login 错误提示不区分「账号不存在」和「密码错误」，避免撞库探测
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	attemptsKey := consts.LoginAttemptsKey + email

	attempts, err := s.store.Get(ctx, attemptsKey)
	if err != nil {
		return "", err
	}
	if n, _ := strconv.Atoi(attempts); n >= consts.LoginMaxAttempts {
		return "", ErrTooManyAttempts
	}

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if admin == nil || !admin.IsActive || security.CheckPasswordHash(password, admin.Password) != nil {
		if _, err = s.store.Incr(ctx, attemptsKey, loginAttemptsWindow); err != nil {
			log.WarnContext(ctx, "failed to record login attempt", "err", err)
		}
		return "", ErrBadCredentials
	}

	if err = s.store.Delete(ctx, attemptsKey); err != nil {
		log.WarnContext(ctx, "failed to clear login attempts", "err", err)
	}

	return security.GenerateToken(admin.ID, admin.Email, []string{admin.Role})
}

// Logout 把签名写进黑名单，有效期和 token 本身一致
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	return s.store.Set(ctx, signature, "revoked", security.JWTExpirationTime)
}

func (s *authServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrEmailNotRegistered
	}

	token := uuid.NewString()
	if err = s.store.Set(ctx, consts.PasswordResetKey+token,
		strconv.FormatUint(admin.ID, 10), resetTokenTTL); err != nil {
		return err
	}

	if err = s.mail.SendPasswordReset(ctx, admin.Email, token); err != nil {
		log.ErrorContext(ctx, "failed to send password reset mail", "err", err)
		return UnExpectedError
	}

	return nil
}

func (s *authServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	resetKey := consts.PasswordResetKey + token
	idStr, err := s.store.Get(ctx, resetKey)
	if err != nil {
		return err
	}
	if idStr == "" {
		return ErrResetTokenInvalid
	}

	adminID, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return ErrResetTokenInvalid
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err = s.repo.UpdatePassword(ctx, adminID, hash); err != nil {
		return err
	}

	// token 一次性，用完即删
	if err = s.store.Delete(ctx, resetKey); err != nil {
		log.WarnContext(ctx, "failed to delete reset token", "err", err)
	}

	return nil
}
