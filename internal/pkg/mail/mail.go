package mail

import (
	"ProtectAdmin/internal/api/config"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client 事务邮件接口客户端，目前只用于密码重置
type Client struct {
	http *resty.Client
	cfg  config.MailConfig
}

func NewClient(cfg config.MailConfig) *Client {
	c := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(10 * time.Second).
		SetHeader("Authorization", "Bearer "+cfg.ApiKey)

	return &Client{http: c, cfg: cfg}
}

// SendPasswordReset 发送密码重置邮件，链接带一次性 token
func (s *Client) SendPasswordReset(ctx context.Context, to string, token string) error {
	resetLink := s.cfg.ResetBaseURL + "?token=" + token

	body := map[string]string{
		"from":    s.cfg.From,
		"to":      to,
		"subject": "Grupo Protect - Redefinição de senha",
		"html": fmt.Sprintf(
			`<p>Recebemos um pedido para redefinir a senha do painel administrativo.</p>`+
				`<p><a href="%s">Clique aqui para criar uma nova senha</a>. O link expira em 1 hora.</p>`+
				`<p>Se você não fez este pedido, ignore este e-mail.</p>`, resetLink),
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/send")
	if err != nil {
		return errors.Wrap(err, "mail request failed")
	}
	if resp.IsError() {
		return errors.Errorf("mail send failed: status %d", resp.StatusCode())
	}

	return nil
}
