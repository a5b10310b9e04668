package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// Mailer 求片上架邮件
type Mailer interface {
	SendMovieAvailable(ctx context.Context, to, movieName, movieLink string) error
}

// NoopMailer 未配置邮件服务时使用，只记录日志
type NoopMailer struct{}

func (NoopMailer) SendMovieAvailable(_ context.Context, to, movieName, movieLink string) error {
	log.Printf("[Mailer] 未配置邮件服务，跳过发送: to=%s movie=%s link=%s", to, movieName, movieLink)
	return nil
}

var movieAvailableTmpl = template.Must(template.New("movie_available").Parse(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Good news!</h2>
  <p>The movie you requested, <strong class="movie-name">{{.MovieName}}</strong>, is now available on {{.SiteName}}.</p>
  <p><a class="watch-link" href="{{.URL}}" style="display: inline-block; padding: 10px 20px; background: #e50914; color: #fff; text-decoration: none; border-radius: 4px;">Watch now</a></p>
  <p style="color: #888; font-size: 12px;">You received this email because you requested a movie on {{.SiteName}}.</p>
</div>`))

// ResendMailer 通过 Resend 发送邮件
type ResendMailer struct {
	client   *resend.Client
	from     string
	siteName string
	siteURL  string
}

// NewResendMailer 创建 Resend 邮件发送器
func NewResendMailer(apiKey, from, siteName, siteURL string) *ResendMailer {
	return &ResendMailer{
		client:   resend.NewCustomClient(&http.Client{Timeout: 10 * time.Second}, apiKey),
		from:     from,
		siteName: siteName,
		siteURL:  strings.TrimRight(siteURL, "/"),
	}
}

// SendMovieAvailable 发送"已上架"邮件，movieLink 为站内路径
func (m *ResendMailer) SendMovieAvailable(ctx context.Context, to, movieName, movieLink string) error {
	body, err := m.render(movieName, movieLink)
	if err != nil {
		return err
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: fmt.Sprintf("Your requested movie %s is now available!", movieName),
		Html:    body,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}

	log.Printf("[Mailer] 邮件已发送: id=%s to=%s", sent.Id, to)
	return nil
}

func (m *ResendMailer) render(movieName, movieLink string) (string, error) {
	var buf bytes.Buffer
	err := movieAvailableTmpl.Execute(&buf, map[string]string{
		"MovieName": movieName,
		"SiteName":  m.siteName,
		"URL":       m.siteURL + movieLink,
	})
	if err != nil {
		return "", fmt.Errorf("渲染邮件模板失败: %w", err)
	}
	return buf.String(), nil
}
