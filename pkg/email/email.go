package email

import (
	"fmt"
	"net/smtp"

	"Pinboard/config"
	"Pinboard/pkg/log"

	"go.uber.org/zap"
)

// Sender 发信接口，调用方都是尽力而为：失败只记日志，不影响主流程
type Sender interface {
	Send(to, subject, html string) error
}

type SmtpSender struct {
	conf *config.EmailConfig
}

func NewSender(conf *config.Config) Sender {
	return &SmtpSender{conf: conf.Email}
}

func (s *SmtpSender) Send(to, subject, html string) error {
	if s.conf == nil || s.conf.Host == "" {
		// 未配置发信服务时静默跳过
		return nil
	}

	addr := fmt.Sprintf("%s:%d", s.conf.Host, s.conf.Port)
	msg := []byte("From: " + s.conf.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" + html)

	var auth smtp.Auth
	if s.conf.Username != "" {
		auth = smtp.PlainAuth("", s.conf.Username, s.conf.Password, s.conf.Host)
	}

	if err := smtp.SendMail(addr, auth, s.conf.From, []string{to}, msg); err != nil {
		log.L.Warn("send email failed", zap.String("to", to), zap.Error(err))
		return err
	}
	return nil
}
