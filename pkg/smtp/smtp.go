package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendBudgetAlert(userEmail string, category string, spent float64, limit float64) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{auth: auth, mail: mail, host: host, addr: host + ":587"}
}

func (s *smtp) SendBudgetAlert(userEmail string, category string, spent float64, limit float64) error {
	to := []string{userEmail}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Budget limit exceeded\r\n\r\nYour %s budget is exceeded: spent %.2f of %.2f. Overage: %.2f",
		userEmail, category, spent, limit, spent-limit))

	if err := smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message); err != nil {
		return err
	}

	return nil
}
