package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// UnpaidDigestData feeds the daily digest template.
type UnpaidDigestData struct {
	UnpaidCount int64
	TotalPax    int64
}

// SendUnpaidDigestEmail mails the office a summary of bookings that are
// still Pending or Partial. Called from the daily scheduler.
func SendUnpaidDigestEmail(to string, unpaidCount, totalPax int64) error {
	tmpl, err := template.ParseFiles("templates/email/unpaid_digest.html")
	if err != nil {
		return fmt.Errorf("could not load digest template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, UnpaidDigestData{UnpaidCount: unpaidCount, TotalPax: totalPax}); err != nil {
		return fmt.Errorf("could not render digest template: %w", err)
	}

	host := os.Getenv("SMTP_HOST")
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Unpaid bookings digest")
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(host, port, username, password)
	return d.DialAndSend(m)
}

// SendPasswordResetEmail mails an operator a one-time reset link.
func SendPasswordResetEmail(to, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("APP_URL"), token)

	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{to}
	e.Subject = "Reset your back-office password"
	e.HTML = []byte(fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p><a href=%q>Reset password</a> (valid for 30 minutes)</p>"+
			"<p>If you did not ask for this, ignore this message.</p>", resetLink))

	addr := os.Getenv("SMTP_HOST") + ":" + os.Getenv("SMTP_PORT")
	auth := smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))
	return e.Send(addr, auth)
}
