package mailing

import (
	"fmt"
	"strconv"

	"github.com/rubeenavs/foodwise/internal/utils"
	"gopkg.in/gomail.v2"
)

// SendMail delivers one HTML mail through the configured SMTP relay. The
// sender identity and relay credentials come from the SMTP_* config keys.
func SendMail(toEmail string, subject string, body string) error {
	port, err := strconv.Atoi(utils.GetConfig("SMTP_PORT"))
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	message := gomail.NewMessage()
	message.SetAddressHeader("From", utils.GetConfig("SMTP_AUTH_EMAIL"), utils.GetConfig("SMTP_SENDER_NAME"))
	message.SetHeader("To", toEmail)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	dialer := gomail.NewDialer(
		utils.GetConfig("SMTP_HOST"),
		port,
		utils.GetConfig("SMTP_AUTH_EMAIL"),
		utils.GetConfig("SMTP_AUTH_PASSWORD"),
	)

	if err := dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("sending mail to %s: %w", toEmail, err)
	}
	return nil
}
