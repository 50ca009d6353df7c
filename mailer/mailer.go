package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"os"

	"banquet/rdx"
)

const channel = "mail-events"

// Message is one outbound notification email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Enqueue publishes the message for the mail worker and returns immediately.
// Delivery is fire-and-forget; a failed publish is logged, never surfaced to
// the booking flow.
func Enqueue(ctx context.Context, msg Message) {
	if msg.To == "" {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[mailer] marshal failed: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[mailer] publish failed: %v", err)
	}
}

// StartMailWorker consumes queued messages and delivers them over SMTP.
// Without SMTP_HOST configured it logs deliveries instead, which is what
// development runs want.
func StartMailWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[mailer] listening for mail events...")

	for m := range ch {
		var msg Message
		if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
			log.Printf("[mailer] bad payload: %v", err)
			continue
		}
		if err := deliver(msg); err != nil {
			log.Printf("[mailer] delivery to %s failed: %v", msg.To, err)
		}
	}
}

func deliver(msg Message) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Printf("[mailer] (dev) to=%s subject=%q", msg.To, msg.Subject)
		return nil
	}

	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	from := os.Getenv("SMTP_FROM")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")

	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		from, msg.To, msg.Subject, msg.Body)

	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}
	return smtp.SendMail(host+":"+port, auth, from, []string{msg.To}, []byte(body))
}
