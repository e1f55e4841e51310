package mailer

import gomail "gopkg.in/gomail.v2"

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a composed message to the fulfillment inbox. The checkout
// flow treats any returned error as "order not placed".
type Sender interface {
	Send(m Message) error
}

type SMTP struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(host string, port int, user, pass, from string) *SMTP {
	return &SMTP{dialer: gomail.NewDialer(host, port, user, pass), from: from}
}

func (s *SMTP) Send(m Message) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.HTML)
	return s.dialer.DialAndSend(msg)
}
