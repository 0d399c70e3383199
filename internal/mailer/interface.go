package mailer

// Message is one meeting-minutes delivery.
type Message struct {
	To          []string
	Cc          []string
	Bcc         []string
	Title       string
	Date        string // display date, dd/mm/yyyy
	DurationMin int
	TokensUsed  int
	Cost        float64
	Attachments []string
}

// Mailer sends generated minutes documents by e-mail.
type Mailer interface {
	Send(msg Message) error
}
