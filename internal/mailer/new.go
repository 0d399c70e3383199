package mailer

import (
	"fmt"

	"github.com/verbahq/verba/internal/logger"
	"gopkg.in/gomail.v2"
)

// Options configures the SMTP transport.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // defaults to Username
}

type implMailer struct {
	opts   Options
	dialer *gomail.Dialer
	logger logger.Logger
}

// New creates a Mailer over an SMTP dialer. STARTTLS is negotiated by
// the dialer on port 587.
func New(opts Options, log logger.Logger) (Mailer, error) {
	if opts.Username == "" || opts.Password == "" {
		return nil, fmt.Errorf("mailer requires SMTP_USERNAME and SMTP_PASSWORD")
	}
	if opts.Host == "" {
		opts.Host = "smtp.gmail.com"
	}
	if opts.Port == 0 {
		opts.Port = 587
	}
	if opts.From == "" {
		opts.From = opts.Username
	}
	return &implMailer{
		opts:   opts,
		dialer: gomail.NewDialer(opts.Host, opts.Port, opts.Username, opts.Password),
		logger: log,
	}, nil
}
