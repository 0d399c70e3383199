package mailer

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

const bodyHTML = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
<h2>Ata de Reunião Gerada Automaticamente</h2>
<p><strong>{{.Title}}</strong></p>
<p>Olá,</p>
<p>Segue em anexo a ata da reunião gerada automaticamente pelo sistema Verba.</p>
<ul>
<li>Data: {{.Date}}</li>
<li>Duração: {{.DurationMin}} minutos</li>
<li>Tokens utilizados: {{.TokensUsed}}</li>
<li>Custo estimado: ${{.Cost}}</li>
</ul>
<p>O documento contém: Resumo Executivo, Decisões, Próximas Ações e a Transcrição Completa.</p>
<p>Atenciosamente,<br><strong>Sistema Verba</strong></p>
<p style="font-size: 12px; color: #666;">Gerado em {{.GeneratedAt}}</p>
</body>
</html>
`

var bodyTemplate = template.Must(template.New("body").Parse(bodyHTML))

// Send delivers the minutes with every attachment listed in msg.
// Missing attachment files error before any SMTP dialing happens.
func (m *implMailer) Send(msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients")
	}
	for _, path := range msg.Attachments {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("attachment missing: %w", err)
		}
	}

	body, err := buildBody(msg)
	if err != nil {
		return err
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.opts.From)
	mail.SetHeader("To", msg.To...)
	if len(msg.Cc) > 0 {
		mail.SetHeader("Cc", msg.Cc...)
	}
	if len(msg.Bcc) > 0 {
		mail.SetHeader("Bcc", msg.Bcc...)
	}
	mail.SetHeader("Subject", "Ata de Reunião: "+msg.Title)
	mail.SetBody("text/html", body)
	for _, path := range msg.Attachments {
		mail.Attach(path)
	}

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info(context.Background(), "e-mail sent to %s", strings.Join(msg.To, ", "))
	return nil
}

func buildBody(msg Message) (string, error) {
	data := struct {
		Title       string
		Date        string
		DurationMin int
		TokensUsed  int
		Cost        string
		GeneratedAt string
	}{
		Title:       msg.Title,
		Date:        msg.Date,
		DurationMin: msg.DurationMin,
		TokensUsed:  msg.TokensUsed,
		Cost:        fmt.Sprintf("%.4f", msg.Cost),
		GeneratedAt: time.Now().Format("02/01/2006 às 15:04:05"),
	}

	var b strings.Builder
	if err := bodyTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render mail body: %w", err)
	}
	return b.String(), nil
}
