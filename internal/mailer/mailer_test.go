package mailer

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verbahq/verba/internal/logger"
)

func testLogger() logger.Logger {
	return logger.NewWithWriter(io.Discard, "error", "text")
}

func TestNewRequiresCredentials(t *testing.T) {
	if _, err := New(Options{}, testLogger()); err == nil {
		t.Error("New() should require SMTP credentials")
	}
	if _, err := New(Options{Username: "u@example.com", Password: "p"}, testLogger()); err != nil {
		t.Errorf("New() error = %v", err)
	}
}

func TestSendMissingAttachment(t *testing.T) {
	m, err := New(Options{Username: "u@example.com", Password: "p"}, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	err = m.Send(Message{
		To:          []string{"dest@example.com"},
		Title:       "Reunião Semanal",
		Attachments: []string{filepath.Join(t.TempDir(), "missing.pdf")},
	})
	if err == nil || !strings.Contains(err.Error(), "attachment missing") {
		t.Errorf("Send() error = %v, want attachment-missing error", err)
	}
}

func TestSendNoRecipients(t *testing.T) {
	m, err := New(Options{Username: "u@example.com", Password: "p"}, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Send(Message{Title: "x"}); err == nil {
		t.Error("Send() should error without recipients")
	}
}

func TestBuildBody(t *testing.T) {
	tmp := t.TempDir()
	pdf := filepath.Join(tmp, "ata.pdf")
	if err := os.WriteFile(pdf, []byte("%PDF"), 0644); err != nil {
		t.Fatal(err)
	}

	body, err := buildBody(Message{
		To:          []string{"dest@example.com"},
		Title:       "Planejamento <Q1>",
		Date:        "01/02/2024",
		DurationMin: 45,
		TokensUsed:  1530,
		Cost:        0.0459,
		Attachments: []string{pdf},
	})
	if err != nil {
		t.Fatalf("buildBody() error = %v", err)
	}

	for _, want := range []string{
		"Planejamento &lt;Q1&gt;",
		"Duração: 45 minutos",
		"Tokens utilizados: 1530",
		"$0.0459",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}
