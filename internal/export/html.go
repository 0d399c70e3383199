package export

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/verbahq/verba/internal/summarizer"
)

// minutesHTML is the standalone print document the PDF converter
// consumes. A4 page setup, section styling, and timestamped transcript
// lines mirror the DOCX layout.
const minutesHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
@page { margin: 1in; size: A4; }
body { font-family: Arial, sans-serif; font-size: 11pt; line-height: 1.4; color: #333; }
header { text-align: center; margin-bottom: 30px; }
.company-name { font-size: 16pt; font-weight: bold; color: #2c3e50; }
.meeting-title { font-size: 14pt; font-weight: bold; color: #34495e; }
.date { font-size: 12pt; color: #7f8c8d; }
.separator { border: none; border-top: 1px solid #bdc3c7; margin: 20px 0; }
section { margin-bottom: 30px; page-break-inside: avoid; }
h3 { font-size: 14pt; color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 5px; }
p { text-align: justify; }
.none-found { font-style: italic; color: #7f8c8d; }
.actions-table { width: 100%; border-collapse: collapse; }
.actions-table th, .actions-table td { border: 1px solid #bdc3c7; padding: 8px; text-align: left; }
.actions-table th { background-color: #ecf0f1; font-weight: bold; }
.transcript-content { background-color: #f8f9fa; padding: 15px; border: 1px solid #e9ecef; }
.transcript-line { margin-bottom: 8px; font-size: 10pt; }
.timestamp { font-weight: bold; color: #6c757d; }
footer { border-top: 1px solid #bdc3c7; padding-top: 20px; font-size: 10pt; color: #6c757d; }
</style>
</head>
<body>
<header>
<h1 class="company-name">{{.Company}}</h1>
<h2 class="meeting-title">{{.Title}}</h2>
<p class="date">Data: {{.Date}}</p>
<hr class="separator">
</header>
<main>
<section>
<h3>Resumo Executivo</h3>
<p>{{.Resumo}}</p>
</section>
<section>
<h3>Decisões</h3>
{{if .Decisoes}}<ul>
{{range .Decisoes}}<li>{{.}}</li>
{{end}}</ul>{{else}}<p class="none-found"><em>(nenhuma)</em></p>{{end}}
</section>
<section>
<h3>Próximas Ações</h3>
{{if .Acoes}}<table class="actions-table">
<thead><tr><th>Responsável</th><th>Ação</th><th>Prazo</th></tr></thead>
<tbody>
{{range .Acoes}}<tr><td>{{.Responsavel}}</td><td>{{.Acao}}</td><td>{{.Prazo}}</td></tr>
{{end}}</tbody>
</table>{{else}}<p class="none-found"><em>(nenhuma)</em></p>{{end}}
</section>
<section>
<h3>Transcrição Completa</h3>
<div class="transcript-content">
{{range .Transcript}}<p class="transcript-line">{{if .Timestamp}}<span class="timestamp">{{.Timestamp}}</span> {{end}}<span class="text">{{.Text}}</span></p>
{{end}}</div>
</section>
</main>
<footer>
<h4>Informações de Processamento</h4>
<p>Este documento foi gerado automaticamente pelo sistema Verba.</p>
<ul>
<li>Tokens utilizados: {{.TokensUsed}}</li>
<li>Tempo de processamento: {{.ProcessingTime}} segundos</li>
<li>Data de geração: {{.GeneratedAt}}</li>
</ul>
</footer>
</body>
</html>
`

var minutesTemplate = template.Must(template.New("minutes").Parse(minutesHTML))

type transcriptLine struct {
	Timestamp string
	Text      string
}

type minutesData struct {
	Title          string
	Company        string
	Date           string
	Resumo         string
	Decisoes       []string
	Acoes          []summarizer.ActionItem
	Transcript     []transcriptLine
	TokensUsed     int
	ProcessingTime string
	GeneratedAt    string
}

// BuildHTML renders the minutes as a standalone HTML document. All
// model- and transcript-supplied text is escaped by the template.
func BuildHTML(result *summarizer.SummaryResult, meta Meta) (string, error) {
	data := minutesData{
		Title:          meta.Title,
		Company:        meta.Company,
		Date:           meta.Date,
		Resumo:         result.ResumoExecutivo,
		Decisoes:       result.Decisoes,
		Acoes:          result.ProximasAcoes,
		Transcript:     splitTranscript(result.TranscricaoCompleta),
		TokensUsed:     result.TokensUsed,
		ProcessingTime: fmt.Sprintf("%.2f", result.ProcessingTime),
		GeneratedAt:    time.Now().Format("02/01/2006 às 15:04:05"),
	}

	var b strings.Builder
	if err := minutesTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return b.String(), nil
}

// splitTranscript breaks the transcript into display lines, peeling a
// leading "[HH:MM:SS]" timestamp off each line when present.
func splitTranscript(transcript string) []transcriptLine {
	var lines []transcriptLine
	for _, raw := range strings.Split(transcript, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "[") {
			if end := strings.Index(raw, "]"); end > 0 {
				lines = append(lines, transcriptLine{
					Timestamp: raw[:end+1],
					Text:      strings.TrimSpace(raw[end+1:]),
				})
				continue
			}
		}
		lines = append(lines, transcriptLine{Text: raw})
	}
	return lines
}
