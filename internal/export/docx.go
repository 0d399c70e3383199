package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/verbahq/verba/internal/summarizer"
)

const (
	fontName    = "Times New Roman"
	bodySize    = 11
	smallSize   = 10
	dateSize    = 12
	titleSize   = 14
	companySize = 16
)

const emptyMarker = "*(nenhuma)*"

// WriteDocx renders the minutes document: company header, the four
// sections, then a processing-info block.
func (e *implExporter) WriteDocx(result *summarizer.SummaryResult, meta Meta, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), meta.Company, true, companySize)
	addStyledRun(doc.AddParagraph(""), meta.Title, true, titleSize)
	addStyledRun(doc.AddParagraph(""), "Data: "+meta.Date, false, dateSize)
	addStyledRun(doc.AddParagraph(""), strings.Repeat("_", 50), false, bodySize)
	doc.AddParagraph("")

	addHeading(doc, "Resumo Executivo")
	addBody(doc, result.ResumoExecutivo, bodySize)
	doc.AddParagraph("")

	addHeading(doc, "Decisões")
	if len(result.Decisoes) == 0 {
		addBody(doc, emptyMarker, bodySize)
	} else {
		for _, decisao := range result.Decisoes {
			addBody(doc, "• "+decisao, bodySize)
		}
	}
	doc.AddParagraph("")

	addHeading(doc, "Próximas Ações")
	if len(result.ProximasAcoes) == 0 {
		addBody(doc, emptyMarker, bodySize)
	} else {
		addActionsTable(doc, result.ProximasAcoes)
	}
	doc.AddParagraph("")

	addHeading(doc, "Transcrição Completa")
	for _, line := range strings.Split(result.TranscricaoCompleta, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		addBody(doc, line, smallSize)
	}
	doc.AddParagraph("")

	addHeading(doc, "Informações de Processamento")
	addBody(doc, "Este documento foi gerado automaticamente pelo sistema Verba.", smallSize)
	addBody(doc, fmt.Sprintf("• Tokens utilizados: %d", result.TokensUsed), smallSize)
	addBody(doc, fmt.Sprintf("• Tempo de processamento: %.2f segundos", result.ProcessingTime), smallSize)
	addBody(doc, "• Data de geração: "+time.Now().Format("02/01/2006 às 15:04:05"), smallSize)

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func addActionsTable(doc *docx.RootDoc, actions []summarizer.ActionItem) {
	table := doc.AddTable()
	table.Style("LightList-Accent2")

	header := table.AddRow()
	header.AddCell().AddParagraph("Responsável")
	header.AddCell().AddParagraph("Ação")
	header.AddCell().AddParagraph("Prazo")

	for _, action := range actions {
		row := table.AddRow()
		row.AddCell().AddParagraph(action.Responsavel)
		row.AddCell().AddParagraph(action.Acao)
		row.AddCell().AddParagraph(action.Prazo)
	}
}

func addHeading(doc *docx.RootDoc, text string) {
	addStyledRun(doc.AddParagraph(""), text, true, titleSize)
}

func addBody(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(size).Color("000000")
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
