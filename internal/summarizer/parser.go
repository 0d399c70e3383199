package summarizer

import (
	"regexp"
	"strings"
)

var (
	reResumo   = regexp.MustCompile(`(?s)### Resumo executivo\s*\n(.*?)(?:### |$)`)
	reDecisoes = regexp.MustCompile(`(?s)### Decisões\s*\n(.*?)(?:### |$)`)
	reAcoes    = regexp.MustCompile(`(?s)### Próximas ações\s*\n(.*?)(?:### |$)`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+`)
)

// parseReply extracts the structured sections from a model reply.
// The model's format is not contractually guaranteed, so nothing here
// errors: a missing section degrades to an empty value.
func parseReply(reply string) (string, []string, []ActionItem) {
	resumo := extractSection(reResumo, reply)
	decisoes := parseDecisions(extractSection(reDecisoes, reply))
	acoes := parseActions(extractSection(reAcoes, reply))
	return resumo, decisoes, acoes
}

func extractSection(re *regexp.Regexp, reply string) string {
	m := re.FindStringSubmatch(reply)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// parseDecisions accepts bulleted ("- ", "• ", "* ") and numbered
// ("N. ") lines. The exact empty-marker means no decisions. Lines
// matching neither pattern are dropped.
func parseDecisions(section string) []string {
	decisions := []string{}
	if section == "" || section == "*(nenhuma)*" {
		return decisions
	}

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "- "):
			decisions = append(decisions, line[2:])
		case strings.HasPrefix(line, "* "):
			decisions = append(decisions, line[2:])
		case strings.HasPrefix(line, "• "):
			decisions = append(decisions, strings.TrimPrefix(line, "• "))
		case reNumbered.MatchString(line):
			decisions = append(decisions, reNumbered.ReplaceAllString(line, ""))
		}
	}
	return decisions
}

// parseActions reads the three-column markdown table, skipping the
// separator row and the header row. Rows with fewer than three cells
// are discarded; extra cells are ignored.
func parseActions(section string) []ActionItem {
	actions := []ActionItem{}
	if section == "" || strings.Contains(section, "*(nenhuma)*") {
		return actions
	}

	for _, line := range strings.Split(section, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "|---") {
			continue
		}
		if strings.Contains(line, "Responsável") {
			continue
		}

		var cells []string
		for _, part := range strings.Split(line, "|") {
			part = strings.TrimSpace(part)
			if part != "" {
				cells = append(cells, part)
			}
		}
		if len(cells) >= 3 {
			actions = append(actions, ActionItem{
				Responsavel: cells[0],
				Acao:        cells[1],
				Prazo:       cells[2],
			})
		}
	}
	return actions
}
