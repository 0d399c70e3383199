package summarizer

import "fmt"

// minutesPromptTemplate is the canonical instruction for the final
// document. The section titles, their order and the *(nenhuma)*
// empty-marker are load-bearing: the reply parser depends on them.
const minutesPromptTemplate = `Você é um redator corporativo sênior. Gere um documento em Markdown com as seções na ordem exata:

### Resumo executivo
Breve resumo (≈150 palavras) em português-BR.

### Decisões
- Lista enumerada de decisões objetivas.

### Próximas ações
| Responsável | Ação | Prazo |
|-------------|------|-------|
| ... | ... | ... |

### Transcrição completa
%s

Use a data **%s** no primeiro parágrafo do resumo. Se não houver decisões ou ações, crie a linha "*(nenhuma)*".

Duração da reunião: %d minutos.
%s`

// chunkPromptTemplate is the abbreviated map-phase instruction: no
// transcript echo, smaller word budget.
const chunkPromptTemplate = `Você é um redator corporativo. Extraia as informações principais deste trecho de transcrição:

%s

Formate a resposta em:
- Resumo do trecho (≈50 palavras)
- Decisões identificadas (se houver)
- Ações identificadas (se houver)`

func buildMinutesPrompt(transcript string, durationMinutes int, meetingDate, languageNote string) string {
	note := ""
	if languageNote != "" {
		note = "Nota de idioma: " + languageNote
	}
	return fmt.Sprintf(minutesPromptTemplate, transcript, meetingDate, durationMinutes, note)
}

func buildChunkPrompt(chunk string) string {
	return fmt.Sprintf(chunkPromptTemplate, chunk)
}
