package summarizer

// ActionItem is one row of the next-actions table.
type ActionItem struct {
	Responsavel string `json:"responsavel"`
	Acao        string `json:"acao"`
	Prazo       string `json:"prazo"`
}

// SummaryResult is the structured outcome of one summarization call.
// TranscricaoCompleta always carries the verbatim input transcript;
// chunking is an internal concern never reflected here.
type SummaryResult struct {
	ResumoExecutivo     string       `json:"resumo_executivo"`
	Decisoes            []string     `json:"decisoes"`
	ProximasAcoes       []ActionItem `json:"proximas_acoes"`
	TranscricaoCompleta string       `json:"transcricao_completa"`
	TokensUsed          int          `json:"tokens_used"`
	ProcessingTime      float64      `json:"processing_time"`
}
