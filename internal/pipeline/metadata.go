package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const pipelineVersion = "1.0.0"

// Metadata is the metadata.json artifact written into every run
// directory, success or failure.
type Metadata struct {
	PipelineVersion     string       `json:"pipeline_version"`
	StartTime           string       `json:"start_time"`
	Steps               []Step       `json:"steps"`
	EndTime             string       `json:"end_time,omitempty"`
	TotalProcessingTime float64      `json:"total_processing_time,omitempty"`
	OutputFile          string       `json:"output_file,omitempty"`
	Summary             *SummaryInfo `json:"summary,omitempty"`
	Error               string       `json:"error,omitempty"`
}

// Step records one pipeline step with its step-specific result payload.
type Step struct {
	Step      string      `json:"step"`
	Timestamp string      `json:"timestamp"`
	Result    interface{} `json:"result"`
}

// SummaryInfo is the summarization step's contribution to the artifact.
type SummaryInfo struct {
	TokensUsed     int     `json:"tokens_used"`
	ProcessingTime float64 `json:"processing_time"`
	EstimatedCost  float64 `json:"estimated_cost"`
	ResumoLength   int     `json:"resumo_length"`
	DecisoesCount  int     `json:"decisoes_count"`
	AcoesCount     int     `json:"acoes_count"`
}

func newMetadata() *Metadata {
	return &Metadata{
		PipelineVersion: pipelineVersion,
		StartTime:       time.Now().Format(time.RFC3339),
		Steps:           []Step{},
	}
}

func (m *Metadata) AddStep(name string, result interface{}) {
	m.Steps = append(m.Steps, Step{
		Step:      name,
		Timestamp: time.Now().Format(time.RFC3339),
		Result:    result,
	})
}

// Save writes metadata.json into dir.
func (m *Metadata) Save(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	path := filepath.Join(dir, "metadata.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}
