package http

import (
	"mail-task-planner/internal/extract"
	"mail-task-planner/internal/model"
)

// --- Request DTOs ---

type extractReq struct {
	Subject string `json:"subject" binding:"max=1000"`
	Body    string `json:"body"    binding:"max=100000"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput() extract.ExtractInput {
	return extract.ExtractInput{
		Subject: r.Subject,
		Body:    r.Body,
	}
}

// --- Response DTOs ---

type candidateResp struct {
	Text             string  `json:"text"`
	Priority         string  `json:"priority"`
	EstimatedHours   float64 `json:"estimated_hours"`
	Deadline         string  `json:"deadline,omitempty"`
	SourceLineNumber int     `json:"source_line_number"`
}

func newCandidateResp(c model.CandidateTask) candidateResp {
	return candidateResp{
		Text:             c.Text,
		Priority:         string(c.Priority),
		EstimatedHours:   c.EstimatedHours,
		Deadline:         c.Deadline,
		SourceLineNumber: c.SourceLineNumber,
	}
}

type extractResp struct {
	Candidates []candidateResp `json:"candidates"`
	Count      int             `json:"count"`
}

func (h *handler) newExtractResp(out extract.ExtractOutput) extractResp {
	candidates := make([]candidateResp, len(out.Candidates))
	for i, c := range out.Candidates {
		candidates[i] = newCandidateResp(c)
	}
	return extractResp{
		Candidates: candidates,
		Count:      out.Count,
	}
}
