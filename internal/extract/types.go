package extract

import "mail-task-planner/internal/model"

// ExtractInput is the raw text pair to scan.
type ExtractInput struct {
	Subject string
	Body    string
}

// ExtractOutput is the result of candidate extraction.
type ExtractOutput struct {
	Candidates []model.CandidateTask
	Count      int
}
