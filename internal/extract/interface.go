package extract

import "context"

// UseCase defines the business logic interface for the extract domain.
type UseCase interface {
	// Extract scans an email-like subject/body pair and returns deduplicated
	// candidate tasks in discovery order. Absent or unextractable text yields
	// an empty candidate list, not an error.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}
