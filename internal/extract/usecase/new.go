package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"mail-task-planner/internal/extract"
	"mail-task-planner/internal/model"
	"mail-task-planner/pkg/dateparse"
	pkgLog "mail-task-planner/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	normalizer *dateparse.Normalizer

	// Extraction is a pure function of (input, reference date), so results
	// are safe to memoize. Nil when caching is disabled.
	cache *lru.Cache[string, []model.CandidateTask]
}

var _ extract.UseCase = (*implUseCase)(nil)

// New creates a new extract UseCase instance. cacheSize <= 0 disables the
// result cache.
func New(l pkgLog.Logger, normalizer *dateparse.Normalizer, cacheSize int) *implUseCase {
	var cache *lru.Cache[string, []model.CandidateTask]
	if cacheSize > 0 {
		cache, _ = lru.New[string, []model.CandidateTask](cacheSize)
	}
	return &implUseCase{
		l:          l,
		normalizer: normalizer,
		cache:      cache,
	}
}
