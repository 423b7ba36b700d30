package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"intentions-tracker/internal/extract"
	"intentions-tracker/internal/progress"
	"intentions-tracker/internal/tracker"
	"intentions-tracker/internal/tracker/repository"
	"intentions-tracker/pkg/datemath"
	"intentions-tracker/pkg/llmprovider"
	"intentions-tracker/pkg/log"
)

const (
	daySummaryCacheSize = 64
	daySummaryCacheTTL  = 5 * time.Minute
)

// ContentGenerator is the slice of the LLM provider manager the
// usecase depends on.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// implUseCase is the private implementation of tracker.UseCase.
type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	llm    ContentGenerator
	parser extract.Service
	calc   progress.Calculator
	dates  *datemath.Parser

	// dayCache memoizes assembled day views. Every write operation
	// evicts the affected day.
	dayCache *expirable.LRU[string, tracker.DayDetailOutput]

	now func() time.Time
}

// New creates a new tracker UseCase implementation.
func New(
	repo repository.Repository,
	l log.Logger,
	llm ContentGenerator,
	parser extract.Service,
	calc progress.Calculator,
	dates *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		repo:     repo,
		l:        l,
		llm:      llm,
		parser:   parser,
		calc:     calc,
		dates:    dates,
		dayCache: expirable.NewLRU[string, tracker.DayDetailOutput](daySummaryCacheSize, nil, daySummaryCacheTTL),
		now:      time.Now,
	}
}
