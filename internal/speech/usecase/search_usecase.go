package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	deputydomain "discursos-backend/internal/deputy/domain"
	"discursos-backend/internal/speech/domain"
)

// DeputyResolver is the slice of the deputy usecase the scheduler needs.
type DeputyResolver interface {
	Resolve(ctx context.Context, party, state string) ([]deputydomain.DeputySummary, error)
}

type searchUsecase struct {
	resolver  DeputyResolver
	fetcher   SpeechFetcher
	deputyCap int
	workers   int
	deadline  time.Duration
	pageSize  int
}

func NewSearchUsecase(resolver DeputyResolver, fetcher SpeechFetcher, deputyCap, workers int, deadline time.Duration, pageSize int) SpeechUsecase {
	return &searchUsecase{
		resolver:  resolver,
		fetcher:   fetcher,
		deputyCap: deputyCap,
		workers:   workers,
		deadline:  deadline,
		pageSize:  pageSize,
	}
}

func (u *searchUsecase) Search(ctx context.Context, f domain.SearchFilter) (domain.SearchResult, error) {
	if !f.Narrowed() {
		return domain.SearchResult{
			Items:   []domain.SpeechRecord{},
			Message: "Informe um partido, estado ou deputado para buscar discursos.",
		}, nil
	}

	// The whole batch runs under one deadline: fetchers still in flight
	// when it expires contribute nothing and the page is served from
	// whatever settled in time.
	ctx, cancel := context.WithTimeout(ctx, u.deadline)
	defer cancel()

	var speeches []domain.SpeechRecord

	if f.DeputyID != 0 {
		// Single-deputy search needs no resolver and no fan-out.
		speeches = u.fetcher.FetchSpeeches(ctx, f.DeputyID, f)
	} else {
		candidates, err := u.resolver.Resolve(ctx, f.Party, f.State)
		if err != nil {
			log.Printf("[Search] resolving deputies (party=%q state=%q): %v", f.Party, f.State, err)
			return domain.SearchResult{
				Items:   []domain.SpeechRecord{},
				Message: "Não foi possível buscar os deputados no momento. Tente novamente.",
			}, nil
		}
		if len(candidates) == 0 {
			return domain.SearchResult{
				Items:   []domain.SpeechRecord{},
				Message: "Nenhum deputado encontrado para os filtros informados.",
			}, nil
		}

		// The upstream has no bulk speech endpoint, so an exhaustive
		// fan-out over a large candidate set cannot finish within an
		// interactive latency budget. Scan a bounded prefix instead.
		if len(candidates) > u.deputyCap {
			candidates = candidates[:u.deputyCap]
		}

		speeches = u.fanOut(ctx, candidates, f)
	}

	if f.Term != "" {
		speeches = filterByTerm(speeches, f.Term)
	}

	// Date is zero-padded ISO, so a lexicographic sort of Date+Time is
	// chronological.
	sort.Slice(speeches, func(i, j int) bool {
		return speeches[i].Date+speeches[i].Time > speeches[j].Date+speeches[j].Time
	})

	return paginate(speeches, f.Page, u.pageSize), nil
}

// fanOut runs one fetch per candidate with bounded concurrency and collects
// every settlement before returning. The upstream is shared and
// rate-sensitive, so the worker bound is small.
func (u *searchUsecase) fanOut(ctx context.Context, candidates []deputydomain.DeputySummary, f domain.SearchFilter) []domain.SpeechRecord {
	resultChan := make(chan []domain.SpeechRecord, len(candidates))
	semaphore := make(chan struct{}, u.workers)

	for _, candidate := range candidates {
		go func(deputyID int) {
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			resultChan <- u.fetcher.FetchSpeeches(ctx, deputyID, f)
		}(candidate.ID)
	}

	// Collection order is settlement order; the caller re-sorts.
	var speeches []domain.SpeechRecord
	for range candidates {
		speeches = append(speeches, <-resultChan...)
	}
	return speeches
}

// filterByTerm is the second, cross-deputy term pass over the merged set,
// matching against the truncated summary or the full transcript.
func filterByTerm(speeches []domain.SpeechRecord, term string) []domain.SpeechRecord {
	term = strings.ToLower(term)
	filtered := make([]domain.SpeechRecord, 0, len(speeches))
	for _, s := range speeches {
		if strings.Contains(strings.ToLower(s.Summary), term) ||
			strings.Contains(strings.ToLower(s.Transcript), term) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func paginate(speeches []domain.SpeechRecord, page, pageSize int) domain.SearchResult {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(speeches) {
		return domain.SearchResult{Total: len(speeches), Items: []domain.SpeechRecord{}}
	}

	end := start + pageSize
	if end > len(speeches) {
		end = len(speeches)
	}
	return domain.SearchResult{Total: len(speeches), Items: speeches[start:end]}
}
