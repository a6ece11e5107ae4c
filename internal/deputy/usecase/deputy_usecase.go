package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"discursos-backend/internal/deputy/domain"
	"discursos-backend/pkg/cache"
	"discursos-backend/pkg/camara"
	"discursos-backend/pkg/textutil"
)

// MinSearchTermLen is the minimum name-search term length; shorter terms
// return no results without touching the upstream.
const MinSearchTermLen = 3

// MaxSearchResults caps the name-search response size.
const MaxSearchResults = 10

type DeputyUsecase interface {
	// Resolve lists candidate deputies for a party/state filter. Both
	// arguments empty lists the whole chamber; callers gate that.
	Resolve(ctx context.Context, party, state string) ([]domain.DeputySummary, error)

	// SearchByName finds deputies whose name contains term, accent- and
	// case-insensitively. Never fails: an unavailable upstream yields no
	// matches.
	SearchByName(ctx context.Context, term string) []domain.DeputySummary
}

type deputyUsecase struct {
	client   *camara.Client
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewDeputyUsecase(client *camara.Client, c *cache.Cache, cacheTTL time.Duration) DeputyUsecase {
	return &deputyUsecase{
		client:   client,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (u *deputyUsecase) Resolve(ctx context.Context, party, state string) ([]domain.DeputySummary, error) {
	key := fmt.Sprintf("deputados:%s:%s", party, state)

	value, err := u.cache.GetOrRefresh(key, u.cacheTTL, func() (any, error) {
		deputies, err := u.client.Deputies(ctx, party, state)
		if err != nil {
			return nil, err
		}

		summaries := make([]domain.DeputySummary, 0, len(deputies))
		for _, d := range deputies {
			summaries = append(summaries, domain.DeputySummary{
				ID:    d.ID,
				Name:  d.Nome,
				Party: d.SiglaPartido,
				State: d.SiglaUf,
				Photo: d.URLFoto,
			})
		}
		return summaries, nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]domain.DeputySummary), nil
}

func (u *deputyUsecase) SearchByName(ctx context.Context, term string) []domain.DeputySummary {
	if len([]rune(term)) < MinSearchTermLen {
		return []domain.DeputySummary{}
	}

	// The upstream has no name-contains filter, so search walks the full
	// chamber listing (cached under the unfiltered key).
	all, err := u.Resolve(ctx, "", "")
	if err != nil {
		log.Printf("[Deputy] name search for %q failed: %v", term, err)
		return []domain.DeputySummary{}
	}

	matches := make([]domain.DeputySummary, 0, MaxSearchResults)
	for _, d := range all {
		if !textutil.ContainsNormalized(d.Name, term) {
			continue
		}
		matches = append(matches, d)
		if len(matches) == MaxSearchResults {
			break
		}
	}
	return matches
}
