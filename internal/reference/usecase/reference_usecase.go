package usecase

import (
	"context"
	"log"
	"time"

	"discursos-backend/internal/reference/domain"
	"discursos-backend/pkg/cache"
	"discursos-backend/pkg/camara"
	"discursos-backend/pkg/classify"
)

type ReferenceUsecase interface {
	// Parties returns the active-party filter options. Never fails: when
	// the upstream listing is unavailable the static fallback table is
	// served instead.
	Parties(ctx context.Context) []domain.Party

	// States returns the fixed state table.
	States() []domain.State

	// SpeechTypes returns the canonical session-type categories.
	SpeechTypes() []string
}

type referenceUsecase struct {
	client   *camara.Client
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewReferenceUsecase(client *camara.Client, c *cache.Cache, cacheTTL time.Duration) ReferenceUsecase {
	return &referenceUsecase{
		client:   client,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (u *referenceUsecase) Parties(ctx context.Context) []domain.Party {
	value, err := u.cache.GetOrRefresh("partidos", u.cacheTTL, func() (any, error) {
		upstream, err := u.client.Parties(ctx)
		if err != nil {
			return nil, err
		}

		parties := make([]domain.Party, 0, len(upstream))
		for _, p := range upstream {
			if p.Sigla != "" && p.Status.Situacao == "Ativo" {
				parties = append(parties, domain.Party{Code: p.Sigla})
			}
		}
		if len(parties) == 0 {
			// An empty listing means the upstream answered with junk;
			// treat it like an outage.
			return domain.FallbackParties, nil
		}
		return parties, nil
	})
	if err != nil {
		log.Printf("[Reference] party refresh failed, using fallback table: %v", err)
		return domain.FallbackParties
	}

	return value.([]domain.Party)
}

func (u *referenceUsecase) States() []domain.State {
	return domain.States
}

func (u *referenceUsecase) SpeechTypes() []string {
	return classify.Categories()
}
