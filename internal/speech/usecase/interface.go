package usecase

import (
	"context"

	"discursos-backend/internal/speech/domain"
)

// SpeechUsecase aggregates floor speeches across deputies.
type SpeechUsecase interface {
	// Search resolves the candidate deputies for f, fans out one fetch per
	// deputy, and returns one sorted, paginated page of speeches. A returned
	// error always means invalid input; upstream trouble degrades to an
	// empty result with an explanatory Message.
	Search(ctx context.Context, f domain.SearchFilter) (domain.SearchResult, error)
}

// SpeechFetcher retrieves, classifies and filters one deputy's speeches.
// Implementations must absorb their own failures: a deputy whose data is
// unavailable contributes nothing, never an error.
type SpeechFetcher interface {
	FetchSpeeches(ctx context.Context, deputyID int, f domain.SearchFilter) []domain.SpeechRecord
}
