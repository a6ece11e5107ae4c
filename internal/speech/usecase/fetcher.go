package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"discursos-backend/internal/speech/domain"
	"discursos-backend/pkg/camara"
	"discursos-backend/pkg/classify"
	"discursos-backend/pkg/textutil"
)

type speechFetcher struct {
	client        *camara.Client
	itemCap       int
	summaryCutoff int
	now           func() time.Time
}

func NewSpeechFetcher(client *camara.Client, itemCap, summaryCutoff int) SpeechFetcher {
	return &speechFetcher{
		client:        client,
		itemCap:       itemCap,
		summaryCutoff: summaryCutoff,
		now:           time.Now,
	}
}

// FetchSpeeches loads one deputy's profile and speech list, classifies each
// speech's event phase, applies the type and term filters, and normalizes
// the survivors. Errors are logged and swallowed so that one deputy's
// failure cannot abort the aggregate.
func (s *speechFetcher) FetchSpeeches(ctx context.Context, deputyID int, f domain.SearchFilter) []domain.SpeechRecord {
	profile, err := s.client.DeputyByID(ctx, deputyID)
	if err != nil {
		log.Printf("[Fetcher] deputy %d profile: %v", deputyID, err)
		return nil
	}

	to := s.now()
	from := to.AddDate(0, 0, -f.PeriodDays)

	speeches, err := s.client.Speeches(ctx, deputyID, from, to, s.itemCap)
	if err != nil {
		log.Printf("[Fetcher] deputy %d speeches: %v", deputyID, err)
		return nil
	}

	status := profile.UltimoStatus
	records := make([]domain.SpeechRecord, 0, len(speeches))
	for _, speech := range speeches {
		event := classify.Classify(speech.FaseEvento.Titulo)

		if f.Type != "" && event != f.Type {
			continue
		}
		if f.Term != "" && !matchesTerm(speech, f.Term) {
			continue
		}

		date, hour := splitTimestamp(speech.DataHoraInicio)
		records = append(records, domain.SpeechRecord{
			DeputyID:   deputyID,
			Name:       status.NomeEleitoral,
			Party:      status.SiglaPartido,
			State:      status.SiglaUf,
			Photo:      status.URLFoto,
			Date:       date,
			Time:       hour,
			Summary:    textutil.Truncate(speech.Transcricao, s.summaryCutoff),
			Transcript: speech.Transcricao,
			Event:      event,
			SpeechID:   speech.ID,
		})
	}
	return records
}

// matchesTerm reports whether the speech's transcript (or, when the
// transcript is empty, its upstream summary) contains term,
// case-insensitively.
func matchesTerm(speech camara.Speech, term string) bool {
	text := speech.Transcricao
	if text == "" {
		text = speech.Sumario
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

// splitTimestamp breaks an upstream "2006-01-02T15:04:05" stamp into its
// date and HH:MM parts. A stamp with no time part yields an empty hour.
func splitTimestamp(stamp string) (date, hour string) {
	date, rest, found := strings.Cut(stamp, "T")
	if !found {
		return stamp, ""
	}
	if len(rest) > 5 {
		rest = rest[:5]
	}
	return date, rest
}
