package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"discursos-backend/internal/reference/domain"
	"discursos-backend/pkg/cache"
	"discursos-backend/pkg/camara"

	"github.com/google/go-cmp/cmp"
)

func newReferenceUsecase(ts *httptest.Server) ReferenceUsecase {
	client := camara.NewClient(ts.URL, 2*time.Second, 1, 0)
	return NewReferenceUsecase(client, cache.New(), 24*time.Hour)
}

func TestPartiesFiltersActiveAndCaches(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"dados": [
			{"sigla": "PT", "status": {"situacao": "Ativo"}},
			{"sigla": "PRONA", "status": {"situacao": "Inativo"}},
			{"sigla": "", "status": {"situacao": "Ativo"}},
			{"sigla": "NOVO", "status": {"situacao": "Ativo"}}
		]}`))
	}))
	defer ts.Close()
	uc := newReferenceUsecase(ts)

	want := []domain.Party{{Code: "PT"}, {Code: "NOVO"}}
	for i := 0; i < 2; i++ {
		if diff := cmp.Diff(want, uc.Parties(context.Background())); diff != "" {
			t.Errorf("Parties mismatch (-want +got):\n%s", diff)
		}
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("upstream hit %d times, want 1 (cached)", hits)
	}
}

func TestPartiesFallsBackWhenUpstreamFails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()
	uc := newReferenceUsecase(ts)

	if diff := cmp.Diff(domain.FallbackParties, uc.Parties(context.Background())); diff != "" {
		t.Errorf("fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestPartiesFallsBackOnEmptyListing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dados": []}`))
	}))
	defer ts.Close()
	uc := newReferenceUsecase(ts)

	if diff := cmp.Diff(domain.FallbackParties, uc.Parties(context.Background())); diff != "" {
		t.Errorf("fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestStatesTableIsComplete(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()
	uc := newReferenceUsecase(ts)

	states := uc.States()
	if len(states) != 27 {
		t.Fatalf("got %d states, want 27", len(states))
	}
	codes := make(map[string]bool, len(states))
	for _, s := range states {
		if len(s.Code) != 2 || s.Name == "" {
			t.Errorf("malformed state entry %+v", s)
		}
		if codes[s.Code] {
			t.Errorf("duplicate state code %q", s.Code)
		}
		codes[s.Code] = true
	}
}

func TestSpeechTypes(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()
	uc := newReferenceUsecase(ts)

	types := uc.SpeechTypes()
	if len(types) != 9 {
		t.Fatalf("got %d speech types, want 9", len(types))
	}
	if types[0] != "Sessão Deliberativa" || types[8] != "Seminário" {
		t.Errorf("unexpected canonical order: %v", types)
	}
}
