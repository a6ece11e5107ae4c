package camara

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(ts *httptest.Server, retries int) *Client {
	return NewClient(ts.URL, 2*time.Second, retries, time.Millisecond)
}

func TestGetUnwrapsDadosEnvelope(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"dados": [{"id": 1}]}`))
	}))
	defer ts.Close()

	payload, err := newTestClient(ts, 1).Get(context.Background(), "/deputados", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 1}]`, string(payload))
	assert.Equal(t, userAgent, gotUA, "client identifier header must be attached")
}

func TestGetRetriesOnServerError(t *testing.T) {
	var attempts int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"dados": []}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts, 2).Get(context.Background(), "/partidos", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&attempts))
}

func TestGetPropagatesFinalFailure(t *testing.T) {
	var attempts int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := newTestClient(ts, 2).Get(context.Background(), "/partidos", nil)
	require.Error(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&attempts), "must stop after the configured attempts")

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr), "error must be an UpstreamError, got %T", err)
}

func TestGetRejectsMalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>blocked</html>"},
		{"missing dados", `{"links": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := newTestClient(ts, 1).Get(context.Background(), "/deputados", nil)
			var upstreamErr *UpstreamError
			require.True(t, errors.As(err, &upstreamErr))
		})
	}
}

func TestDeputiesBuildsQuery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "ASC", q.Get("ordem"))
		assert.Equal(t, "nome", q.Get("ordenarPor"))
		assert.Equal(t, "PT", q.Get("siglaPartido"))
		assert.Equal(t, "SP", q.Get("siglaUf"))
		w.Write([]byte(`{"dados": [{"id": 204554, "nome": "Deputada Exemplo", "siglaPartido": "PT", "siglaUf": "SP", "urlFoto": "https://example.org/204554.jpg"}]}`))
	}))
	defer ts.Close()

	deputies, err := newTestClient(ts, 1).Deputies(context.Background(), "PT", "SP")
	require.NoError(t, err)
	require.Len(t, deputies, 1)
	assert.Equal(t, 204554, deputies[0].ID)
	assert.Equal(t, "Deputada Exemplo", deputies[0].Nome)
}

func TestSpeechesBuildsDateRangeQuery(t *testing.T) {
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/deputados/42/discursos", r.URL.Path)
		assert.Equal(t, "2026-07-01", q.Get("dataInicio"))
		assert.Equal(t, "2026-07-31", q.Get("dataFim"))
		assert.Equal(t, "dataHoraInicio", q.Get("ordenarPor"))
		assert.Equal(t, "DESC", q.Get("ordem"))
		assert.Equal(t, "100", q.Get("itens"))
		w.Write([]byte(`{"dados": [{"dataHoraInicio": "2026-07-30T14:00:00", "transcricao": "fala", "faseEvento": {"titulo": "Sessão Solene"}}]}`))
	}))
	defer ts.Close()

	speeches, err := newTestClient(ts, 1).Speeches(context.Background(), 42, from, to, 100)
	require.NoError(t, err)
	require.Len(t, speeches, 1)
	assert.Equal(t, "Sessão Solene", speeches[0].FaseEvento.Titulo)
}
