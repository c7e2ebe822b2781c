package weather

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	s := NewService("test-key")
	s.client.SetBaseURL(srv.URL)
	return s
}

func TestCurrent(t *testing.T) {
	s := testService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"main":{"temp":31.5,"temp_max":34.0,"humidity":62},"rain":{"1h":2.4},"weather":[{"description":"light rain"}]}`)
	})

	snap, err := s.Current(18.5, 74.0)
	require.NoError(t, err)
	assert.Equal(t, 31.5, snap.Temperature)
	assert.Equal(t, 34.0, snap.TempMax)
	assert.Equal(t, 62.0, snap.Humidity)
	assert.Equal(t, 2.4, snap.Rain1h)
	assert.Equal(t, "light rain", snap.Description)
}

func TestCurrentAPIError(t *testing.T) {
	s := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := s.Current(18.5, 74.0)
	require.Error(t, err)
}

func TestAnalyzeForIrrigation(t *testing.T) {
	t.Run("rainy forecast recommends skipping", func(t *testing.T) {
		s := testService(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/forecast", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"list":[
				{"main":{"temp_max":30},"rain":{"3h":6.0}},
				{"main":{"temp_max":33},"rain":{"3h":7.5}},
				{"main":{"temp_max":29}}
			]}`)
		})
		sig, err := s.AnalyzeForIrrigation(18.5, 74.0)
		require.NoError(t, err)
		assert.True(t, sig.RainExpected24h)
		assert.InDelta(t, 13.5, sig.TotalRainfallMM, 1e-9)
		assert.Equal(t, 33.0, sig.TemperatureMax)
		assert.Equal(t, "skip", sig.Recommendation)
	})

	t.Run("only the first eight slots count", func(t *testing.T) {
		body := `{"list":[`
		for i := 0; i < 8; i++ {
			body += `{"main":{"temp_max":30}},`
		}
		body += `{"main":{"temp_max":45},"rain":{"3h":50}}]}`
		s := testService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, body)
		})
		sig, err := s.AnalyzeForIrrigation(18.5, 74.0)
		require.NoError(t, err)
		assert.False(t, sig.RainExpected24h)
		assert.Zero(t, sig.TotalRainfallMM)
		assert.Equal(t, 30.0, sig.TemperatureMax)
		assert.Equal(t, "proceed", sig.Recommendation)
	})
}
