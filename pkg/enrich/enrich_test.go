package enrich

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"krishi/entities"
	"krishi/pkg/ai"
	"krishi/pkg/knowledge"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.DynamicCrop{}))
	return db
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(testDB(t))

	rec := &entities.CropRecord{
		ScientificName: "Allium cepa",
		DurationMonths: 4,
		Seasons:        []string{"Rabi (November-March)"},
	}
	require.NoError(t, store.Save("Onion", "https://example.org/onion", rec))

	t.Run("resolve is case-insensitive", func(t *testing.T) {
		got, err := store.Resolve("ONION")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Allium cepa", got.ScientificName)
	})

	t.Run("missing crop resolves to nil, nil", func(t *testing.T) {
		got, err := store.Resolve("garlic")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("save upserts", func(t *testing.T) {
		rec.DurationMonths = 5
		require.NoError(t, store.Save("onion", "https://example.org/onion2", rec))
		got, err := store.Resolve("onion")
		require.NoError(t, err)
		assert.Equal(t, 5.0, got.DurationMonths)
		names, err := store.Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"onion"}, names)
	})
}

func TestResolverFeedsKnowledgeBase(t *testing.T) {
	store := NewStore(testDB(t))
	require.NoError(t, store.Save("onion", "", &entities.CropRecord{ScientificName: "Allium cepa"}))

	cat, err := knowledge.NewCatalog("")
	require.NoError(t, err)
	base := knowledge.NewBase(cat, store)

	rec, nf := base.Lookup("onion")
	require.Nil(t, nf)
	// Partial record gets working defaults.
	assert.Equal(t, 120, rec.HarvestIndicators.MaturityDays)
	assert.Equal(t, 4.0, rec.DurationMonths)
	assert.Greater(t, rec.SoilRequirements.NPK.Nitrogen.Max, 0.0)
}

func TestScraper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><head><title>Onion Farming</title></head><body>
			<main><h1>Onion</h1><p>Onion grows best in mild weather.</p>
			<li>Transplant at 6 weeks</li></main></body></html>`)
	}))
	defer srv.Close()
	host := mustHost(t, srv.URL)

	t.Run("extracts main content", func(t *testing.T) {
		s := NewScraper([]string{host}, 0)
		text, title, err := s.FetchMainText(srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "Onion Farming", title)
		assert.Contains(t, text, "mild weather")
		assert.Contains(t, text, "Transplant at 6 weeks")
	})

	t.Run("blocks unlisted domains", func(t *testing.T) {
		s := NewScraper([]string{"agri.example.org"}, 0)
		_, _, err := s.FetchMainText(srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")
	})
}

func TestLearnFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, "<html><head><title>Onion</title></head><body><main><p>%s</p></main></body></html>",
			"Onion agronomy notes. "+longFiller())
	}))
	defer srv.Close()

	store := NewStore(testDB(t))
	svc := NewService(NewScraper([]string{mustHost(t, srv.URL)}, 0), ai.NewMock(), store)

	rec, err := svc.LearnFromURL("onion", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "onion", rec.ScientificName)

	known, err := svc.Known()
	require.NoError(t, err)
	assert.Equal(t, []string{"onion"}, known)
}

func mustHost(t *testing.T, rawURL string) string {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return u.Host
}

func longFiller() string {
	s := ""
	for i := 0; i < 30; i++ {
		s += "Sow in well drained soil and irrigate on a ten day cycle. "
	}
	return s
}
