package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psalmos/web/internal/catalog"
	"github.com/psalmos/web/internal/domain"
)

func titles(tracks []domain.Track) []string {
	out := make([]string, 0, len(tracks))
	for _, track := range tracks {
		out = append(out, track.Title)
	}
	return out
}

func TestSearch(t *testing.T) {
	svc := catalog.NewService()

	t.Run("empty query with All genre returns everything", func(t *testing.T) {
		all := svc.Search("", "All")
		assert.Len(t, all, 4)
	})

	t.Run("empty genre behaves like All", func(t *testing.T) {
		assert.Equal(t, titles(svc.Search("", "All")), titles(svc.Search("", "")))
	})

	t.Run("query matches composer case-insensitively", func(t *testing.T) {
		results := svc.Search("beethoven", "All")
		require.Len(t, results, 1)
		assert.Equal(t, "Ludwig van Beethoven", results[0].Composer)
	})

	t.Run("query matches the performer", func(t *testing.T) {
		results := svc.Search("", "All")
		require.NotEmpty(t, results)

		byPerformer := svc.Search(results[0].Performer, "All")
		assert.NotEmpty(t, byPerformer)
	})

	t.Run("genre narrows the results", func(t *testing.T) {
		concertos := svc.Search("", "Concerto")
		require.NotEmpty(t, concertos)
		for _, track := range concertos {
			assert.Equal(t, "Concerto", track.Genre)
		}
	})

	t.Run("query and genre combine", func(t *testing.T) {
		results := svc.Search("vivaldi", "Symphony")
		assert.Empty(t, results, "Vivaldi fixture is a concerto, not a symphony")
	})

	t.Run("no match yields an empty slice", func(t *testing.T) {
		assert.Empty(t, svc.Search("no such composer", "All"))
	})
}

func TestGenres(t *testing.T) {
	svc := catalog.NewService()
	genres := svc.Genres()

	require.NotEmpty(t, genres)
	assert.Equal(t, "All", genres[0], "the catch-all filter leads the list")

	seen := make(map[string]bool, len(genres))
	for _, genre := range genres {
		assert.False(t, seen[genre], "duplicate genre %q", genre)
		seen[genre] = true
	}

	// Every fixture genre must be offered as a filter.
	for _, track := range svc.Search("", "All") {
		assert.True(t, seen[track.Genre], "genre %q missing from the filter list", track.Genre)
	}
}

func TestLabels(t *testing.T) {
	svc := catalog.NewService()

	major := svc.MajorLabels()
	require.NotEmpty(t, major)
	for _, label := range major {
		assert.Contains(t, []domain.LabelTier{domain.TierFlagship, domain.TierMajor}, label.Tier)
	}

	assert.NotEmpty(t, svc.IndependentLabels())
	assert.NotEmpty(t, svc.SpecializedLabels())
}
