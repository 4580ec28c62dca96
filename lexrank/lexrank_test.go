package lexrank_test

import (
	"testing"

	"github.com/fwojciec/wikisum"
	"github.com/fwojciec/wikisum/lexrank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Ranker implements wikisum.SentenceRanker at compile time.
var _ wikisum.SentenceRanker = (*lexrank.Ranker)(nil)

var solarSystem = []string{
	"The solar system contains planets and moons.",
	"Cats purr loudly.",
	"Planets orbit the sun in the solar system.",
	"Dogs bark at night.",
	"Moons orbit planets in the solar system.",
	"Bread needs flour.",
}

func TestRanker_Rank(t *testing.T) {
	t.Parallel()

	t.Run("selects the connected cluster in document order", func(t *testing.T) {
		t.Parallel()

		got, err := lexrank.NewRanker().Rank(solarSystem, 3)

		require.NoError(t, err)
		assert.Equal(t, []int{0, 2, 4}, got)
	})

	t.Run("returns every index when there are fewer sentences than requested", func(t *testing.T) {
		t.Parallel()

		got, err := lexrank.NewRanker().Rank(solarSystem[:4], 6)

		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3}, got)
	})

	t.Run("breaks ties by original order", func(t *testing.T) {
		t.Parallel()

		sentences := []string{
			"Volcanoes erupt lava.",
			"Volcanoes erupt lava.",
			"Volcanoes erupt lava.",
			"Glaciers carve valleys.",
		}

		got, err := lexrank.NewRanker().Rank(sentences, 2)

		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, got)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		ranker := lexrank.NewRanker()
		first, err := ranker.Rank(solarSystem, 2)
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			again, err := ranker.Rank(solarSystem, 2)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("rejects non-positive count", func(t *testing.T) {
		t.Parallel()

		_, err := lexrank.NewRanker().Rank(solarSystem, 0)

		require.Error(t, err)
		assert.Equal(t, wikisum.EINVALID, wikisum.ErrorCode(err))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := lexrank.NewRanker().Rank(nil, 3)

		require.Error(t, err)
	})

	t.Run("ranks stop words when nothing else is rankable", func(t *testing.T) {
		t.Parallel()

		got, err := lexrank.NewRanker().Rank([]string{"It is.", "So it was!", "It was.", "Why?", "But why?"}, 2)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("fails when no sentence has rankable terms", func(t *testing.T) {
		t.Parallel()

		_, err := lexrank.NewRanker().Rank([]string{"...", "A b c.", "!?", "I.", "x y"}, 2)

		require.Error(t, err)
		assert.Contains(t, wikisum.ErrorMessage(err), "no rankable terms")
	})
}

func TestRanker_Scores(t *testing.T) {
	t.Parallel()

	t.Run("scores form a probability distribution", func(t *testing.T) {
		t.Parallel()

		scores, err := lexrank.NewRanker().Scores(solarSystem)
		require.NoError(t, err)

		var sum float64
		for _, s := range scores {
			assert.Greater(t, s, 0.0)
			sum += s
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("isolated sentences score below connected ones", func(t *testing.T) {
		t.Parallel()

		scores, err := lexrank.NewRanker().Scores(solarSystem)
		require.NoError(t, err)

		for _, connected := range []int{0, 2, 4} {
			for _, isolated := range []int{1, 3, 5} {
				assert.Greater(t, scores[connected], scores[isolated])
			}
		}
	})

	t.Run("an isolated sentence keeps no mass of its own", func(t *testing.T) {
		t.Parallel()

		scores, err := lexrank.NewRanker().Scores([]string{
			"Mars has red dust storms.",
			"Dust storms cover Mars.",
			"Jupiter rings glow faintly.",
		})
		require.NoError(t, err)

		// A self loop would hold every score at 1/3.
		assert.Greater(t, scores[0], scores[2])
		assert.Greater(t, scores[1], scores[2])
		assert.InDelta(t, scores[0], scores[1], 1e-9)
	})

	t.Run("identical input yields identical scores", func(t *testing.T) {
		t.Parallel()

		a, err := lexrank.NewRanker().Scores(solarSystem)
		require.NoError(t, err)
		b, err := lexrank.NewRanker().Scores(solarSystem)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})
}
