package sentences_test

import (
	"sync"
	"testing"

	"github.com/fwojciec/wikisum"
	"github.com/fwojciec/wikisum/sentences"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Tokenizer implements wikisum.SentenceTokenizer at compile time.
var _ wikisum.SentenceTokenizer = (*sentences.Tokenizer)(nil)

func TestTokenizer_Tokenize(t *testing.T) {
	t.Parallel()

	t.Run("splits sentences on terminal punctuation", func(t *testing.T) {
		t.Parallel()

		got, err := sentences.NewTokenizer().Tokenize("Earth is round. It orbits the Sun. Is it unique?")

		require.NoError(t, err)
		assert.Equal(t, []string{"Earth is round.", "It orbits the Sun.", "Is it unique?"}, got)
	})

	t.Run("does not split decimal numbers", func(t *testing.T) {
		t.Parallel()

		got, err := sentences.NewTokenizer().Tokenize("Earth formed 4.5 billion years ago. Life followed.")

		require.NoError(t, err)
		assert.Equal(t, []string{"Earth formed 4.5 billion years ago.", "Life followed."}, got)
	})

	t.Run("treats each line as a paragraph", func(t *testing.T) {
		t.Parallel()

		got, err := sentences.NewTokenizer().Tokenize("A caption without a period\nThe next line is a sentence.\n\n  \nLast one.")

		require.NoError(t, err)
		assert.Equal(t, []string{"A caption without a period", "The next line is a sentence.", "Last one."}, got)
	})

	t.Run("returns no sentences for blank input", func(t *testing.T) {
		t.Parallel()

		got, err := sentences.NewTokenizer().Tokenize(" \n\t\n")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("is safe for concurrent first use", func(t *testing.T) {
		t.Parallel()

		var wg sync.WaitGroup
		results := make([][]string, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = sentences.NewTokenizer().Tokenize("The first sentence ends here. The second one follows.")
			}(i)
		}
		wg.Wait()

		for _, r := range results {
			assert.Equal(t, []string{"The first sentence ends here.", "The second one follows."}, r)
		}
	})
}
