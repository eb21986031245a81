package review

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("should return nil for empty input", func(t *testing.T) {
		assert.Nil(t, Split("", 3500))
	})

	t.Run("should keep short input as a single chunk", func(t *testing.T) {
		chunks := Split("diff --git a/main.go b/main.go", 3500)

		require.Len(t, chunks, 1)
		assert.Equal(t, "diff --git a/main.go b/main.go", chunks[0])
	})

	t.Run("should cut fixed windows with a short tail", func(t *testing.T) {
		chunks := Split("abcdefghij", 4)

		assert.Equal(t, []string{"abcd", "efgh", "ij"}, chunks)
	})

	t.Run("should reproduce the input when concatenated", func(t *testing.T) {
		input := strings.Repeat("+added line\n-removed line\n", 500)

		chunks := Split(input, 3500)

		assert.Equal(t, input, strings.Join(chunks, ""))
	})

	t.Run("should size windows in runes and never split multi-byte characters", func(t *testing.T) {
		input := strings.Repeat("ñ", 10)

		chunks := Split(input, 4)

		require.Len(t, chunks, 3)
		for _, chunk := range chunks {
			assert.True(t, utf8.ValidString(chunk))
		}
		assert.Equal(t, 4, utf8.RuneCountInString(chunks[0]))
		assert.Equal(t, 4, utf8.RuneCountInString(chunks[1]))
		assert.Equal(t, 2, utf8.RuneCountInString(chunks[2]))
	})

	t.Run("should treat a non-positive size as a single chunk", func(t *testing.T) {
		chunks := Split("content", 0)

		assert.Equal(t, []string{"content"}, chunks)
	})

	t.Run("should produce an exact window count for aligned input", func(t *testing.T) {
		chunks := Split(strings.Repeat("x", 12), 4)

		assert.Len(t, chunks, 3)
	})
}
