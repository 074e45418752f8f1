package languages_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlekbai/pushdown"
	"github.com/atlekbai/pushdown/languages"
)

func TestLanguages_SampleWords(t *testing.T) {
	for _, lang := range languages.All() {
		t.Run(lang.Name, func(t *testing.T) {
			builder := lang.Builder()
			for _, word := range lang.Accepted {
				result, err := lang.Recognize(word, 0)
				require.NoError(t, err)
				assert.True(t, result.Accepted, "expected %q to be accepted", word)
				assert.Equal(t, pushdown.Accept, result.Verdict)
				assert.True(t, builder.Accepts([]languages.Letter(word)...), "builder disagrees on %q", word)
			}
			for _, word := range lang.Rejected {
				result, err := lang.Recognize(word, 0)
				require.NoError(t, err)
				assert.False(t, result.Accepted, "expected %q to be rejected", word)
				assert.Equal(t, pushdown.NotAccepting, result.Verdict)
				assert.False(t, builder.Accepts([]languages.Letter(word)...), "builder disagrees on %q", word)
			}
		})
	}
}

func TestAnBn_CanonicalWords(t *testing.T) {
	for _, lang := range []languages.Language{languages.AnBn(), languages.AnBnSentinel()} {
		builder := lang.Builder()
		assert.True(t, builder.Accepts('a', 'b'), lang.Name)
		assert.True(t, builder.Accepts('a', 'a', 'b', 'b'), lang.Name)
		assert.True(t, builder.Accepts('a', 'a', 'a', 'b', 'b', 'b'), lang.Name)
		assert.False(t, builder.Accepts('a'), lang.Name)
		assert.False(t, builder.Accepts('b'), lang.Name)
		assert.False(t, builder.Accepts(), lang.Name)
	}
}

func TestRecognize_Trace(t *testing.T) {
	result, err := languages.Balanced().Recognize("()", 0)
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	assert.Equal(t, 4, result.Steps)
	assert.Equal(t, []string{
		"#1 (q, (, Z) -> (q, [( Z])",
		"#2 (q, ), () -> (q, [])",
		"#3 (q, ε, Z) -> (q, [])",
		"#4 (q, ε, ε) -> Accept",
	}, result.Trace)
}

func TestRecognize_StepLimit(t *testing.T) {
	result, err := languages.AnBn().Recognize("aaabbb", 3)

	var limitErr *pushdown.StepLimitError
	require.True(t, errors.As(err, &limitErr), "expected StepLimitError, got %v", err)
	assert.Equal(t, 3, limitErr.Limit)
	assert.Equal(t, 3, result.Steps)
	assert.Equal(t, pushdown.Processing, result.Verdict)
	assert.False(t, result.Accepted)
}

func TestLookup(t *testing.T) {
	lang, err := languages.Lookup("wcwr")
	require.NoError(t, err)
	assert.Equal(t, "wcwr", lang.Name)

	_, err = languages.Lookup("nope")
	var argErr *pushdown.ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Contains(t, err.Error(), "anbn-sentinel")
}

func TestNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"anbn", "anbn-sentinel", "balanced", "wcwr"}, languages.Names())
}

func TestDescribe(t *testing.T) {
	lines := languages.AnBn().Describe()
	assert.Equal(t, []string{
		"δ(q0, a, A) = (q0, [A A])",
		"δ(q0, a, Z) = (q0, [A])",
		"δ(q0, b, A) = (q1, [])",
		"δ(q1, b, A) = (q1, [])",
	}, lines)
}

func TestLetters_StopsEarly(t *testing.T) {
	var got []languages.Letter
	for l := range languages.Letters("abc") {
		got = append(got, l)
		if l == 'b' {
			break
		}
	}
	assert.Equal(t, []languages.Letter{'a', 'b'}, got)
}
