package queryparams_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearauth/oauthkit/pkg/queryparams"
)

func TestBuildURL(t *testing.T) {
	t.Parallel()

	t.Run("appends with question mark", func(t *testing.T) {
		t.Parallel()
		got := queryparams.BuildURL("https://x.com/a", map[string]string{"p": "1 2"})
		assert.Equal(t, "https://x.com/a?p=1%202", got)
	})

	t.Run("appends with ampersand when query exists", func(t *testing.T) {
		t.Parallel()
		got := queryparams.BuildURL("https://x.com/a?x=1", map[string]string{"p": "v"})
		assert.Equal(t, "https://x.com/a?x=1&p=v", got)
	})

	t.Run("multiple params in sorted order", func(t *testing.T) {
		t.Parallel()
		got := queryparams.BuildURL("https://auth.example.com/authorize", map[string]string{
			"response_type": "code",
			"client_id":     "abc",
		})
		assert.Equal(t, "https://auth.example.com/authorize?client_id=abc&response_type=code", got)
	})

	t.Run("encodes keys and values", func(t *testing.T) {
		t.Parallel()
		got := queryparams.BuildURL("https://x.com", map[string]string{"redirect uri": "https://app.example.com/cb?a=b"})
		assert.Equal(t, "https://x.com?redirect%20uri=https%3A%2F%2Fapp.example.com%2Fcb%3Fa%3Db", got)
	})

	t.Run("no params returns base untouched", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://x.com/a", queryparams.BuildURL("https://x.com/a", nil))
		assert.Equal(t, "https://x.com/a", queryparams.BuildURL("https://x.com/a", map[string]string{}))
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("all params present", func(t *testing.T) {
		t.Parallel()
		err := queryparams.Validate(map[string]string{
			"client_id":    "abc",
			"redirect_uri": "https://app.example.com/cb",
		})
		require.NoError(t, err)
	})

	t.Run("empty map", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, queryparams.Validate(nil))
		require.NoError(t, queryparams.Validate(map[string]string{}))
	})

	t.Run("empty value fails naming the key", func(t *testing.T) {
		t.Parallel()
		err := queryparams.Validate(map[string]string{"client_id": ""})
		require.Error(t, err)
		assert.Equal(t, "client_id is required.", err.Error())
		assert.ErrorIs(t, err, queryparams.ErrMissingParam)
	})

	t.Run("first offender in sorted order wins", func(t *testing.T) {
		t.Parallel()
		err := queryparams.Validate(map[string]string{
			"zeta":  "",
			"alpha": "",
			"mid":   "ok",
		})
		require.Error(t, err)
		assert.Equal(t, "alpha is required.", err.Error())
	})

	t.Run("typed error exposes the param", func(t *testing.T) {
		t.Parallel()
		err := queryparams.Validate(map[string]string{"scope": ""})
		var mpe *queryparams.MissingParamError
		require.ErrorAs(t, err, &mpe)
		assert.Equal(t, "scope", mpe.Param)
	})
}
