package epoch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clearauth/oauthkit/pkg/epoch"
)

func TestSeconds(t *testing.T) {
	t.Parallel()

	t.Run("floors sub-second components", func(t *testing.T) {
		t.Parallel()
		ts := time.Unix(42, 999_999_999)
		assert.Equal(t, int64(42), epoch.Seconds(ts))
	})

	t.Run("exact second unchanged", func(t *testing.T) {
		t.Parallel()
		ts := time.Unix(1_700_000_000, 0)
		assert.Equal(t, int64(1_700_000_000), epoch.Seconds(ts))
	})

	t.Run("monotonic non-decreasing", func(t *testing.T) {
		t.Parallel()
		base := time.Unix(100, 0)
		prev := epoch.Seconds(base)
		for i := 1; i <= 5000; i++ {
			cur := epoch.Seconds(base.Add(time.Duration(i) * 333 * time.Millisecond))
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})
}

func TestFromMillis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ms   int64
		want int64
	}{
		{name: "sub-second floors to one", ms: 1500, want: 1},
		{name: "exact second", ms: 2000, want: 2},
		{name: "zero", ms: 0, want: 0},
		{name: "just below a second", ms: 999, want: 0},
		{name: "negative floors toward past", ms: -1500, want: -2},
		{name: "negative exact second", ms: -2000, want: -2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, epoch.FromMillis(tt.ms))
		})
	}
}

func TestNow(t *testing.T) {
	t.Parallel()

	before := time.Now().Unix()
	got := epoch.Now()
	after := time.Now().Unix()

	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}
