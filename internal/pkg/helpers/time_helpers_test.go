package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2024-3-5")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"2024-13-40", "05/03/2024", "2024-02-30", "", " 2024-03-05", "2024-03-05T10:00:00"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestTrailingWindow(t *testing.T) {
	now := time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC)
	from, to := TrailingWindow(now, 7)

	assert.Equal(t, time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), to)
}
