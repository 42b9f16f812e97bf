package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kstagehub/kstage-backend/internal/repository"
)

func TestCursorRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	cursor := repository.EncodeCursor(now)
	require.NotEmpty(t, cursor)

	decoded, err := repository.DecodeCursor(cursor)
	require.NoError(t, err)
	assert.WithinDuration(t, now, decoded, time.Millisecond)
}

func TestDecodeCursorInvalid(t *testing.T) {
	_, err := repository.DecodeCursor("not-base64!!")
	assert.Error(t, err)

	_, err = repository.DecodeCursor("aGVsbG8=") // valid base64, not a timestamp
	assert.Error(t, err)
}
