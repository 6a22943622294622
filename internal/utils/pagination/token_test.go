package pagination_test

import (
	"testing"
	"time"

	"github.com/mindfulhq/mindful_journal_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	sortTime := time.Date(2024, 3, 2, 14, 5, 9, 123456789, time.UTC)
	token := pagination.EncodeToken(sortTime, "entry-42")

	gotTime, gotID, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, sortTime.Equal(gotTime))
	assert.Equal(t, "entry-42", gotID)
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	_, _, err = pagination.DecodeToken("bm8tc2VwYXJhdG9y") // "no-separator"
	assert.Error(t, err)

	_, _, err = pagination.DecodeToken("bm90LWEtdGltZXxpZA==") // "not-a-time|id"
	assert.Error(t, err)
}
