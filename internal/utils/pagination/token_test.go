package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovabank/direct_debit_engine/internal/utils/pagination"
)

func TestTokenRoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 10, 30, 0, 123456789, time.UTC)
	movementID := "a2b7e1f0-9c4d-4e8a-b1c2-d3e4f5a6b7c8"

	token := pagination.EncodeToken(createdAt, movementID)
	require.NotEmpty(t, token)

	gotTime, gotID, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime), "expected %v, got %v", createdAt, gotTime)
	assert.Equal(t, movementID, gotID)
}

func TestTokenRoundTripPreservesNanoseconds(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 1, time.UTC)

	token := pagination.EncodeToken(createdAt, "mv-1")
	gotTime, _, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
}

func TestDecodeTokenInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"missing separator", base64.StdEncoding.EncodeToString([]byte("2026-03-15T10:30:00Z"))},
		{"bad timestamp", base64.StdEncoding.EncodeToString([]byte("yesterday|mv-1"))},
		{"empty id", base64.StdEncoding.EncodeToString([]byte("2026-03-15T10:30:00Z|"))},
		{"empty token", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := pagination.DecodeToken(tc.token)
			assert.Error(t, err)
		})
	}
}
