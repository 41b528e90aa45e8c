package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := &MockLogger{}
	boom := errors.New("boom")

	mock.WithField(FieldKey, "recentSearches").WithError(boom).Warn("could not load")
	mock.Info("plain")

	entries := mock.GetEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, boom, entries[0].Error)
	assert.Equal(t, []Field{{Key: FieldKey, Value: "recentSearches"}}, entries[0].Fields)
	assert.Nil(t, entries[1].Error)

	assert.Len(t, mock.GetEntriesByLevel("INFO"), 1)
	assert.True(t, mock.HasEntry("WARN", "could not load"))

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}

func TestMockLogger_Fatalf(t *testing.T) {
	mock := &MockLogger{}
	mock.Fatalf("bad %s", "config")
	assert.True(t, mock.HasEntry("FATAL", "bad config"))
}
