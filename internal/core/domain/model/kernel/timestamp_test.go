package kernel_test

import (
	"testing"
	"time"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimestamp(t *testing.T) {
	t.Run("should create valid timestamp from past time", func(t *testing.T) {
		moment := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		ts, err := kernel.NewTimestamp(moment)

		require.NoError(t, err)
		require.NoError(t, ts.Validate())
		assert.True(t, ts.Time().Equal(moment))
	})

	t.Run("should fail with zero time", func(t *testing.T) {
		_, err := kernel.NewTimestamp(time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with future time", func(t *testing.T) {
		future := time.Now().Add(time.Hour)

		_, err := kernel.NewTimestamp(future)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "is in the future")
	})
}

func TestNewTimestampNow(t *testing.T) {
	t.Run("should create valid timestamp", func(t *testing.T) {
		ts := kernel.NewTimestampNow()

		require.NoError(t, ts.Validate())
		assert.False(t, ts.Time().After(time.Now()))
	})
}

func TestTimestampFromString(t *testing.T) {
	t.Run("should parse RFC 3339 string", func(t *testing.T) {
		ts, err := kernel.TimestampFromString("2024-03-01T12:00:00Z")

		require.NoError(t, err)
		assert.True(t, ts.Time().Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("should fail with unparseable string", func(t *testing.T) {
		_, err := kernel.TimestampFromString("yesterday")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "timestamp is invalid")
	})

	t.Run("should fail with future date string", func(t *testing.T) {
		future := time.Now().Add(24 * time.Hour).Format(time.RFC3339)

		_, err := kernel.TimestampFromString(future)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is in the future")
	})
}

func TestTimestamp_Validate(t *testing.T) {
	t.Run("should fail for zero value timestamp", func(t *testing.T) {
		var ts kernel.Timestamp

		err := ts.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrTimestampIsNotConstructed, err)
	})
}

func TestTimestamp_Format(t *testing.T) {
	t.Run("should render human-readable string", func(t *testing.T) {
		moment := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		ts, err := kernel.NewTimestamp(moment)
		require.NoError(t, err)

		assert.Equal(t, "Fri, 01 Mar 2024 12:00:00 UTC", ts.Format())
		assert.Equal(t, ts.Format(), ts.String())
	})
}

func TestTimestamp_IsEqual(t *testing.T) {
	moment := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should return true for same instant", func(t *testing.T) {
		ts1, _ := kernel.NewTimestamp(moment)
		ts2, _ := kernel.NewTimestamp(moment)

		equal, err := ts1.IsEqual(ts2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should return false for different instants", func(t *testing.T) {
		ts1, _ := kernel.NewTimestamp(moment)
		ts2, _ := kernel.NewTimestamp(moment.Add(time.Minute))

		equal, err := ts1.IsEqual(ts2)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should fail for unconstructed timestamp", func(t *testing.T) {
		ts1, _ := kernel.NewTimestamp(moment)
		var ts2 kernel.Timestamp

		_, err := ts1.IsEqual(ts2)

		require.Error(t, err)
	})
}
