package courier_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []courier.Status{courier.StatusOffline, courier.StatusOnline, courier.StatusBusy} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		for _, s := range []courier.Status{courier.StatusUnknown, courier.Status(42)} {
			require.Error(t, s.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[courier.Status]string{
		courier.StatusUnknown: "Unknown",
		courier.StatusOffline: "Offline",
		courier.StatusOnline:  "Online",
		courier.StatusBusy:    "Busy",
		courier.Status(42):    "Unknown",
	}

	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("go_online", func(t *testing.T) {
		next, err := courier.StatusOffline.GoOnline()
		require.NoError(t, err)
		assert.Equal(t, courier.StatusOnline, next)

		next, err = courier.StatusOnline.GoOnline()
		require.NoError(t, err)
		assert.Equal(t, courier.StatusOnline, next)

		_, err = courier.StatusBusy.GoOnline()
		require.Error(t, err)
	})

	t.Run("go_offline_from_any_valid_status", func(t *testing.T) {
		for _, s := range []courier.Status{courier.StatusOffline, courier.StatusOnline, courier.StatusBusy} {
			next, err := s.GoOffline()
			require.NoError(t, err)
			assert.Equal(t, courier.StatusOffline, next)
		}

		_, err := courier.StatusUnknown.GoOffline()
		require.Error(t, err)
	})

	t.Run("mark_busy", func(t *testing.T) {
		next, err := courier.StatusOnline.MarkBusy()
		require.NoError(t, err)
		assert.Equal(t, courier.StatusBusy, next)

		next, err = courier.StatusBusy.MarkBusy()
		require.NoError(t, err)
		assert.Equal(t, courier.StatusBusy, next)

		_, err = courier.StatusOffline.MarkBusy()
		require.Error(t, err)
	})

	t.Run("release", func(t *testing.T) {
		next, err := courier.StatusBusy.Release()
		require.NoError(t, err)
		assert.Equal(t, courier.StatusOnline, next)

		next, err = courier.StatusOffline.Release()
		require.NoError(t, err)
		assert.Equal(t, courier.StatusOffline, next)

		next, err = courier.StatusOnline.Release()
		require.NoError(t, err)
		assert.Equal(t, courier.StatusOnline, next)
	})
}
