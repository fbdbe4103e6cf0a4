package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipline/barber-booking/internal/httperr"
	"github.com/clipline/barber-booking/internal/models"
)

func TestTransitions_OnlyPendingMoves(t *testing.T) {
	for _, current := range []Status{StatusCompleted, StatusCancelled, StatusExpired} {
		assert.True(t, httperr.IsBusiness(CanCancel(current), "invalid_state"), "cancel from %s", current)
		assert.True(t, httperr.IsBusiness(CanComplete(current), "invalid_state"), "complete from %s", current)
		assert.True(t, httperr.IsBusiness(CanExpire(current), "invalid_state"), "expire from %s", current)
	}

	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanComplete(StatusPending))
	assert.NoError(t, CanExpire(StatusPending))
}

func TestBlocks_OnlyCancelledFreesTheSlot(t *testing.T) {
	assert.True(t, Blocks(StatusPending))
	assert.True(t, Blocks(StatusCompleted))
	assert.True(t, Blocks(StatusExpired))

	assert.False(t, Blocks(StatusCancelled))
}

func TestCancel_SetsStatusAndTimestamp(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, Cancel(ap, now))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)

	// cancelar de novo é rejeitado
	assert.True(t, httperr.IsBusiness(Cancel(ap, now), "invalid_state"))
}

func TestComplete_SetsStatusAndTimestamp(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, Complete(ap, now))

	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	assert.True(t, httperr.IsBusiness(Cancel(ap, now), "invalid_state"))
}

func TestExpire_OnlyFromPending(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, Expire(ap))
	assert.Equal(t, string(StatusExpired), ap.Status)

	assert.True(t, httperr.IsBusiness(Expire(ap), "invalid_state"))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
