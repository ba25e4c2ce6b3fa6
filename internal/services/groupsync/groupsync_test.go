package groupsync

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/valerian/internal/domain"
)

func testLoopback() *Loopback {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewLoopback(logger)
}

func TestLoopback_CreateAssignsHostRole(t *testing.T) {
	client := testLoopback()

	session, err := client.Create(context.Background())

	require.NoError(t, err)
	assert.True(t, session.Active())
	assert.Equal(t, domain.RoleHost, session.Role)
	assert.False(t, session.JoinedAt.IsZero())
}

func TestLoopback_JoinExistingSession(t *testing.T) {
	client := testLoopback()
	host, err := client.Create(context.Background())
	require.NoError(t, err)

	member, err := client.Join(context.Background(), host.ID)

	require.NoError(t, err)
	assert.Equal(t, host.ID, member.ID)
	assert.Equal(t, domain.RoleMember, member.Role)
}

func TestLoopback_JoinUnknownSessionFails(t *testing.T) {
	client := testLoopback()

	_, err := client.Join(context.Background(), "missing")

	require.Error(t, err)

	var peerErr *domain.PeerError
	require.True(t, errors.As(err, &peerErr))
	assert.Equal(t, "join", peerErr.Op)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestLoopback_MirrorAndLatest(t *testing.T) {
	client := testLoopback()
	session, err := client.Create(context.Background())
	require.NoError(t, err)

	snap := Snapshot{
		Phase:     "running",
		Mode:      "work",
		WorkTime:  900,
		BreakTime: 120,
		Pomodoros: 2,
		SentAt:    time.Now(),
	}
	require.NoError(t, client.Mirror(context.Background(), session, snap))

	got, ok := client.Latest(session.ID)
	require.True(t, ok)
	assert.Equal(t, snap, got)
}

func TestLoopback_MirrorAfterHostLeavesFails(t *testing.T) {
	client := testLoopback()
	session, err := client.Create(context.Background())
	require.NoError(t, err)

	require.NoError(t, client.Leave(context.Background(), session))

	err = client.Mirror(context.Background(), session, Snapshot{Phase: "running"})
	require.Error(t, err)

	var peerErr *domain.PeerError
	require.True(t, errors.As(err, &peerErr))
	assert.Equal(t, "mirror", peerErr.Op)
}

func TestLoopback_MemberLeaveKeepsSessionOpen(t *testing.T) {
	client := testLoopback()
	host, err := client.Create(context.Background())
	require.NoError(t, err)

	member, err := client.Join(context.Background(), host.ID)
	require.NoError(t, err)

	require.NoError(t, client.Leave(context.Background(), member))

	// Host can still mirror after a member leaves.
	assert.NoError(t, client.Mirror(context.Background(), host, Snapshot{Phase: "grace"}))
}
