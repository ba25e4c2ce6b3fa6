// Package groupsync mirrors timer state into a shared group-study session.
//
// The wire transport is not part of this package. Client is the seam a real
// transport plugs into; Loopback is the in-process default used for solo
// runs and tests. Failures never touch local timer or task state: callers
// surface the error text and carry on.
package groupsync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/riordanpawley/valerian/internal/domain"
)

// Snapshot is the state a participant shares with its session. The app
// assembles one from the live timer and queue before each mirror.
type Snapshot struct {
	Phase     string        `json:"phase"`
	Mode      string        `json:"mode"`
	WorkTime  int           `json:"work_time"`
	BreakTime int           `json:"break_time"`
	Pomodoros int           `json:"pomodoros"`
	Tasks     []domain.Task `json:"tasks,omitempty"`
	SentAt    time.Time     `json:"sent_at"`
}

// Client carries snapshots between group-session participants.
type Client interface {
	// Create opens a new session and returns it with the host role.
	Create(ctx context.Context) (domain.GroupSession, error)

	// Join attaches to an existing session by id with the member role.
	Join(ctx context.Context, id string) (domain.GroupSession, error)

	// Leave detaches from the session.
	Leave(ctx context.Context, session domain.GroupSession) error

	// Mirror publishes the participant's current snapshot. Best effort;
	// the timer does not wait on peers.
	Mirror(ctx context.Context, session domain.GroupSession, snap Snapshot) error
}

// Loopback keeps sessions in process memory.
type Loopback struct {
	mu       sync.Mutex
	sessions map[string]Snapshot
	logger   *slog.Logger
}

// NewLoopback creates an empty in-process session registry.
func NewLoopback(logger *slog.Logger) *Loopback {
	return &Loopback{
		sessions: make(map[string]Snapshot),
		logger:   logger,
	}
}

// Create opens a new session with a fresh opaque id.
func (l *Loopback) Create(ctx context.Context) (domain.GroupSession, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := uuid.NewString()
	l.sessions[id] = Snapshot{}

	l.logger.Debug("group session created", "session", id)
	return domain.GroupSession{
		ID:       id,
		Role:     domain.RoleHost,
		JoinedAt: time.Now(),
	}, nil
}

// Join attaches to a session created in this process.
func (l *Loopback) Join(ctx context.Context, id string) (domain.GroupSession, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.sessions[id]; !ok {
		return domain.GroupSession{}, &domain.PeerError{Op: "join", Session: id, Err: domain.ErrNoSession}
	}

	l.logger.Debug("group session joined", "session", id)
	return domain.GroupSession{
		ID:       id,
		Role:     domain.RoleMember,
		JoinedAt: time.Now(),
	}, nil
}

// Leave detaches from the session. The host leaving closes it.
func (l *Loopback) Leave(ctx context.Context, session domain.GroupSession) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.sessions[session.ID]; !ok {
		return &domain.PeerError{Op: "leave", Session: session.ID, Err: domain.ErrNoSession}
	}
	if session.Role == domain.RoleHost {
		delete(l.sessions, session.ID)
	}

	l.logger.Debug("group session left", "session", session.ID, "role", session.Role)
	return nil
}

// Mirror records the latest snapshot for the session.
func (l *Loopback) Mirror(ctx context.Context, session domain.GroupSession, snap Snapshot) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.sessions[session.ID]; !ok {
		return &domain.PeerError{Op: "mirror", Session: session.ID, Err: domain.ErrNoSession}
	}
	l.sessions[session.ID] = snap
	return nil
}

// Latest returns the last mirrored snapshot for the session.
func (l *Loopback) Latest(id string) (Snapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap, ok := l.sessions[id]
	return snap, ok
}
