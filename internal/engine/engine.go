package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"salascrea/internal/auth"
	"salascrea/internal/client"
	"salascrea/internal/entities"
)

var (
	// ErrIncompleteRequest means a required field is missing or invalid;
	// nothing was sent upstream.
	ErrIncompleteRequest = errors.New("reservation request is incomplete")
	// ErrMissingToken means the session carries no credential; nothing
	// was sent upstream.
	ErrMissingToken = errors.New("session token not found")
	// ErrSubmitInFlight means another submission for the same room has
	// not finished yet.
	ErrSubmitInFlight = errors.New("a submission for this room is already in flight")
)

// Notifier is told about reservations the upstream store accepted.
// Implementations must not block the submission path.
type Notifier interface {
	ReservationConfirmed(res entities.Reservation, session auth.Session)
}

// Engine holds the fetched reservation list and the occupancy derived
// from it, and submits new reservations against the upstream store.
// The occupancy map is rebuilt on every successful fetch and never
// persisted.
type Engine struct {
	client   *client.RevsClient
	notifier Notifier
	validate *validator.Validate
	logger   *zap.Logger

	mu           sync.RWMutex
	reservations []entities.Reservation
	occupied     map[string]int

	inflightMu sync.Mutex
	inflight   map[string]bool
}

func New(revs *client.RevsClient, notifier Notifier, logger *zap.Logger) *Engine {
	return &Engine{
		client:   revs,
		notifier: notifier,
		validate: validator.New(),
		logger:   logger,
		occupied: make(map[string]int),
		inflight: make(map[string]bool),
	}
}

// Refresh fetches the reservation collection and rebuilds the occupancy
// map. Fetch failures are logged and leave the previous state in place;
// they never propagate to the caller. Concurrent refreshes are safe,
// last write wins.
func (e *Engine) Refresh(ctx context.Context, session auth.Session) {
	if session.Token == "" {
		e.logger.Error("Refresh skipped: no session token")
		return
	}

	list, err := e.client.ListReservations(ctx, session.Token)
	if err != nil {
		e.logger.Error("Failed to refresh reservations, keeping previous state", zap.Error(err))
		return
	}

	occupied := make(map[string]int, len(entities.Rooms))
	for _, r := range list {
		if !r.State.CountsTowardOccupancy() {
			continue
		}
		if r.People <= 0 {
			continue
		}
		occupied[r.RoomID] += r.People
	}

	e.mu.Lock()
	e.reservations = list
	e.occupied = occupied
	e.mu.Unlock()

	e.logger.Info("Reservations refreshed",
		zap.Int("total", len(list)),
		zap.Int("rooms_occupied", len(occupied)),
	)
}

// Occupancy returns the summed party size of confirmed reservations for
// a room. Unknown rooms have zero occupancy.
func (e *Engine) Occupancy(roomID string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.occupied[roomID]
}

// Availability returns the remaining capacity for a room, floored at
// zero even when confirmed reservations exceed the aforo.
func (e *Engine) Availability(roomID string) int {
	available := entities.MaxCapacity - e.Occupancy(roomID)
	if available < 0 {
		return 0
	}
	return available
}

// Reservations returns a copy of the held reservation list.
func (e *Engine) Reservations() []entities.Reservation {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]entities.Reservation, len(e.reservations))
	copy(out, e.reservations)
	return out
}

// RoomStatuses derives the room-card view from the fixed catalog and
// the current occupancy map.
func (e *Engine) RoomStatuses() []entities.RoomStatus {
	statuses := make([]entities.RoomStatus, 0, len(entities.Rooms))
	for _, room := range entities.Rooms {
		statuses = append(statuses, entities.RoomStatus{
			Room:      room,
			Capacity:  entities.MaxCapacity,
			Occupied:  e.Occupancy(room.ID),
			Available: e.Availability(room.ID),
		})
	}
	return statuses
}

// Submit validates a candidate reservation, sends it upstream with the
// session's credential, and resynchronizes occupancy on success. The
// reservation is confirmed optimistically; remaining capacity is not
// enforced here, it is operator guidance only.
func (e *Engine) Submit(ctx context.Context, session auth.Session, req entities.SubmitRequest) (*entities.Reservation, error) {
	if err := e.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteRequest, err)
	}
	if session.Token == "" {
		return nil, ErrMissingToken
	}

	if !e.acquireRoom(req.RoomID) {
		return nil, ErrSubmitInFlight
	}
	defer e.releaseRoom(req.RoomID)

	reservation := &entities.Reservation{
		UserName: session.UserName,
		UserID:   session.UserID,
		RoomID:   req.RoomID,
		Date: entities.ReservationDate{
			Day:  req.Day,
			Time: NormalizeClock(req.Time),
		},
		People: req.People,
		State:  entities.StatusConfirmed,
	}

	if err := e.client.CreateReservation(ctx, session.Token, reservation); err != nil {
		return nil, err
	}

	e.logger.Info("Reservation created",
		zap.String("room_id", reservation.RoomID),
		zap.String("day", reservation.Date.Day),
		zap.Int("people", reservation.People),
	)

	e.Refresh(ctx, session)

	if e.notifier != nil {
		e.notifier.ReservationConfirmed(*reservation, session)
	}
	return reservation, nil
}

func (e *Engine) acquireRoom(roomID string) bool {
	e.inflightMu.Lock()
	defer e.inflightMu.Unlock()
	if e.inflight[roomID] {
		return false
	}
	e.inflight[roomID] = true
	return true
}

func (e *Engine) releaseRoom(roomID string) {
	e.inflightMu.Lock()
	delete(e.inflight, roomID)
	e.inflightMu.Unlock()
}

// NormalizeClock brings a time of day to HH:MM:SS, appending the seconds
// component when the input only has hours and minutes.
func NormalizeClock(clock string) string {
	if strings.Count(clock, ":") == 1 {
		return clock + ":00"
	}
	return clock
}
