package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"salascrea/internal/entities"
)

// RevsClient talks to the upstream reservation store (`{base}/revs`).
// The credential token is supplied per call, never held by the client:
// it belongs to the caller's session.
type RevsClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// RejectedError is a non-2xx answer from the creation endpoint. Body
// carries the raw upstream response so the caller can surface it.
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("upstream rejected reservation (status %d): %s", e.StatusCode, e.Body)
}

func NewRevsClient(baseURL string, logger *zap.Logger) *RevsClient {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &RevsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// ListReservations fetches the full reservation collection. Transport
// failures and non-2xx statuses return an error; a 2xx body that does
// not match the documented schema decodes fail-closed to an empty list.
func (c *RevsClient) ListReservations(ctx context.Context, token string) ([]entities.Reservation, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", token).
		Get("/revs")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("upstream returned status %d fetching reservations", resp.StatusCode())
	}

	return c.decodeReservations(resp.Body()), nil
}

// decodeReservations accepts either a raw array of reservations or an
// object wrapping the array in a `reservas` field. Anything else is
// logged and treated as an empty collection.
func (c *RevsClient) decodeReservations(raw []byte) []entities.Reservation {
	var list []entities.Reservation
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var wrapped struct {
		Reservas []entities.Reservation `json:"reservas"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Reservas != nil {
		return wrapped.Reservas
	}

	c.logger.Warn("Unexpected reservation payload shape, treating as empty",
		zap.Int("payload_bytes", len(raw)),
	)
	return []entities.Reservation{}
}

// CreateReservation sends one reservation to the upstream store. A
// non-2xx answer comes back as *RejectedError with the raw body.
func (c *RevsClient) CreateReservation(ctx context.Context, token string, res *entities.Reservation) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", token).
		SetBody(res).
		Post("/revs")
	if err != nil {
		return fmt.Errorf("failed to send reservation: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("Upstream rejected reservation",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("room_id", res.RoomID),
		)
		return &RejectedError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	return nil
}
