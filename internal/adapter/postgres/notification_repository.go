package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"creatorpay/internal/core/domain"
)

// NotificationRepository implements port.Notifier by persisting rows for
// the delivery layer to pick up. Settlement treats notifications as
// fire-and-forget, so errors here are logged by the caller, never fatal.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a new repository instance.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Notify stores one notification record.
func (r *NotificationRepository) Notify(ctx context.Context, recipient, kind string, payload any) error {
	n := domain.Notification{
		ID:        uuid.NewString(),
		Recipient: recipient,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	blob, err := json.Marshal(n.Payload)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO notifications (id, recipient, kind, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.Recipient, n.Kind, blob, n.CreatedAt)
	return err
}
