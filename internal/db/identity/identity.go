package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	c "pushreminder/internal/core/domain/common"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/user"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_CHECK_CONSTRAINT_ERR_CODE = "23514"

const getDeliveryIdentity = `
SELECT push_provider_id, push_subscription_id
FROM push_identity
WHERE identity = $1
`

const saveDeliveryIdentity = `
INSERT INTO push_identity (identity, push_provider_id, push_subscription_id, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (identity) DO UPDATE SET
    push_provider_id = EXCLUDED.push_provider_id,
    push_subscription_id = EXCLUDED.push_subscription_id,
    updated_at = EXCLUDED.updated_at
`

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxDeliveryIdentityRepository struct {
	db  DBTX
	now func() time.Time
}

func NewPgxRepository(db DBTX, now func() time.Time) *PgxDeliveryIdentityRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &PgxDeliveryIdentityRepository{db: db, now: now}
}

func (r *PgxDeliveryIdentityRepository) GetDeliveryIdentity(
	ctx context.Context,
	identity user.Identity,
) (d user.DeliveryIdentity, err error) {
	var subscriptionID sql.NullString
	err = r.db.QueryRow(ctx, getDeliveryIdentity, string(identity)).Scan(&d.PushProviderID, &subscriptionID)
	if errors.Is(err, pgx.ErrNoRows) {
		return d, user.ErrUserDoesNotExist
	}
	if err != nil {
		return d, err
	}
	d.PushSubscriptionID = c.NewOptional(subscriptionID.String, subscriptionID.Valid)
	return d, nil
}

func (r *PgxDeliveryIdentityRepository) SaveDeliveryIdentity(
	ctx context.Context,
	identity user.Identity,
	d user.DeliveryIdentity,
) error {
	_, err := r.db.Exec(
		ctx,
		saveDeliveryIdentity,
		string(identity),
		d.PushProviderID,
		sql.NullString{String: d.PushSubscriptionID.Value, Valid: d.PushSubscriptionID.IsPresent},
		r.now(),
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_CHECK_CONSTRAINT_ERR_CODE {
		return fmt.Errorf("%w: %s", user.ErrInvalidDeliveryIdentity, pgErr.Message)
	}
	return err
}
