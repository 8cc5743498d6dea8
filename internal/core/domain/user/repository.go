package user

import "context"

type DeliveryIdentityRepository interface {
	// GetDeliveryIdentity returns ErrUserDoesNotExist for unknown identities.
	GetDeliveryIdentity(ctx context.Context, identity Identity) (DeliveryIdentity, error)
	SaveDeliveryIdentity(ctx context.Context, identity Identity, d DeliveryIdentity) error
}
