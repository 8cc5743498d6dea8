package user

import (
	c "pushreminder/internal/core/domain/common"
	e "pushreminder/internal/core/domain/errors"
)

// Identity is the opaque key a caller uses to address a user, e.g. a username.
type Identity string

type DeliveryIdentity struct {
	PushProviderID     string
	PushSubscriptionID c.Optional[string]
}

func (d DeliveryIdentity) IsUsable() bool {
	return d.PushProviderID != ""
}

func (d DeliveryIdentity) Validate() error {
	if !d.IsUsable() {
		return e.NewInvalidStateError("push provider id must be set")
	}
	if d.PushSubscriptionID.IsPresent && d.PushSubscriptionID.Value == "" {
		return e.NewInvalidStateError("push subscription id must not be empty when present")
	}
	return nil
}
