package identity

import (
	"context"
	"fmt"
	c "pushreminder/internal/core/domain/common"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/user"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// pushIdentityDoc is the push related part of a user document. Other fields of
// the document are left untouched. Field names are the ones the web client
// writes when a device subscribes.
type pushIdentityDoc struct {
	OneSignalID    string    `firestore:"oneSignalId"`
	SubscriptionID *string   `firestore:"onesignalIdSubscription"`
	UpdatedAt      time.Time `firestore:"pushUpdatedAt"`
}

func decodeDeliveryIdentity(doc pushIdentityDoc) user.DeliveryIdentity {
	d := user.DeliveryIdentity{PushProviderID: doc.OneSignalID}
	if doc.SubscriptionID != nil && *doc.SubscriptionID != "" {
		d.PushSubscriptionID = c.NewOptional(*doc.SubscriptionID, true)
	}
	return d
}

func encodeDeliveryIdentity(d user.DeliveryIdentity, now time.Time) map[string]interface{} {
	var subscriptionID interface{}
	if d.PushSubscriptionID.IsPresent {
		subscriptionID = d.PushSubscriptionID.Value
	}
	return map[string]interface{}{
		"oneSignalId":             d.PushProviderID,
		"onesignalIdSubscription": subscriptionID,
		"pushUpdatedAt":           now,
	}
}

type FirestoreDeliveryIdentityRepository struct {
	client     *firestore.Client
	collection string
	now        func() time.Time
}

func NewFirestoreRepository(
	client *firestore.Client,
	collection string,
	now func() time.Time,
) *FirestoreDeliveryIdentityRepository {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &FirestoreDeliveryIdentityRepository{client: client, collection: collection, now: now}
}

func (r *FirestoreDeliveryIdentityRepository) GetDeliveryIdentity(
	ctx context.Context,
	identity user.Identity,
) (d user.DeliveryIdentity, err error) {
	if identity == "" {
		return d, user.ErrUserDoesNotExist
	}
	snapshot, err := r.client.Collection(r.collection).Doc(string(identity)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return d, user.ErrUserDoesNotExist
	}
	if err != nil {
		return d, err
	}

	var doc pushIdentityDoc
	if err := snapshot.DataTo(&doc); err != nil {
		return d, fmt.Errorf("could not decode user document %s: %w", identity, err)
	}
	return decodeDeliveryIdentity(doc), nil
}

func (r *FirestoreDeliveryIdentityRepository) SaveDeliveryIdentity(
	ctx context.Context,
	identity user.Identity,
	d user.DeliveryIdentity,
) error {
	if identity == "" {
		return user.ErrInvalidIdentity
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%w: %s", user.ErrInvalidDeliveryIdentity, err.Error())
	}
	_, err := r.client.Collection(r.collection).Doc(string(identity)).Set(
		ctx,
		encodeDeliveryIdentity(d, r.now()),
		firestore.MergeAll,
	)
	return err
}
