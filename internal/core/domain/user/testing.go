package user

import (
	"context"
	"sync"
)

type TestDeliveryIdentityRepository struct {
	Identities map[Identity]DeliveryIdentity
	GetError   error
	GetPanic   interface{}
	GetWith    []Identity
	SaveError  error
	lock       sync.Mutex
}

func NewTestDeliveryIdentityRepository() *TestDeliveryIdentityRepository {
	return &TestDeliveryIdentityRepository{Identities: make(map[Identity]DeliveryIdentity)}
}

func (r *TestDeliveryIdentityRepository) GetDeliveryIdentity(
	ctx context.Context,
	identity Identity,
) (d DeliveryIdentity, err error) {
	r.lock.Lock()
	r.GetWith = append(r.GetWith, identity)
	r.lock.Unlock()

	if r.GetPanic != nil {
		panic(r.GetPanic)
	}
	if r.GetError != nil {
		return d, r.GetError
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	d, ok := r.Identities[identity]
	if !ok {
		return d, ErrUserDoesNotExist
	}
	return d, nil
}

func (r *TestDeliveryIdentityRepository) SaveDeliveryIdentity(
	ctx context.Context,
	identity Identity,
	d DeliveryIdentity,
) error {
	if r.SaveError != nil {
		return r.SaveError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Identities[identity] = d
	return nil
}
