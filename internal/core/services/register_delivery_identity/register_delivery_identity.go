package registerdeliveryidentity

import (
	"context"
	"fmt"
	c "pushreminder/internal/core/domain/common"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/logging"
	"pushreminder/internal/core/domain/user"
	"pushreminder/internal/core/services"
	"strings"
)

type Input struct {
	Identity           user.Identity
	PushProviderID     string
	PushSubscriptionID c.Optional[string]
}

type Result struct {
	DeliveryIdentity user.DeliveryIdentity
}

type service struct {
	log        logging.Logger
	identities user.DeliveryIdentityRepository
}

func New(log logging.Logger, identities user.DeliveryIdentityRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if identities == nil {
		panic(e.NewNilArgumentError("identities"))
	}
	return &service{log: log, identities: identities}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if strings.TrimSpace(string(input.Identity)) == "" {
		return result, user.ErrInvalidIdentity
	}
	d := user.DeliveryIdentity{
		PushProviderID:     input.PushProviderID,
		PushSubscriptionID: input.PushSubscriptionID,
	}
	if err := d.Validate(); err != nil {
		return result, fmt.Errorf("%w: %s", user.ErrInvalidDeliveryIdentity, err.Error())
	}

	if err := s.identities.SaveDeliveryIdentity(ctx, input.Identity, d); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Delivery identity has been registered.", logging.Entry("identity", input.Identity))
	result.DeliveryIdentity = d
	return result, nil
}
