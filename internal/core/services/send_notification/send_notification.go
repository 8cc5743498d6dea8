package sendnotification

import (
	"context"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/notification"
	"pushreminder/internal/core/services"
)

type Input struct {
	Payload notification.Payload
}

type Result struct {
	Delivered bool
}

type service struct {
	dispatcher notification.Dispatcher
}

func New(dispatcher notification.Dispatcher) services.Service[Input, Result] {
	if dispatcher == nil {
		panic(e.NewNilArgumentError("dispatcher"))
	}
	return &service{dispatcher: dispatcher}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	result.Delivered = s.dispatcher.Send(ctx, input.Payload)
	return result, nil
}
