package user

import "errors"

var (
	ErrUserDoesNotExist        = errors.New("user does not exist")
	ErrInvalidIdentity         = errors.New("invalid identity")
	ErrInvalidDeliveryIdentity = errors.New("invalid delivery identity")
)
