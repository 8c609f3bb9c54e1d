package service

import "errors"

var (
	ErrMissingOrder          = errors.New("no order data received")
	ErrMalformedNotification = errors.New("notification carries no order reference")
)
