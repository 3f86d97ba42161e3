package service

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrMissingFields  = errors.New("all fields are required")
	ErrBannerRequired = errors.New("banner image is required")
)
