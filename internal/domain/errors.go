package domain

import "errors"

var (
	ErrPricingNotFound = errors.New("no ticket pricing found for showtime")
)
