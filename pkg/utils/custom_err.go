package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrDistrictNotFound = errors.New("district not found")
	ErrPlaceNotFound    = errors.New("place not found")
	ErrPlanNotFound     = errors.New("travel plan not found")
	ErrDraftNotFound    = errors.New("trip draft not found or expired")

	ErrInvalidDateRange  = errors.New("invalid trip date range")
	ErrInvalidInterest   = errors.New("unknown interest category")
	ErrInvalidPlanStatus = errors.New("invalid plan status")
	ErrPlaceNotInTrip    = errors.New("place is not part of the trip")
	ErrNoChanges         = errors.New("no places were removed")
	ErrUnauthorized      = errors.New("unauthorized")
)
