package domain

import (
	"errors"
	"fmt"
)

// ErrMissingFields is returned when a prediction request lacks a city code or
// a usable feature vector. The message is part of the wire contract.
var ErrMissingFields = errors.New("Missing city_code or features")

// ModelNotFoundError is returned when no serialized artifact exists for the
// requested city. The message echoes the city code and is part of the wire
// contract.
type ModelNotFoundError struct {
	CityCode string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("Model for city_code %s not found", e.CityCode)
}
