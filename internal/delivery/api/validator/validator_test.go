package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	RadiusKm  float64  `json:"radius_km" validate:"gt=0"`
	Label     string   `json:"label,omitempty" validate:"max=3"`
}

func ptr(v float64) *float64 { return &v }

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&point{Latitude: ptr(0), Longitude: ptr(0), RadiusKm: 1}))

	err := v.Validate(&point{Latitude: ptr(91), RadiusKm: 0, Label: "abcd"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, map[string]string{
		"latitude":  "must be at most 90",
		"longitude": "is required",
		"radius_km": "must be greater than 0",
		"label":     "must have at most 3 characters",
	}, fields)
}

func TestFieldErrors_NotValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
}
