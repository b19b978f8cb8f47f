package kernel_test

import (
	"testing"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
		wantErr  error
	}{
		{name: "alpha-2", input: "US", wantCode: "US"},
		{name: "alpha-3 is stored as alpha-2", input: "DEU", wantCode: "DE"},
		{name: "lower case alpha-3", input: "usa", wantCode: "US"},
		{name: "lower case is normalized", input: " fr ", wantCode: "FR"},
		{name: "empty", input: "", wantErr: errs.ErrValueIsRequired},
		{name: "unknown code", input: "XX", wantErr: errs.ErrValueIsInvalid},
		{name: "too long", input: "USAA", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := kernel.NewCountry(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, c.Validate())
			assert.Equal(t, tt.wantCode, c.Code())
		})
	}
}

func TestCountry_IsEqual(t *testing.T) {
	assert.True(t, kernel.MustNewCountry("us").IsEqual(kernel.MustNewCountry("US")))
	assert.False(t, kernel.MustNewCountry("US").IsEqual(kernel.MustNewCountry("DE")))
	assert.True(t, kernel.MustNewCountry("USA").IsEqual(kernel.MustNewCountry("US")))
	assert.True(t, kernel.MustNewCountry("gbr").IsEqual(kernel.MustNewCountry("GB")))
}

func TestAddress(t *testing.T) {
	addr, err := kernel.NewAddress(kernel.MustNewCountry("DE"))
	require.NoError(t, err)
	require.NoError(t, addr.Validate())
	assert.Equal(t, "DE", addr.Country().Code())

	_, err = kernel.NewAddress(kernel.Country{})
	require.ErrorIs(t, err, kernel.ErrCountryIsNotConstructed)

	var zero kernel.Address
	require.ErrorIs(t, zero.Validate(), kernel.ErrAddressIsNotConstructed)
}
