package kernel

import (
	"fmt"
	"strings"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var ErrCountryIsNotConstructed = errs.NewValueIsRequiredError("Country must be created via NewCountry")

var countryValidator = validator.New()

// Country is an ISO 3166-1 country. Both alpha-2 ("US") and alpha-3 ("USA") codes are
// accepted and stored as alpha-2, so "US" and "USA" are the same country.
type Country struct {
	code  string
	guard guard.ConstructorGuard
}

// NewCountry validates code against the ISO 3166-1 alpha-2 and alpha-3 tables and
// normalizes it to alpha-2.
func NewCountry(code string) (Country, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Country{}, errs.NewValueIsRequiredError("country")
	}

	if err := countryValidator.Var(normalized, "iso3166_1_alpha2|iso3166_1_alpha3"); err != nil {
		return Country{}, errs.NewValueIsInvalidErrorWithCause(
			"country",
			fmt.Errorf("%q is not an ISO 3166-1 code", code),
		)
	}

	region, err := language.ParseRegion(normalized)
	alpha2 := region.String()
	if err != nil || len(alpha2) != 2 {
		return Country{}, errs.NewValueIsInvalidErrorWithCause(
			"country",
			fmt.Errorf("%q has no ISO 3166-1 alpha-2 equivalent", code),
		)
	}

	return Country{code: alpha2, guard: guard.NewConstructorGuard()}, nil
}

// MustNewCountry panics when code is not a valid country; intended for fixtures.
func MustNewCountry(code string) Country {
	c, err := NewCountry(code)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Country) Code() string {
	return c.code
}

func (c Country) String() string {
	return c.code
}

func (c Country) IsEqual(other Country) bool {
	return c.code == other.code
}

func (c Country) Validate() error {
	return c.guard.Validate(ErrCountryIsNotConstructed)
}
