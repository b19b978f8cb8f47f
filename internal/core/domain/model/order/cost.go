package order

import (
	"errors"
	"fmt"
	"strings"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"

	"github.com/go-playground/validator/v10"
)

var ErrCostIsNotConstructed = errors.New("Cost must be created via NewCost constructor")

var currencyValidator = validator.New()

// Cost is the quoted shipment price. Amount is in minor units of Currency (cents for USD).
type Cost struct {
	amount   int64
	currency string
	guard    guard.ConstructorGuard
}

// NewCost validates a non-negative amount and an ISO 4217 currency code.
func NewCost(amount int64, currency string) (Cost, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	var amountErr, currencyErr error
	if amount < 0 {
		amountErr = errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", amount))
	}
	if err := currencyValidator.Var(currency, "required,iso4217"); err != nil {
		currencyErr = errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not an ISO 4217 code", currency))
	}
	if err := errors.Join(amountErr, currencyErr); err != nil {
		return Cost{}, err
	}

	return Cost{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
}

func (c Cost) Amount() int64    { return c.amount }
func (c Cost) Currency() string { return c.currency }

func (c Cost) Validate() error {
	return c.guard.Validate(ErrCostIsNotConstructed)
}
