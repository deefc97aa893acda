// Package apierror translates domain failures into huma status errors.
package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-server/internal/bank"
	"github.com/carson-networks/bank-server/internal/operator"
	"github.com/carson-networks/bank-server/internal/operator/actions"
	"github.com/carson-networks/bank-server/internal/registry"
)

// Status picks the HTTP status for err.
func Status(err error) int {
	switch {
	case errors.Is(err, bank.ErrNonPositiveAmount),
		errors.Is(err, bank.ErrSameAccount),
		errors.Is(err, actions.ErrUnknownAccountType):
		return http.StatusBadRequest
	case errors.Is(err, registry.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, bank.ErrMinimumBalance),
		errors.Is(err, bank.ErrOverdraftLimit),
		errors.Is(err, bank.ErrInsufficientFunds),
		errors.Is(err, actions.ErrAccountExists):
		return http.StatusConflict
	case errors.Is(err, operator.ErrStopped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// From wraps err in a huma error. Client errors carry the domain message;
// server errors carry fallback.
func From(err error, fallback string) huma.StatusError {
	status := Status(err)
	if status == http.StatusInternalServerError {
		return huma.NewError(status, fallback, err)
	}
	return huma.NewError(status, err.Error())
}

const (
	maxInputLength   = 32
	maxIntegerDigits = 15
	amountPlaces     = 2
	ratePlaces       = 6
)

// ParseAmount parses a money request field: at most two decimal places and
// fifteen integer digits. Empty values are rejected unless a default is given.
func ParseAmount(field, value string, def ...decimal.Decimal) (decimal.Decimal, error) {
	return parseDecimal(field, value, amountPlaces, def)
}

// ParseRate parses a rate request field, allowing up to six decimal places.
func ParseRate(field, value string, def ...decimal.Decimal) (decimal.Decimal, error) {
	return parseDecimal(field, value, ratePlaces, def)
}

// NonNegative rejects a negative value for field.
func NonNegative(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return huma.Error400BadRequest(field + " must not be negative")
	}
	return nil
}

func parseDecimal(field, value string, places int32, def []decimal.Decimal) (decimal.Decimal, error) {
	if value == "" && len(def) > 0 {
		return def[0], nil
	}
	if len(value) > maxInputLength {
		return decimal.Zero, huma.Error400BadRequest("invalid " + field + ": too long")
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}

	// The exponent is checked before any arithmetic: rescaling "1e20000000" is slow.
	if int(amount.Exponent())+amount.NumDigits() > maxIntegerDigits {
		return decimal.Zero, huma.Error400BadRequest("invalid " + field + ": too large")
	}
	if amount.Exponent() < -places {
		// the coefficient has at most maxInputLength digits, so anything finer
		// than that cannot be trailing zeros
		if amount.Exponent() < -(places+maxInputLength) || !amount.Equal(amount.Truncate(places)) {
			return decimal.Zero, huma.Error400BadRequest(fmt.Sprintf("invalid %s: at most %d decimal places", field, places))
		}
	}
	return amount, nil
}

// Money renders an amount with two decimal places.
func Money(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
