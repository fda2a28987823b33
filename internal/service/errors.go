package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation        = errors.New("validation")          // 422
	ErrNotFound          = errors.New("not found")           // 404
	ErrConflict          = errors.New("conflict")            // 409
	ErrUnauthorized      = errors.New("unauthorized")        // 401
	ErrOrderNotConfirmed = errors.New("payments can only be processed for orders in confirmed status")
	ErrOrderHasPayments  = errors.New("cannot delete order with associated payments")
)

// FieldErrors collects per-field validation messages, keyed the way the API
// reports them (items.0.quantity and the like). It satisfies error and matches
// ErrValidation under errors.Is so handlers map it to 422.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(fields, ", "))
}

func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

func (fe FieldErrors) OrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
