package httperr

import (
	"errors"
	"net/http"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness returns the business code carried by err, if any.
func AsBusiness(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

var businessStatus = map[string]int{
	"invalid_request":       http.StatusBadRequest,
	"invalid_date":          http.StatusBadRequest,
	"invalid_duration":      http.StatusBadRequest,
	"invalid_quantity":      http.StatusBadRequest,
	"invalid_status":        http.StatusBadRequest,
	"invalid_adjustment":    http.StatusBadRequest,
	"invalid_item":          http.StatusBadRequest,
	"invalid_image":         http.StatusBadRequest,
	"missing_client":        http.StatusBadRequest,
	"missing_service":       http.StatusBadRequest,
	"missing_location":      http.StatusBadRequest,
	"same_location":         http.StatusBadRequest,
	"empty_sale":            http.StatusBadRequest,
	"location_forbidden":    http.StatusForbidden,
	"admin_only":            http.StatusForbidden,
	"appointment_not_found": http.StatusNotFound,
	"client_not_found":      http.StatusNotFound,
	"staff_not_found":       http.StatusNotFound,
	"service_not_found":     http.StatusNotFound,
	"product_not_found":     http.StatusNotFound,
	"location_not_found":    http.StatusNotFound,
	"stock_not_found":       http.StatusNotFound,
	"sale_not_found":        http.StatusNotFound,
	"category_not_found":    http.StatusNotFound,
	"insufficient_stock":    http.StatusConflict,
	"invalid_transition":    http.StatusConflict,
	"duplicate":             http.StatusConflict,
	"payments_disabled":     http.StatusConflict,
	"storage_disabled":      http.StatusConflict,
	"deprecated":            http.StatusGone,
}

// StatusFor maps a business code to its HTTP status, defaulting to 400.
func StatusFor(code string) int {
	if s, ok := businessStatus[code]; ok {
		return s
	}
	return http.StatusBadRequest
}
