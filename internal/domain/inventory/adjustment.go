package inventory

import "github.com/BruksfildServices01/salon-erp/internal/httperr"

type AdjustmentType string

const (
	AdjustAdd    AdjustmentType = "add"
	AdjustRemove AdjustmentType = "remove"
)

// Movement types recorded in the stock ledger.
const (
	MovementAdd         = "add"
	MovementRemove      = "remove"
	MovementTransferOut = "transfer_out"
	MovementTransferIn  = "transfer_in"
	MovementSale        = "sale"
)

func ParseAdjustmentType(s string) (AdjustmentType, error) {
	switch AdjustmentType(s) {
	case AdjustAdd, AdjustRemove:
		return AdjustmentType(s), nil
	}
	return "", httperr.ErrBusiness("invalid_adjustment")
}

// Delta returns the signed stock change for an adjustment.
func Delta(t AdjustmentType, quantity int) int {
	if t == AdjustRemove {
		return -quantity
	}
	return quantity
}

func ValidateQuantity(q int) error {
	if q <= 0 {
		return httperr.ErrBusiness("invalid_quantity")
	}
	return nil
}
