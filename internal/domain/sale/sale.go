package sale

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-erp/internal/httperr"
)

const (
	ItemService = "service"
	ItemProduct = "product"
)

const (
	TypeService      = "service"
	TypeProduct      = "product"
	TypeConsolidated = "consolidated"
)

const StatusCompleted = "completed"

// Line is a priced sale line before persistence.
type Line struct {
	ItemType  string
	ItemID    string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	StaffID   string
}

func (l Line) Gross() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l Line) Total() decimal.Decimal {
	return l.Gross().Sub(l.Discount)
}

func (l Line) Validate() error {
	if l.ItemType != ItemService && l.ItemType != ItemProduct {
		return httperr.ErrBusiness("invalid_item")
	}
	if l.ItemID == "" || l.Quantity <= 0 {
		return httperr.ErrBusiness("invalid_item")
	}
	if l.UnitPrice.IsNegative() || l.Discount.IsNegative() || l.Discount.GreaterThan(l.Gross()) {
		return httperr.ErrBusiness("invalid_item")
	}
	return nil
}

type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Compute sums the lines. An order-level discount is applied after line
// discounts and may not exceed what is left.
func Compute(lines []Line, orderDiscount decimal.Decimal) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, httperr.ErrBusiness("empty_sale")
	}
	if orderDiscount.IsNegative() {
		return Totals{}, httperr.ErrBusiness("invalid_item")
	}

	t := Totals{Subtotal: decimal.Zero, Discount: decimal.Zero}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return Totals{}, err
		}
		t.Subtotal = t.Subtotal.Add(l.Gross())
		t.Discount = t.Discount.Add(l.Discount)
	}

	if orderDiscount.GreaterThan(t.Subtotal.Sub(t.Discount)) {
		return Totals{}, httperr.ErrBusiness("invalid_item")
	}
	t.Discount = t.Discount.Add(orderDiscount)
	t.Total = t.Subtotal.Sub(t.Discount)
	return t, nil
}

// Classify returns service, product or consolidated for a set of lines.
func Classify(lines []Line) string {
	var services, products bool
	for _, l := range lines {
		switch l.ItemType {
		case ItemService:
			services = true
		case ItemProduct:
			products = true
		}
	}
	switch {
	case services && products:
		return TypeConsolidated
	case products:
		return TypeProduct
	default:
		return TypeService
	}
}

// LoyaltyPoints awards one point per whole currency unit spent.
func LoyaltyPoints(total decimal.Decimal) int {
	if !total.IsPositive() {
		return 0
	}
	return int(total.Floor().IntPart())
}
