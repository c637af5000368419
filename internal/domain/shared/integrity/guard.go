// Package integrity implements the referential-integrity guard that
// runs before destructive operations: deleting a parent entity is
// refused while dependent entities still reference it.
package integrity

import (
	"context"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
)

// Kind names an entity type in guard rules and results
type Kind string

const (
	KindCustomer         Kind = "customer"
	KindCustomerContact  Kind = "customer_contact"
	KindCustomerGroup    Kind = "customer_group"
	KindCustomerCategory Kind = "customer_category"
	KindVendor           Kind = "vendor"
	KindTax              Kind = "tax"
	KindProduct          Kind = "product"
	KindProductGroup     Kind = "product_group"
	KindUnitOfMeasure    Kind = "unit_of_measure"
	KindSalesOrder       Kind = "sales_order"
	KindSalesOrderItem   Kind = "sales_order_item"
	KindDeliveryOrder    Kind = "delivery_order"
	KindSalesReturn      Kind = "sales_return"
)

// GuardResult is the outcome of a referential-integrity check
type GuardResult struct {
	Allowed       bool
	DependentKind Kind  // set when blocked
	Count         int64 // number of dependents found
}

// Allowed is the result of a check that found no dependents
var Allowed = GuardResult{Allowed: true}

// Blocked builds a blocking result for the given dependent kind and count
func Blocked(kind Kind, count int64) GuardResult {
	return GuardResult{DependentKind: kind, Count: count}
}

// DomainError converts a blocked result into the error surfaced to callers.
// Returns nil for an allowed result.
func (r GuardResult) DomainError(parent Kind) error {
	if r.Allowed {
		return nil
	}
	return shared.NewDomainErrorf(
		"REFERENTIAL_INTEGRITY",
		"Cannot delete %s: %d %s record(s) still reference it", parent, r.Count, r.DependentKind,
	)
}

// CountFunc counts dependents still referencing the parent
type CountFunc func(ctx context.Context, parentID uuid.UUID) (int64, error)

// Rule describes one dependent check for a parent kind
type Rule struct {
	DependentKind Kind
	Count         CountFunc
}

// Guard runs the dependent checks registered for one parent kind.
// Checks run in registration order; the first rule that finds
// dependents blocks the delete.
type Guard struct {
	parent Kind
	rules  []Rule
}

// NewGuard creates a guard for the given parent kind
func NewGuard(parent Kind, rules ...Rule) *Guard {
	return &Guard{parent: parent, rules: rules}
}

// Parent returns the parent kind this guard protects
func (g *Guard) Parent() Kind {
	return g.parent
}

// CanDelete checks whether the parent may be deleted.
// The caller must hold whatever lock serializes the check against the
// delete itself; the guard performs reads only.
func (g *Guard) CanDelete(ctx context.Context, parentID uuid.UUID) (GuardResult, error) {
	for _, rule := range g.rules {
		count, err := rule.Count(ctx, parentID)
		if err != nil {
			return GuardResult{}, err
		}
		if count > 0 {
			return Blocked(rule.DependentKind, count), nil
		}
	}
	return Allowed, nil
}
