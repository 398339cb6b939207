package domain

import (
	"errors"
	"strings"
)

// ItemKind discriminates the two stock families handled by the station.
type ItemKind string

const (
	KindFuel ItemKind = "fuel"
	KindShop ItemKind = "shop"
)

// ReconcilePolicy decides how a delivery is merged into an existing inventory item.
type ReconcilePolicy string

const (
	// PolicyOverwrite replaces available and total stock with the delivered quantity.
	PolicyOverwrite ReconcilePolicy = "overwrite"
	// PolicyAdditive adds the delivered quantity on top of the current stock.
	PolicyAdditive ReconcilePolicy = "additive"
)

var (
	ErrInvalidKind   = errors.New("item kind must be fuel or shop")
	ErrInvalidPolicy = errors.New("reconcile policy must be overwrite or additive")
)

// Kinds lists every supported item kind in a stable order.
func Kinds() []ItemKind {
	return []ItemKind{KindFuel, KindShop}
}

// ParseItemKind normalises and validates a raw kind value.
func ParseItemKind(raw string) (ItemKind, error) {
	kind := ItemKind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.Valid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

// Valid reports whether the kind is supported.
func (k ItemKind) Valid() bool {
	return k == KindFuel || k == KindShop
}

// ParseReconcilePolicy normalises and validates a raw policy value.
func ParseReconcilePolicy(raw string) (ReconcilePolicy, error) {
	policy := ReconcilePolicy(strings.ToLower(strings.TrimSpace(raw)))
	switch policy {
	case PolicyOverwrite, PolicyAdditive:
		return policy, nil
	default:
		return "", ErrInvalidPolicy
	}
}

// KindPolicy holds the stock rules applied to one item kind.
type KindPolicy struct {
	Reconcile         ReconcilePolicy
	LowStockThreshold int64
	// InclusiveThreshold treats available == threshold as low stock.
	InclusiveThreshold bool
}

// IsLowStock reports whether the available quantity should trigger a reorder.
func (p KindPolicy) IsLowStock(available int64) bool {
	if p.InclusiveThreshold {
		return available <= p.LowStockThreshold
	}
	return available < p.LowStockThreshold
}

// Policies maps each item kind to its stock rules.
type Policies map[ItemKind]KindPolicy

// DefaultPolicies returns the station defaults: fuel deliveries overwrite the
// tank level and reorder at or below 20000, shop deliveries are additive and
// reorder below 10 units.
func DefaultPolicies() Policies {
	return Policies{
		KindFuel: {Reconcile: PolicyOverwrite, LowStockThreshold: 20000, InclusiveThreshold: true},
		KindShop: {Reconcile: PolicyAdditive, LowStockThreshold: 10},
	}
}

// For returns the policy of a kind, falling back to an additive rule with no threshold.
func (p Policies) For(kind ItemKind) KindPolicy {
	if policy, ok := p[kind]; ok {
		if policy.Reconcile == "" {
			policy.Reconcile = PolicyAdditive
		}
		return policy
	}
	return KindPolicy{Reconcile: PolicyAdditive}
}
