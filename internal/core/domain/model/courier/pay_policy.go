package courier

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// PayKind discriminates between the supported courier compensation schemes.
type PayKind int

const (
	// PayKindUnknown represents an invalid or undefined pay kind.
	PayKindUnknown PayKind = iota

	// PayKindFixed pays a flat amount per completed delivery.
	PayKindFixed

	// PayKindPercentage pays a share of the delivered order's price.
	PayKindPercentage
)

// String returns the human-readable name of the pay kind.
func (k PayKind) String() string {
	switch k {
	case PayKindFixed:
		return "Fixed"
	case PayKindPercentage:
		return "Percentage"
	default:
		return "Unknown"
	}
}

// ErrPayPolicyIsNotConstructed is returned when attempting to use an
// improperly initialized PayPolicy. Policies must be created via
// NewFixedPayPolicy or NewPercentagePayPolicy.
var ErrPayPolicyIsNotConstructed = errs.NewValueIsRequiredError(
	"pay policy must be created via its constructors")

// PayPolicy is an immutable value object describing how a courier earns
// from a completed delivery. It is either a fixed amount per drop or a
// percentage cut of the order price; earnings are always computed in
// whole cents so wallet credits stay exact.
type PayPolicy struct { //nolint:recvcheck //using for validation
	kind    PayKind
	fixed   kernel.Money
	percent int
	guard   guard.ConstructorGuard
}

// NewFixedPayPolicy creates a policy that pays the given flat amount for
// every completed delivery.
func NewFixedPayPolicy(amount kernel.Money) (PayPolicy, error) {
	if amount.IsZero() {
		return PayPolicy{}, errs.NewValueIsRequiredError("amount")
	}

	return PayPolicy{
		kind:  PayKindFixed,
		fixed: amount,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewPercentagePayPolicy creates a policy that pays the given percentage
// of the order price. The percentage must be in (0, 100].
func NewPercentagePayPolicy(percent int) (PayPolicy, error) {
	if percent <= 0 || percent > 100 {
		return PayPolicy{}, errs.NewValueIsOutOfRangeError("percent", percent, 1, 100)
	}

	return PayPolicy{
		kind:    PayKindPercentage,
		percent: percent,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestorePayPolicy reconstructs a PayPolicy from persistent storage.
// The kind selects which of the two remaining parameters is meaningful.
func RestorePayPolicy(kind PayKind, fixed kernel.Money, percent int) (PayPolicy, error) {
	switch kind {
	case PayKindFixed:
		return NewFixedPayPolicy(fixed)
	case PayKindPercentage:
		return NewPercentagePayPolicy(percent)
	default:
		return PayPolicy{}, errs.NewValueIsInvalidErrorWithCause(
			"pay kind is invalid",
			fmt.Errorf("%d is not a valid pay kind", kind),
		)
	}
}

// Validate checks that the PayPolicy was created through a constructor.
// The zero value fails this check.
func (p PayPolicy) Validate() error {
	return p.guard.Validate(ErrPayPolicyIsNotConstructed)
}

// Kind returns the compensation scheme discriminator.
func (p PayPolicy) Kind() PayKind {
	return p.kind
}

// FixedAmount returns the flat per-delivery amount. Zero for percentage
// policies.
func (p PayPolicy) FixedAmount() kernel.Money {
	return p.fixed
}

// Percent returns the percentage cut. Zero for fixed policies.
func (p PayPolicy) Percent() int {
	return p.percent
}

// Earnings computes what a delivery of the given price pays under this
// policy. Fixed policies ignore the price.
func (p PayPolicy) Earnings(price kernel.Money) (kernel.Money, error) {
	if err := p.Validate(); err != nil {
		return kernel.Money{}, err
	}

	if p.kind == PayKindFixed {
		return p.fixed, nil
	}
	return price.Percent(p.percent)
}

// String implements fmt.Stringer.
func (p PayPolicy) String() string {
	if p.kind == PayKindPercentage {
		return fmt.Sprintf("Percentage(%d%%)", p.percent)
	}
	return fmt.Sprintf("Fixed(%s)", p.fixed)
}
