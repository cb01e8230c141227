package account

import (
	"fmt"

	"ricemarket/internal/pkg/errs"
)

// Role represents the marketplace role of an authenticated user.
// A consumer places orders; a producer owns products and fulfills orders.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleConsumer is the buyer role. Consumers place orders and may cancel
	// them while they are still pending confirmation.
	RoleConsumer

	// RoleProducer is the seller role. Producers own products, confirm orders,
	// and drive them through delivery.
	RoleProducer
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleConsumer: "consumer",
		RoleProducer: "producer",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleConsumer: "consumer",
		RoleProducer: "producer",
	}
}

// RoleFromString parses a role from its wire representation
// ("consumer" or "producer"). Returns an error for anything else.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: RoleConsumer, RoleProducer.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name of the role.
// This method implements the fmt.Stringer interface and is safe
// to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
