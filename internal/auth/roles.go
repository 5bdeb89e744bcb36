package auth

import (
	"fmt"

	"github.com/cityhall-dev/licensing-management/internal"
)

// RoleAllowed is the role policy check: plain allow-listing, no hierarchy.
// "admin" grants nothing unless it is explicitly listed.
func RoleAllowed(role string, allowed ...string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// ForbiddenForRole builds the Forbidden error returned on a role violation,
// naming the caller's actual role.
func ForbiddenForRole(role string) *internal.AppError {
	return internal.NewForbiddenError(
		fmt.Sprintf("role %q is not permitted to perform this action", role),
		internal.ErrCodeInsufficientRole,
	)
}
