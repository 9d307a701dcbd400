package kernel

import (
	"fmt"
	"strings"

	"orderdispatch/internal/pkg/errs"
)

// Role is the coarse permission class of an authenticated user.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleDriver     Role = "driver"
	RoleAdmin      Role = "admin"
)

// ParseRole accepts the role names issued by the authentication service.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleRestaurant, RoleDriver, RoleAdmin:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Principal is the authenticated actor of an operation. Authentication
// itself happens upstream; the core only reads the user id and role.
type Principal struct {
	UserID UUID
	Role   Role
}

func NewPrincipal(userID UUID, role Role) (Principal, error) {
	if err := userID.Validate(); err != nil {
		return Principal{}, err
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Principal{}, err
	}
	return Principal{UserID: userID, Role: role}, nil
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) Is(role Role) bool {
	return p.Role == role
}
