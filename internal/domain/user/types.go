package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleHierarchy = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleHierarchy[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles never do.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleHierarchy[r]
	want, minOK := roleHierarchy[min]
	return ok && minOK && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
