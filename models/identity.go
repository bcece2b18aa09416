package models

// Identity is the resolved caller of a request. The zero value is the
// anonymous caller; authenticated callers always carry a non-zero user id.
type Identity struct {
	ID   uint
	Role UserRole
}

func Authenticated(id uint, role UserRole) Identity {
	return Identity{ID: id, Role: role}
}

func (i Identity) IsAnonymous() bool {
	return i.ID == 0
}
