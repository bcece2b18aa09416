// Package policy holds the pure authorization predicates. They are evaluated
// before any write; an anonymous identity never satisfies any of them.
package policy

import "go-blog-api/models"

func IsOwner(identity models.Identity, post *models.Post) bool {
	return !identity.IsAnonymous() && identity.ID == post.AuthorID
}

func IsAdmin(identity models.Identity) bool {
	return !identity.IsAnonymous() && identity.Role == models.RoleAdmin
}

// CanMutate reports whether identity may update or delete post.
func CanMutate(identity models.Identity, post *models.Post) bool {
	return IsOwner(identity, post) || IsAdmin(identity)
}
