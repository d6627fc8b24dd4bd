// Package service implements the application's business logic on top of the
// repository layer.
package service

// Authorization predicates. Deliberately pure functions over explicit ids so
// every rule is testable without a store.

// CanModifyBlog reports whether the principal may edit or delete a blog.
// Only the author qualifies.
func CanModifyBlog(principalID, blogAuthorID uint) bool {
	return principalID == blogAuthorID
}

// CanEditComment reports whether the principal may edit a comment's content.
// Stricter than delete: only the comment author qualifies.
func CanEditComment(principalID, commentAuthorID uint) bool {
	return principalID == commentAuthorID
}

// CanDeleteComment reports whether the principal may delete a comment.
// The comment author or the owning blog's author (moderation) qualify.
func CanDeleteComment(principalID, commentAuthorID, blogAuthorID uint) bool {
	return principalID == commentAuthorID || principalID == blogAuthorID
}

// OwnerFlag computes the UI-facing owner annotation for a comment node.
// Same dual-ownership rule as CanDeleteComment; it gates nothing by itself.
func OwnerFlag(viewerID, authorID, blogAuthorID uint) bool {
	return viewerID == authorID || viewerID == blogAuthorID
}
