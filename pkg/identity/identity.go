// Package identity provides unique identifiers for ledger entities.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

// NewUID returns a fresh 32-character lowercase hex identifier.
func NewUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Base holds the identifier of an entity. Embed it to give a type UID accessors.
type Base struct {
	uid string
}

// NewBase returns a Base with a freshly generated identifier.
func NewBase() Base {
	return Base{uid: NewUID()}
}

// UID returns the identifier, or "" if none has been assigned.
func (b *Base) UID() string {
	return b.uid
}

// SetUID assigns an existing identifier.
// Uniqueness is the caller's responsibility.
func (b *Base) SetUID(uid string) {
	b.uid = uid
}

// GenerateUID replaces the identifier with a fresh one and returns it.
func (b *Base) GenerateUID() string {
	b.uid = NewUID()
	return b.uid
}

// HasUID reports whether an identifier has been assigned.
func (b *Base) HasUID() bool {
	return b.uid != ""
}

// SameIdentity reports whether both entities carry the same, non-empty identifier.
func (b *Base) SameIdentity(other *Base) bool {
	if other == nil || b.uid == "" {
		return false
	}
	return b.uid == other.uid
}
