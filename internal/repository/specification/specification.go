package specification

import "gorm.io/gorm"

// Specification is one composable piece of a repository query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
