// Package gorm provides GORM-based implementations of the store interfaces
// defined in the parent store package.
//
// Lookups of missing rows return model.ErrNotFound and unique violations
// return store.ErrDuplicate, so callers never see GORM or driver errors
// for those cases.
package gorm
