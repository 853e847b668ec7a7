// Package store provides storage abstractions for the Pawgress server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// Implementations live in the gorm subpackage; tests use testify mocks.
//
// # Available Stores
//
//   - UsersStore: credentials and profiles
//   - PetsStore: pets, including the dogs view
//   - ActivitiesStore: scheduled pet activities
//   - BehaviorsStore: training behaviors
//   - CriteriaStore: training criteria
//   - HealthStore: database connectivity
//
// # Errors
//
// Every lookup of a missing record returns an error wrapping
// model.ErrNotFound. Inserting a user whose email is taken returns
// ErrDuplicate.
//
//	pet, err := pets.FetchPet(ctx, id)
//	if errors.Is(err, model.ErrNotFound) {
//	    // Handle not found
//	}
package store
