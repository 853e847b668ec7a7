// Package model defines the database models for Pawgress.
//
// This package contains GORM models that map to the Pawgress PostgreSQL
// schema (see db/migrations). Every model that a user can read or modify
// carries the identity of its owner, exposed through the Owner method so
// that ownership checks can be applied uniformly.
//
// # Core Models
//
//   - User: credentials and profile (email, bcrypt password hash, name)
//   - Pet: an animal owned by a user; a Dog is a Pet with type DOG
//   - Activity: a scheduled activity for a pet, owned through the pet
//   - Behavior: a training behavior tracked by a user
//   - Criterion: a training criterion with a difficulty level
//
// # Database Schema
//
//   - users: unique email, password_hash
//   - pets: user_id references users
//   - activities: pet_id references pets
//   - behaviors: user_id references users
//   - criteria: user_id references users
package model
