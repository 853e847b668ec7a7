// Package plan loads training plans from YAML into a user's account.
//
// A plan is a YAML sequence of tagged statements:
//
//   - !dog
//     name: Rex
//     breed: Beagle
//     age: 3
//   - !behavior
//     title: Sit
//     description: Hold the position for **five** seconds
//     category: basics
//   - !behavior Down
//   - !criterion
//     name: Duration
//     difficultyLevel: beginner
//
// The scalar form (`- !behavior Down`) is shorthand for a statement that
// only carries its title or name.
//
// Every statement is created for one user inside a single transaction, so a
// plan either loads completely or not at all. A dry run validates the plan
// against the database and rolls it back.
package plan
