// Package rewrite implements the schema normalization passes.
//
// A pass mutates a parsed prisma.Document and records what it did, or why it
// did nothing, as diagnostics. Passes are pure with respect to the file
// system: Run takes schema text and returns schema text.
//
// # Passes
//
//   - Injector adds @@map("<name>") to each target model that has no
//     storage mapping yet, so the model can later be renamed without
//     changing its table.
//   - RelationRenamer rewrites the type of relation fields from a
//     table-style name to the model's conventional name, keeping the
//     nullability and list markers:
//
//	owner   merchants   @relation(...)   ->   owner   Merchant   @relation(...)
//	owner   merchants?  @relation(...)   ->   owner   Merchant?  @relation(...)
//
// Both passes are idempotent. A target that is absent from the schema is a
// warning, not an error; a target that is declared twice is an error and is
// left untouched.
package rewrite
