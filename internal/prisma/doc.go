// Package prisma provides a line-oriented reader and writer for Prisma
// schema documents.
//
// The parser does not build a syntax tree of the Prisma language. It splits
// the document into top-level lines and brace-delimited blocks (model, view,
// type, enum, datasource, generator) and classifies each block body line:
//
//	model payouts {            <- LineOpen
//	  /// doc comment          <- LineComment
//	  id     String @id        <- LineField (name, type, attributes)
//	  owner  merchants? @relation(fields: [ownerId], references: [id])
//	                           <- LineField with a nullable type
//	  @@index([ownerId])       <- LineBlockAttribute
//	}                          <- LineClose
//
// Every line keeps its raw text including the line terminator, so an
// unmodified Document serializes back to the exact input bytes. Edits
// rewrite only the bytes they own.
//
// Bodies must be flat: a brace outside string literals and comments inside
// a block body is reported as ErrNestedBlock rather than guessed at.
package prisma
