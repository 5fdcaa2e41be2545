// Package config provides the YAML configuration of a normalization run:
// which models receive a storage mapping and which relation types are
// renamed.
//
// # Schema Overview
//
//	version: "1"
//	schema: prisma/schema.prisma
//	target_models:
//	  - payouts
//	  - refunds
//	relation_renames:
//	  - from: merchants
//	    to: Merchant    # optional, derived from "from" when omitted
//
// Defaults are applied after parsing: a missing version becomes "1", a
// missing schema path becomes DefaultSchemaPath, and a missing "to" becomes
// naming.Canonical(from). Default returns the configuration of the
// historical fixed run.
package config
