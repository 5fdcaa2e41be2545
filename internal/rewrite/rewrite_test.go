package rewrite

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-normalizer/internal/config"
	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/prisma"
)

const schemaBefore = `generator client {
  provider = "prisma-client-js"
}

model merchants {
  id        String         @id
  merchants String         // a scalar that happens to share the name
  payouts   payouts[]
  refunds   refunds[]
}

model payouts {
  id          String     @id
  merchant_id String
  merchants   merchants  @relation(fields: [merchant_id], references: [id])
}

model refunds {
  id          String     @id
  merchant_id String?
  merchant    merchants? @relation(fields: [merchant_id], references: [id])

  @@map("refund_records")
}
`

const schemaAfter = `generator client {
  provider = "prisma-client-js"
}

model merchants {
  id        String         @id
  merchants String         // a scalar that happens to share the name
  payouts   payouts[]
  refunds   refunds[]
}

model payouts {
  id          String     @id
  merchant_id String
  merchants   Merchant  @relation(fields: [merchant_id], references: [id])
  @@map("payouts")
}

model refunds {
  id          String     @id
  merchant_id String?
  merchant    Merchant? @relation(fields: [merchant_id], references: [id])

  @@map("refund_records")
}
`

func TestRunFromConfig(t *testing.T) {
	cfg := &config.Config{
		TargetModels:    []string{"payouts", "refunds", "subscriptions"},
		RelationRenames: []config.RelationRename{{From: "merchants", To: "Merchant"}},
	}

	res, err := Run(schemaBefore, FromConfig(cfg)...)
	require.NoError(t, err)

	if diff := cmp.Diff(schemaAfter, res.Schema); diff != "" {
		t.Errorf("schema mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, res.Changed)
	assert.NoError(t, res.Err())
	assert.Equal(t, 3, res.Edits())

	assert.Len(t, res.Diagnostics.ByCode(CodeMapInjected), 1)
	assert.Len(t, res.Diagnostics.ByCode(CodeAlreadyMapped), 1)
	assert.Len(t, res.Diagnostics.ByCode(CodeRelationRenamed), 2)
	assert.Len(t, res.Diagnostics.ByCode(CodeRelationMarkerMissing), 0, "scalar String field is not typed merchants")

	notFound := res.Diagnostics.ByCode(CodeModelNotFound)
	require.Len(t, notFound, 1)
	assert.Equal(t, "subscriptions", notFound[0].Model)
	assert.Equal(t, diagnostic.DiagnosticWarning, notFound[0].Severity)
}

func TestFromConfigOrder(t *testing.T) {
	passes := FromConfig(&config.Config{
		TargetModels: []string{"a"},
		RelationRenames: []config.RelationRename{
			{From: "x", To: "X"},
			{From: "y", To: "Y"},
		},
	})

	names := make([]string, 0, len(passes))
	for _, p := range passes {
		names = append(names, p.Name())
	}

	assert.Equal(t, []string{"inject-map", "rename-relation:x", "rename-relation:y"}, names)
	assert.Empty(t, FromConfig(&config.Config{}))
}

func TestRunParseError(t *testing.T) {
	_, err := Run("model a {\n  id String\n", Injector{Targets: []string{"a"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, prisma.ErrUnterminatedBlock)
}

func TestPassesCommute(t *testing.T) {
	inject := Injector{Targets: []string{"payouts", "refunds"}}
	rename := RelationRenamer{From: "merchants", To: "Merchant"}

	a, err := Run(schemaBefore, inject, rename)
	require.NoError(t, err)

	b, err := Run(schemaBefore, rename, inject)
	require.NoError(t, err)

	assert.Equal(t, a.Schema, b.Schema)
}
