package rewrite

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/prisma"
)

func TestInject(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		targets []string
		want    string
		codes   []string
	}{
		{
			name:    "adds map before closing brace",
			src:     "model payouts {\n  id String\n}",
			targets: []string{"payouts"},
			want:    "model payouts {\n  id String\n  @@map(\"payouts\")\n}",
			codes:   []string{CodeMapInjected},
		},
		{
			name:    "keeps existing map",
			src:     "model payouts {\n  id String\n  @@map(\"legacy\")\n}\n",
			targets: []string{"payouts"},
			want:    "model payouts {\n  id String\n  @@map(\"legacy\")\n}\n",
			codes:   []string{CodeAlreadyMapped},
		},
		{
			name:    "missing target is skipped",
			src:     "model refunds {\n  id String\n}\n",
			targets: []string{"payouts"},
			want:    "model refunds {\n  id String\n}\n",
			codes:   []string{CodeModelNotFound},
		},
		{
			name: "anchors on the model header, not on field types",
			src: "model merchants {\n  id String\n  payouts payouts[]\n}\n\n" +
				"model payouts {\n  id String\n}\n",
			targets: []string{"payouts"},
			want: "model merchants {\n  id String\n  payouts payouts[]\n}\n\n" +
				"model payouts {\n  id String\n  @@map(\"payouts\")\n}\n",
			codes: []string{CodeMapInjected},
		},
		{
			name:    "prefix of another model name does not match",
			src:     "model payouts_archive {\n  id String\n}\n",
			targets: []string{"payouts"},
			want:    "model payouts_archive {\n  id String\n}\n",
			codes:   []string{CodeModelNotFound},
		},
		{
			name:    "enum with the same name is not a model",
			src:     "enum payouts {\n  A\n}\n",
			targets: []string{"payouts"},
			want:    "enum payouts {\n  A\n}\n",
			codes:   []string{CodeModelNotFound},
		},
		{
			name:    "map mentioned only in a comment still gets injected",
			src:     "model payouts {\n  id String // TODO @@map(\"x\")\n}\n",
			targets: []string{"payouts"},
			want:    "model payouts {\n  id String // TODO @@map(\"x\")\n  @@map(\"payouts\")\n}\n",
			codes:   []string{CodeMapInjected},
		},
		{
			name:    "duplicate model is an error and stays untouched",
			src:     "model payouts {\n  id String\n}\nmodel payouts {\n  id Int\n}\nmodel refunds {\n  id String\n}\n",
			targets: []string{"payouts", "refunds"},
			want:    "model payouts {\n  id String\n}\nmodel payouts {\n  id Int\n}\nmodel refunds {\n  id String\n  @@map(\"refunds\")\n}\n",
			codes:   []string{CodeDuplicateModel, CodeMapInjected},
		},
		{
			name:    "repeated target is injected once",
			src:     "model payouts {\n  id String\n}\n",
			targets: []string{"payouts", "payouts"},
			want:    "model payouts {\n  id String\n  @@map(\"payouts\")\n}\n",
			codes:   []string{CodeMapInjected, CodeAlreadyMapped},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Inject(tt.src, tt.targets)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, res.Schema); diff != "" {
				t.Errorf("schema mismatch (-want +got):\n%s", diff)
			}

			assert.Equal(t, tt.want != tt.src, res.Changed)
			assert.Equal(t, tt.codes, allCodes(res.Diagnostics))
		})
	}
}

func TestInjectTwiceIsIdempotent(t *testing.T) {
	src := "model payouts {\n  id String\n}"

	once, err := Inject(src, []string{"payouts"})
	require.NoError(t, err)

	twice, err := Inject(once.Schema, []string{"payouts"})
	require.NoError(t, err)

	assert.Equal(t, once.Schema, twice.Schema)
	assert.False(t, twice.Changed)
}

func TestInjectSuggestsClosestModel(t *testing.T) {
	res, err := Inject("model Payout {\n  id String\n}\nmodel users {\n  id String\n}\n", []string{"payouts"})
	require.NoError(t, err)

	notFound := res.Diagnostics.ByCode(CodeModelNotFound)
	require.Len(t, notFound, 1)
	assert.Equal(t, []string{"Payout"}, notFound[0].Suggestions)
	assert.Contains(t, notFound[0].String(), "did you mean Payout?")
}

func TestInjectDuplicateReportsLines(t *testing.T) {
	res, err := Inject("model a {\n}\nmodel a {\n}\n", []string{"a"})
	require.NoError(t, err)

	require.True(t, res.Diagnostics.HasErrors())
	assert.Equal(t, 3, res.Diagnostics.Errors[0].Line)
	assert.Contains(t, res.Err().Error(), "lines 1, 3")
}

var (
	modelPool  = []string{"payouts", "refunds", "merchants", "Payout", "saved_filters"}
	targetPool = []string{"payouts", "refunds", "subscriptions", "Payout", "saved_filters"}
)

// buildSchema turns generator picks into a schema. Each pick selects a model
// name and, through its bits, which fields and directives the model has.
func buildSchema(picks []int) string {
	var sb strings.Builder

	for i, p := range picks {
		fmt.Fprintf(&sb, "model %s {\n  id String @id\n", modelPool[p%len(modelPool)])

		if p&8 != 0 {
			sb.WriteString("  owner merchants @relation(fields: [owner_id], references: [id])\n")
		}

		if p&16 != 0 {
			sb.WriteString("  backup   merchants?   @relation(\"backup\", fields: [backup_id], references: [id])\n")
		}

		if p&32 != 0 {
			sb.WriteString("  merchants String\n")
		}

		if p&64 != 0 {
			fmt.Fprintf(&sb, "  @@map(\"legacy_%d\")\n", i)
		}

		sb.WriteString("}\n\n")
	}

	return sb.String()
}

func pickTargets(picks []int) []string {
	targets := make([]string, 0, len(picks))
	for _, p := range picks {
		targets = append(targets, targetPool[p])
	}

	return targets
}

func TestInjectProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	schemaGen := gen.SliceOf(gen.IntRange(0, 127))
	targetsGen := gen.SliceOf(gen.IntRange(0, len(targetPool)-1))

	properties.Property("injecting twice equals injecting once", prop.ForAll(
		func(picks, targetPicks []int) bool {
			targets := pickTargets(targetPicks)

			once, err := Inject(buildSchema(picks), targets)
			if err != nil {
				return false
			}

			twice, err := Inject(once.Schema, targets)
			if err != nil {
				return false
			}

			return once.Schema == twice.Schema && !twice.Changed
		},
		schemaGen, targetsGen,
	))

	properties.Property("declared model names are preserved", prop.ForAll(
		func(picks, targetPicks []int) bool {
			src := buildSchema(picks)

			res, err := Inject(src, pickTargets(targetPicks))
			if err != nil {
				return false
			}

			before, _ := prisma.Parse(src)
			after, err := prisma.Parse(res.Schema)
			if err != nil {
				return false
			}

			return cmp.Equal(before.ModelNames(), after.ModelNames())
		},
		schemaGen, targetsGen,
	))

	properties.Property("absent targets leave the schema byte-identical", prop.ForAll(
		func(picks []int) bool {
			src := buildSchema(picks)

			res, err := Inject(src, []string{"subscriptions", "transactions"})
			if err != nil {
				return false
			}

			return res.Schema == src && !res.Changed
		},
		schemaGen,
	))

	properties.TestingRun(t)
}

func allCodes(d diagnostic.Diagnostics) []string {
	var out []string
	for _, diag := range d.All() {
		out = append(out, diag.Code)
	}

	return out
}
