package config

// DefaultSchemaPath is the schema location used when none is configured.
const DefaultSchemaPath = "prisma/schema.prisma"

// Config is a normalization run configuration.
type Config struct {
	Version string `yaml:"version"`
	// Schema is the path of the schema file to rewrite.
	Schema string `yaml:"schema,omitempty"`
	// TargetModels receive @@map("<name>") when they have no mapping yet.
	TargetModels []string `yaml:"target_models,omitempty"`
	// RelationRenames rewrite relation field types, applied in order.
	RelationRenames []RelationRename `yaml:"relation_renames,omitempty"`
}

// RelationRename renames one relation field type.
type RelationRename struct {
	From string `yaml:"from"`
	To   string `yaml:"to,omitempty"`
}

// Default returns the configuration of the historical fixed run.
func Default() *Config {
	cfg := &Config{
		TargetModels: []string{
			"payouts",
			"subscriptions",
			"refunds",
			"transactions",
			"provider_credentials",
			"vat_transactions",
			"notification_history",
			"saved_filters",
			"sandbox_webhook_logs",
		},
		RelationRenames: []RelationRename{
			{From: "merchants", To: "Merchant"},
		},
	}
	applyDefaults(cfg)

	return cfg
}
