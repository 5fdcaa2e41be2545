package rewrite

// Diagnostic codes reported by the passes.
const (
	CodeModelNotFound          = "model_not_found"
	CodeDuplicateModel         = "duplicate_model"
	CodeAlreadyMapped          = "already_mapped"
	CodeMapInjected            = "map_injected"
	CodeRelationRenamed        = "relation_renamed"
	CodeRelationMarkerMissing  = "relation_marker_missing"
	CodeRelationTypeNotFound   = "relation_type_not_found"
	CodeRelationAlreadyRenamed = "relation_already_renamed"
)

const (
	mapDirective      = "@@map"
	relationAttribute = "@relation"
	suggestionLimit   = 3
)
