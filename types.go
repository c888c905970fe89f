package valto

// UnknownPolicy controls how a struct engine handles map keys it has no
// field for.
type UnknownPolicy int

const (
	UnknownIgnore UnknownPolicy = iota // Drop unknown keys silently.
	UnknownDeny                        // Reject unknown keys with an error.
)

// RenamePolicy rewrites every registered field name into its wire key.
// An explicit per-field Rename always wins over the policy.
type RenamePolicy int

const (
	RenameNone  RenamePolicy = iota // Field names are used verbatim.
	RenameCamel                     // snake_case names become camelCase.
	RenameLower                     // Names are lowercased.
)
