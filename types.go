package stacskema

// UnknownPolicy controls how unknown keys are handled.
type UnknownPolicy int

const (
	UnknownDefault UnknownPolicy = iota // Use the policy the schema was built with.
	UnknownStrict                       // Reject unknown keys with an error.
	UnknownStrip                        // Drop unknown keys.
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrict:
		return "strict"
	case UnknownStrip:
		return "strip"
	default:
		return "default"
	}
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Warn or Error (duplicate JSON/YAML keys).
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	// Unknown overrides the unknown-key policy of every object schema reached
	// during the parse. UnknownDefault keeps each schema's own policy.
	Unknown  UnknownPolicy
	MaxDepth int
	MaxBytes int64
	FailFast bool
	// OnWarning receives issues reported with Warn severity (duplicate keys).
	OnWarning func(Issue)
}
