package types

const (
	MODE_AND = "AND"
	MODE_OR  = "OR"
)

const (
	// Only the IN operator is evaluated; conditions carrying any other
	// operator contribute no truth value.
	OPERATOR_IN = "IN"
)

const (
	OPTION_TYPE_SINGLE = "Single"
	OPTION_TYPE_EXACT  = "Exact"
)

// Rule groups conditions attached to a question. Sibling rules on the same
// question are combined through their Mode.
type Rule struct {
	Sequence         int         `bson:"sequence" json:"sequence"`
	Mode             string      `bson:"mode" json:"mode"`
	ParentQuestionID string      `bson:"parentQuestionId,omitempty" json:"parentQuestionId,omitempty"`
	Description      string      `bson:"description,omitempty" json:"description,omitempty"`
	Conditions       []Condition `bson:"conditions,omitempty" json:"conditions,omitempty"`
}

// Condition is a single comparison against the answer state of the rule's
// parent question. Sibling conditions within the same rule are combined
// through their own Mode, independently of the rule level grouping.
type Condition struct {
	Operator      string   `bson:"operator" json:"operator"`
	Mode          string   `bson:"mode" json:"mode"`
	OptionType    string   `bson:"optionType,omitempty" json:"optionType,omitempty"`
	Negate        bool     `bson:"negate,omitempty" json:"negate,omitempty"`
	ParentOptions []string `bson:"parentOptions,omitempty" json:"parentOptions,omitempty"`
	Description   string   `bson:"description,omitempty" json:"description,omitempty"`

	// IsApplicable records the outcome of the last evaluation for display
	// purposes. It is an output of the engine, never an input.
	IsApplicable bool `bson:"isApplicable,omitempty" json:"isApplicable,omitempty"`
}
