package lint

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override Apply.
//
// Fields are unexported to avoid stutter and name collisions with
// interface methods.
type BaseRule struct {
	id      string
	name    string
	desc    string
	tags    []string
	fixable bool
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string, fixable bool) BaseRule {
	return BaseRule{
		id:      id,
		name:    name,
		desc:    desc,
		tags:    tags,
		fixable: fixable,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// CanFix reports whether a formatter pass eliminates this rule's violations.
func (r *BaseRule) CanFix() bool {
	return r.fixable
}

// Apply must be overridden by concrete rule implementations.
func (r *BaseRule) Apply(_ *RuleContext) ([]Warning, error) {
	return nil, nil
}
