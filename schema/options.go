package schema

import (
	"github.com/aarondl/opt/null"
	"github.com/spf13/cast"
)

// Options is the free-form option bag attached to a constraint. Keys are
// case-sensitive. The recognized keys are the Option* constants; anything
// else is preserved verbatim for driver-specific extensions.
type Options map[string]any

// Recognized option keys.
const (
	OptionMatch      = "match"
	OptionOnUpdate   = "onUpdate"
	OptionOnDelete   = "onDelete"
	OptionDeferred   = "deferred"
	OptionDeferrable = "deferrable"
)

func resolveMatchType(o Options) null.Val[MatchType] {
	v, ok := o[OptionMatch]
	if !ok {
		return null.From(MatchSimple)
	}
	mt, ok := ParseMatchType(cast.ToString(v))
	return null.FromCond(mt, ok)
}

func resolveReferentialAction(o Options, key string) null.Val[ReferentialAction] {
	v, ok := o[key]
	if !ok {
		return null.From(NoAction)
	}
	action, ok := ParseReferentialAction(cast.ToString(v))
	return null.FromCond(action, ok)
}

// resolveDeferrability reads the deferred and deferrable flags. Being
// initially deferred implies deferrable unless explicitly overridden; a
// constraint declared both deferred and not deferrable is contradictory
// and resolves to nothing, with a notice to the reporter since it almost
// always means stale introspected metadata.
func resolveDeferrability(o Options, rep Reporter, name string) null.Val[Deferrability] {
	isDeferred := optionTruthy(o, OptionDeferred)

	isDeferrable := isDeferred
	if _, ok := o[OptionDeferrable]; ok {
		isDeferrable = optionTruthy(o, OptionDeferrable)
	}

	switch {
	case isDeferred && !isDeferrable:
		rep.Deprecatedf(
			"foreign key constraint %q is declared INITIALLY DEFERRED but NOT DEFERRABLE; "+
				"the deferrability options are contradictory and were ignored", name)
		return null.Val[Deferrability]{}
	case isDeferred:
		return null.From(Deferred)
	case isDeferrable:
		return null.From(Deferrable)
	default:
		return null.From(NotDeferrable)
	}
}

// optionTruthy treats a flag as set unless the key is absent or the value
// is a recognized false equivalent. A present value that does not parse
// as a boolean at all still counts as set.
func optionTruthy(o Options, key string) bool {
	v, ok := o[key]
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return true
	}
	return b
}
