package detect

import (
	"tsconv/internal/core/timefmt"
)

// Scoring deltas. The validator split is deliberately asymmetric: a
// failing validator is stronger evidence against a format than a
// passing one is for it
const (
	validatorBonus   = 0.05
	validatorPenalty = 0.15
	exampleBonus     = 0.05
	digitRichBonus   = 0.05
	digitPoorPenalty = 0.15
	letterBonus      = 0.05

	digitRichRatio = 0.9
	digitPoorRatio = 0.7
)

// score computes the confidence for one matched descriptor: base
// confidence, validator delta, composition adjustments, exact-example
// bonus, clamped to [0,1]
func score(d *timefmt.FormatDescriptor, rule timefmt.Rule, in string, comp Composition) (conf float64, reason string, validatorFailed bool) {
	conf = d.BaseConfidence
	reason = "matched " + rule.Name()

	if d.Validate != nil {
		if d.Validate(in) {
			conf += validatorBonus
		} else {
			conf -= validatorPenalty
			validatorFailed = true
			reason += "; failed validation"
		}
	}

	total := comp.Digits + comp.Letters + comp.Symbols + comp.Spaces
	if d.Numeric && total > 0 {
		ratio := float64(comp.Digits) / float64(total)
		switch {
		case ratio > digitRichRatio:
			conf += digitRichBonus
		case ratio < digitPoorRatio:
			conf -= digitPoorPenalty
		}
	}
	if d.Category == timefmt.CategoryCultural && comp.Letters > 0 {
		conf += letterBonus
	}
	if in == d.Example {
		conf += exampleBonus
	}

	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return conf, reason, validatorFailed
}
