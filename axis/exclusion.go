package axis

import (
	"go.uber.org/zap"

	"github.com/teranos/condax/logger"
)

// ApplyExclusions removes values that conflict with already-chosen trigger
// values and returns the number of removals.
//
// Rules are visited once, in slice order. A rule fires only if its trigger
// value is still present when the rule is reached, so a trigger removed by
// an earlier rule never fires. Any axis may be removed, mandatory or not.
func ApplyExclusions(sel *Selection, rules []Rule) int {
	return applyExclusions(sel, rules, logger.ComponentLogger("axis.exclusion"))
}

func applyExclusions(sel *Selection, rules []Rule, log *zap.SugaredLogger) int {
	removed := 0
	for _, rule := range rules {
		if v, ok := sel.Get(rule.When.Axis); !ok || v != rule.When.Value {
			continue
		}
		log.Debugw("Exclusion rule triggered", logger.FieldTrigger, rule.When.String())

		for _, block := range rule.Block {
			current, ok := sel.Get(block.Axis)
			if !ok || !block.Contains(current) {
				continue
			}
			sel.Delete(block.Axis)
			removed++
			log.Debugw("Removed conflicting value",
				logger.FieldAxis, block.Axis,
				logger.FieldValue, current,
				logger.FieldTrigger, rule.When.String())
		}
	}

	if removed > 0 {
		log.Infow("Applied exclusion rules", logger.FieldRemoved, removed)
	}
	return removed
}
