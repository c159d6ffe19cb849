package model

// LabelDiff is the outcome of reconciling matched labels against an issue's
// existing label set.
type LabelDiff struct {
	Labels  []string
	Changed bool
}

// Reconcile merges matched labels into the existing set. Additive only: an
// existing label is never removed. The default label applies only when no rule
// matched. Re-running with the resulting set yields Changed=false, so repeated
// cycles never issue redundant writes.
func Reconcile(existing, matched []string, defaultLabel string) *LabelDiff {
	if len(matched) == 0 && defaultLabel != "" {
		matched = []string{defaultLabel}
	}

	labels := make([]string, 0, len(existing)+len(matched))
	seen := make(map[string]struct{}, len(existing)+len(matched))
	for _, label := range existing {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	changed := false
	for _, label := range matched {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
		changed = true
	}

	return &LabelDiff{Labels: labels, Changed: changed}
}
