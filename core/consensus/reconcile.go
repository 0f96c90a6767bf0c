// ABOUTME: Consensus checker reconciles translations from several sources into one decision
// ABOUTME: Two primary sources must agree exactly; otherwise the result is flagged for manual review

package consensus

import (
	"fmt"
	"sort"
	"strings"

	"poi-translation-api/core/domain"
)

// Reconciler compares primary sources and picks a provisional translation
type Reconciler struct {
	primaries [2]domain.SourceID
	fallback  []domain.SourceID
}

// NewReconciler creates a reconciler with serp and perplexity as primaries
func NewReconciler() *Reconciler {
	return NewReconcilerWithSources(
		[2]domain.SourceID{domain.SourceSERP, domain.SourcePerplexity},
		[]domain.SourceID{domain.SourceSERP, domain.SourcePerplexity, domain.SourceOpenAI, domain.SourceGoogleMaps},
	)
}

// NewReconcilerWithSources creates a reconciler with explicit primaries and fallback order.
// Sources missing from fallback are tried after it, sorted by ID.
func NewReconcilerWithSources(primaries [2]domain.SourceID, fallback []domain.SourceID) *Reconciler {
	order := make([]domain.SourceID, len(fallback))
	copy(order, fallback)
	return &Reconciler{primaries: primaries, fallback: order}
}

// IsValid reports whether a source result can be used as a translation
func IsValid(text string) bool {
	text = strings.TrimSpace(text)
	return text != "" && !domain.IsFailureSentinel(text)
}

// Reconcile decides between source results. Primary agreement is exact,
// case-sensitive string equality after trimming surrounding whitespace.
func (r *Reconciler) Reconcile(results map[domain.SourceID]string) domain.ConsensusResult {
	first, second := r.primaries[0], r.primaries[1]
	firstText := strings.TrimSpace(results[first])
	secondText := strings.TrimSpace(results[second])
	firstValid, secondValid := IsValid(firstText), IsValid(secondText)

	if !firstValid || !secondValid {
		return domain.ConsensusResult{
			NeedsManualReview: true,
			BestTranslation:   r.firstValid(results),
			Reason: fmt.Sprintf("primary sources unavailable - %s: %s, %s: %s",
				first, validity(firstValid), second, validity(secondValid)),
		}
	}

	if firstText == secondText {
		return domain.ConsensusResult{
			NeedsManualReview: false,
			BestTranslation:   firstText,
			Reason:            fmt.Sprintf("primary sources consistent (%s + %s)", first, second),
		}
	}

	return domain.ConsensusResult{
		NeedsManualReview: true,
		BestTranslation:   firstText,
		Reason:            fmt.Sprintf("primary sources inconsistent (%s: %q, %s: %q) - manual review required", first, firstText, second, secondText),
	}
}

// firstValid returns the first valid result in fallback order, then any remaining source by ID
func (r *Reconciler) firstValid(results map[domain.SourceID]string) string {
	seen := make(map[domain.SourceID]bool, len(r.fallback))
	for _, id := range r.fallback {
		seen[id] = true
		if text := results[id]; IsValid(text) {
			return strings.TrimSpace(text)
		}
	}

	rest := make([]string, 0, len(results))
	for id := range results {
		if !seen[id] {
			rest = append(rest, string(id))
		}
	}
	sort.Strings(rest)

	for _, id := range rest {
		if text := results[domain.SourceID(id)]; IsValid(text) {
			return strings.TrimSpace(text)
		}
	}
	return ""
}

func validity(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}
