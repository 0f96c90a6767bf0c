package scoring

import "poi-translation-api/core/domain"

// SelectBest returns the highest-scoring candidate with a positive score.
// Ties go to the earliest candidate. ok is false when no candidate scored above zero.
func SelectBest(candidates []domain.Candidate) (best domain.Candidate, ok bool) {
	for _, c := range candidates {
		if c.Score <= 0 {
			continue
		}
		if !ok || c.Score > best.Score {
			best = c
			ok = true
		}
	}
	return best, ok
}

// ScoreAll builds and scores a candidate for each result, in order
func ScoreAll(results []domain.SearchResult, poiName, languageCode, countryCode string, opts Options) []domain.Candidate {
	candidates := make([]domain.Candidate, 0, len(results))
	for i, r := range results {
		c := NewCandidate(r, i+1)
		Score(&c, poiName, languageCode, countryCode, opts)
		candidates = append(candidates, c)
	}
	return candidates
}
