package textmatch

import (
	"github.com/hbollon/go-edlib"
)

// MatchConfidence represents the confidence level of a name match.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // Score < 0.70
	ConfidenceLow                           // Score >= 0.70
	ConfidenceMedium                        // Score >= 0.85
	ConfidenceHigh                          // Score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// MatchResult is the outcome of matching a query against candidate names.
type MatchResult struct {
	Index      int     // Index of the best candidate, -1 when none matched
	Name       string  // The matched candidate as given
	Score      float64 // Jaro-Winkler similarity score (0.0-1.0)
	Confidence MatchConfidence
}

// BestMatch finds the candidate most similar to the query.
// Uses Jaro-Winkler similarity, which favors prefix matches (good for
// titles and author names). Both sides are normalized with CleanName
// before comparison.
func BestMatch(query string, candidates []string) MatchResult {
	best := MatchResult{Index: -1, Confidence: ConfidenceNone}
	if len(candidates) == 0 {
		return best
	}

	normalizedQuery := CleanName(query)

	for i, candidate := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(normalizedQuery, CleanName(candidate)))
		if score > best.Score {
			best.Index = i
			best.Name = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		// Not similar enough to call a match.
		best.Index = -1
		best.Name = ""
		best.Confidence = ConfidenceNone
	}

	return best
}
