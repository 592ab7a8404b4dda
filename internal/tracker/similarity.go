package tracker

import (
	"math"
	"sort"
	"strings"

	"github.com/blackwell-systems/cmdtrack/internal/store"
)

// Fixed design constants for the similarity blend. These are not
// configurable per call.
const (
	lexicalWeight  = 0.6
	featureWeight  = 0.4
	scoreThreshold = 0.3

	// DefaultSimilarLimit is the result cap used when a caller passes no limit.
	DefaultSimilarLimit = 5
)

// Match pairs a historical record with its combined similarity score.
type Match struct {
	Record store.SuggestionRecord
	Score  float64
}

// FindSimilar scores resolved historical records against a new request and
// its feature vector, and returns the matches whose combined score exceeds
// the threshold, best first, at most limit. Records still pending a user
// decision are never eligible.
func FindSimilar(request string, features store.FeatureVector, history []store.SuggestionRecord, limit int) []Match {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	requestWords := wordSet(request)

	var matches []Match
	for _, rec := range history {
		if !rec.Decision.Resolved() {
			continue
		}

		lexical := wordSimilarity(requestWords, wordSet(rec.UserRequest))
		featural := featureSimilarity(features, rec.Features)
		score := lexicalWeight*lexical + featureWeight*featural

		if score > scoreThreshold {
			matches = append(matches, Match{Record: rec, Score: score})
		}
	}

	// Stable sort keeps chronological order among equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// wordSimilarity is the lexical overlap of two token sets:
// |A ∩ B| / max(|A|, |B|), defined as 0 when both sets are empty.
func wordSimilarity(a, b map[string]bool) float64 {
	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}
	if larger == 0 {
		return 0
	}

	overlap := 0
	for word := range a {
		if b[word] {
			overlap++
		}
	}
	return float64(overlap) / float64(larger)
}

// featureSimilarity averages per-feature contributions across the vector:
// booleans contribute 1 when equal, numerics contribute
// 1 - |a-b| / max(|a|,|b|,1). The command-type string does not participate.
func featureSimilarity(a, b store.FeatureVector) float64 {
	var sum float64
	count := 0

	numeric := func(x, y int) {
		span := math.Max(math.Abs(float64(x)), math.Max(math.Abs(float64(y)), 1))
		sum += 1 - math.Abs(float64(x)-float64(y))/span
		count++
	}
	boolean := func(x, y bool) {
		if x == y {
			sum++
		}
		count++
	}

	numeric(a.CommandLength, b.CommandLength)
	numeric(a.WordCount, b.WordCount)
	numeric(a.RequestLength, b.RequestLength)
	numeric(a.RequestWordCount, b.RequestWordCount)

	boolean(a.HasPipes, b.HasPipes)
	boolean(a.HasRedirects, b.HasRedirects)
	boolean(a.HasSudo, b.HasSudo)
	boolean(a.HasFlags, b.HasFlags)
	boolean(a.FileOps, b.FileOps)
	boolean(a.SystemOps, b.SystemOps)
	boolean(a.NetworkOps, b.NetworkOps)
	boolean(a.PackageOps, b.PackageOps)

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func wordSet(s string) map[string]bool {
	words := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(s)) {
		words[w] = true
	}
	return words
}
