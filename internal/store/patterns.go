package store

// Request-length class boundaries, in words.
const (
	shortRequestMax  = 3
	mediumRequestMax = 6
)

// LengthClass buckets a request by its word count: "short" for up to 3
// words, "medium" up to 6, "long" otherwise.
func LengthClass(requestWords int) string {
	switch {
	case requestWords <= shortRequestMax:
		return "short"
	case requestWords <= mediumRequestMax:
		return "medium"
	default:
		return "long"
	}
}

// applyPatterns feeds one decision event into both bucket families:
// the command-type bucket and the request-length-class bucket.
func (s *Store) applyPatterns(rec SuggestionRecord, accepted bool) {
	s.bump(rec.Features.CommandType, accepted)
	s.bump(LengthClass(rec.Features.RequestWordCount), accepted)
}

func (s *Store) bump(key string, accepted bool) {
	bucket := s.doc.Patterns[key]
	bucket.Total++
	if accepted {
		bucket.Accepted++
	} else {
		bucket.Rejected++
	}
	s.doc.Patterns[key] = bucket
}
