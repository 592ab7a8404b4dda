package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLengthClass(t *testing.T) {
	tests := []struct {
		words int
		want  string
	}{
		{0, "short"},
		{1, "short"},
		{3, "short"},
		{4, "medium"},
		{6, "medium"},
		{7, "long"},
		{20, "long"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LengthClass(tt.words), "words=%d", tt.words)
	}
}

func TestApplyPatterns_BothBucketFamilies(t *testing.T) {
	s := testStore(t)

	rec := testRecord("t1", time.Now())
	rec.Features.CommandType = "grep"
	rec.Features.RequestWordCount = 5
	s.Append(rec)

	s.UpdateDecision("t1", true, "")

	patterns := s.Patterns()
	assert.Equal(t, PatternBucket{Accepted: 1, Total: 1}, patterns["grep"])
	assert.Equal(t, PatternBucket{Accepted: 1, Total: 1}, patterns["medium"])
}

func TestApplyPatterns_RejectCounts(t *testing.T) {
	s := testStore(t)

	rec := testRecord("t1", time.Now())
	rec.Features.CommandType = "rm"
	rec.Features.RequestWordCount = 2
	s.Append(rec)

	s.UpdateDecision("t1", false, "too risky")

	patterns := s.Patterns()
	assert.Equal(t, PatternBucket{Rejected: 1, Total: 1}, patterns["rm"])
	assert.Equal(t, PatternBucket{Rejected: 1, Total: 1}, patterns["short"])
}

func TestPatternBucket_AcceptanceRate(t *testing.T) {
	assert.Equal(t, 0.5, PatternBucket{}.AcceptanceRate(0.5))
	assert.Equal(t, 0.75, PatternBucket{Accepted: 3, Rejected: 1, Total: 4}.AcceptanceRate(0.5))
}
