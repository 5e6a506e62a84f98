package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketKey_Normalization(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		topic      string
		expected   string
	}{
		{
			name:       "already canonical",
			difficulty: "easy",
			topic:      "arrays",
			expected:   "easy-arrays",
		},
		{
			name:       "mixed case",
			difficulty: "Easy",
			topic:      "Arrays",
			expected:   "easy-arrays",
		},
		{
			name:       "surrounding whitespace",
			difficulty: "  medium ",
			topic:      " graphs  ",
			expected:   "medium-graphs",
		},
		{
			name:       "internal whitespace collapses to hyphen",
			difficulty: "hard",
			topic:      "dynamic programming",
			expected:   "hard-dynamic-programming",
		},
		{
			name:       "runs of whitespace collapse to one hyphen",
			difficulty: "hard",
			topic:      "dynamic \t  programming",
			expected:   "hard-dynamic-programming",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BucketKey(tt.difficulty, tt.topic))
		})
	}
}

func TestBucketKey_VariantsShareBucket(t *testing.T) {
	canonical := BucketKey("easy", "linked lists")

	assert.Equal(t, canonical, BucketKey("EASY", "Linked Lists"))
	assert.Equal(t, canonical, BucketKey(" easy ", "linked   lists"))
	assert.Equal(t, canonical, BucketKey("Easy", " LINKED\tLISTS "))
}

func TestBucketKey_StableForCanonicalInput(t *testing.T) {
	assert.Equal(t, "medium-binary-trees", BucketKey("medium", "binary-trees"))
}
