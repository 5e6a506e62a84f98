package usecase

import "strings"

// BucketKey derives the canonical waiting-pool bucket for a difficulty and
// topic: both are lower-cased and trimmed, runs of whitespace inside the
// topic collapse to a single hyphen, and the two are joined with a hyphen.
//
// The join path and every removal path must derive keys through this one
// function; a removal that normalizes differently would strand the entry in
// the pool while the index still references it.
func BucketKey(difficulty, topic string) string {
	d := strings.ToLower(strings.TrimSpace(difficulty))
	t := strings.ToLower(strings.TrimSpace(topic))
	t = strings.Join(strings.Fields(t), "-")
	return d + "-" + t
}
