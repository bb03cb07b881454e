package dataset

import (
	"time"

	"go.uber.org/zap"

	"github.com/rlion219-collab/tanzania-political-dashboard/internal/models"
)

// Store holds the full record set for the lifetime of the process. It is
// populated exactly once at startup and never written again, so it is safe
// to share across concurrent requests without locking.
type Store struct {
	posts  []models.Post
	topics []string
}

// Open loads the dataset at path and wraps it in a Store.
func Open(path string, loc *time.Location, logger *zap.Logger) (*Store, error) {
	posts, err := Load(path, loc)
	if err != nil {
		return nil, err
	}

	store := NewStore(posts)
	logger.Info("Dataset loaded",
		zap.String("path", path),
		zap.Int("posts", store.Len()),
		zap.Int("topics", len(store.Topics())))
	return store, nil
}

// NewStore builds a Store over an already-parsed record set.
func NewStore(posts []models.Post) *Store {
	seen := make(map[string]struct{})
	var topics []string
	for i := range posts {
		topic := posts[i].Topic
		if _, ok := seen[topic]; !ok {
			seen[topic] = struct{}{}
			topics = append(topics, topic)
		}
	}
	return &Store{posts: posts, topics: topics}
}

// Len returns the size of the full record set.
func (s *Store) Len() int { return len(s.posts) }

// Topics returns the distinct topic labels in first-encountered order.
// Callers must not modify the returned slice.
func (s *Store) Topics() []string { return s.topics }

// Filter returns the order-preserving subsequence of posts satisfying the
// filter's conjunction of predicates.
func (s *Store) Filter(f models.Filter) []models.Post {
	var filtered []models.Post
	for i := range s.posts {
		if f.Matches(&s.posts[i]) {
			filtered = append(filtered, s.posts[i])
		}
	}
	return filtered
}
