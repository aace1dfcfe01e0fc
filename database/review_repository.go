package database

import (
	"context"
	"encoding/json"

	"github.com/DELMUS1M/SPARKLY-STORE/models"
)

const reviewsKey = "storefront:productReviews"

// ReviewRepository persists the full review mapping as one JSON value, the
// way the storefront keeps it in its local store.
type ReviewRepository struct {
	store KVStore
}

func NewReviewRepository(store KVStore) *ReviewRepository {
	return &ReviewRepository{store: store}
}

// LoadAll reads the persisted review mapping. A missing key yields an empty
// map; a malformed value is an error for the caller to log and discard.
func (r *ReviewRepository) LoadAll(ctx context.Context) (map[int][]models.Review, error) {
	data, ok, err := r.store.Get(ctx, reviewsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[int][]models.Review{}, nil
	}

	var reviews map[int][]models.Review
	if err := json.Unmarshal([]byte(data), &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = map[int][]models.Review{}
	}
	return reviews, nil
}

// SaveAll writes the whole review mapping back to the store.
func (r *ReviewRepository) SaveAll(ctx context.Context, reviews map[int][]models.Review) error {
	data, err := json.Marshal(reviews)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, reviewsKey, string(data))
}
