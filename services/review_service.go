package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/DELMUS1M/SPARKLY-STORE/catalog"
	"github.com/DELMUS1M/SPARKLY-STORE/database"
	"github.com/DELMUS1M/SPARKLY-STORE/logger"
	"github.com/DELMUS1M/SPARKLY-STORE/models"
)

const reviewDateLayout = "January 2, 2006"

// ReviewService keeps the review mapping in memory and mirrors it to the
// persistent store best-effort: the in-memory state is authoritative and
// store failures are logged, never surfaced.
type ReviewService struct {
	mu      sync.RWMutex
	reviews map[int][]models.Review
	repo    *database.ReviewRepository
	now     func() time.Time
}

func NewReviewService(repo *database.ReviewRepository) *ReviewService {
	return &ReviewService{
		reviews: map[int][]models.Review{},
		repo:    repo,
		now:     time.Now,
	}
}

// Load reads the persisted reviews once at startup. Missing or malformed
// data falls back to an empty mapping.
func (s *ReviewService) Load(ctx context.Context) {
	reviews, err := s.repo.LoadAll(ctx)
	if err != nil {
		logger.Log.Warn("Failed to load persisted reviews, starting empty", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.reviews = reviews
	s.mu.Unlock()
}

// Add prepends the review to the product's list and persists the whole
// mapping. The new review is always index 0.
func (s *ReviewService) Add(ctx context.Context, productID int, name string, rating int, comment string) models.Review {
	review := models.Review{
		Name:    name,
		Rating:  rating,
		Comment: comment,
		Date:    s.now().Format(reviewDateLayout),
	}

	s.mu.Lock()
	s.reviews[productID] = append([]models.Review{review}, s.reviews[productID]...)
	snapshot := s.copyAll()
	s.mu.Unlock()

	if err := s.repo.SaveAll(ctx, snapshot); err != nil {
		logger.Log.Warn("Failed to persist reviews",
			zap.Int("product_id", productID),
			zap.Error(err),
		)
	}
	return review
}

// ForProduct returns the reviews for a product, newest first.
func (s *ReviewService) ForProduct(productID int) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Review, len(s.reviews[productID]))
	copy(out, s.reviews[productID])
	return out
}

// ByAuthor returns every review written under the given name, with the
// product attached, in catalog order.
func (s *ReviewService) ByAuthor(name string) []models.ProductReview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.ProductReview{}
	for _, p := range catalog.All() {
		for _, r := range s.reviews[p.ID] {
			if strings.EqualFold(r.Name, name) {
				out = append(out, models.ProductReview{Product: p, Review: r})
			}
		}
	}
	return out
}

// copyAll snapshots the mapping for persistence. Caller holds the lock.
func (s *ReviewService) copyAll() map[int][]models.Review {
	out := make(map[int][]models.Review, len(s.reviews))
	for id, list := range s.reviews {
		cp := make([]models.Review, len(list))
		copy(cp, list)
		out[id] = cp
	}
	return out
}
