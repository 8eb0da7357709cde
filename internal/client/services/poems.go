package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mimamsa/internal/client/client"
	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/common"
)

const (
	MinRating = 1
	MaxRating = 5
)

// PoemService serves the poems and poem management screens.
type PoemService interface {
	ListPoems(ctx context.Context) ([]models.Poem, error)
	// SavePoem creates a poem when poemID is zero and updates it otherwise.
	SavePoem(ctx context.Context, poemID int64, in models.PoemInput) error
	DeletePoem(ctx context.Context, poemID, userID int64) error

	ListPoemCategories(ctx context.Context) ([]models.PoemCategory, error)
	AddPoemCategory(ctx context.Context, in models.PoemCategoryInput) error

	ListReviews(ctx context.Context, poemID int64) ([]models.Review, error)
	SubmitReview(ctx context.Context, poemID int64, in models.ReviewInput) error
	DeleteMyReview(ctx context.Context, poemID, userID int64) error
}

type poemService struct {
	client client.PoemAPI
}

func NewPoemService(client client.PoemAPI) PoemService {
	return &poemService{client: client}
}

func (p *poemService) ListPoems(ctx context.Context) ([]models.Poem, error) {
	poems, err := p.client.ListPoems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list poems error: %w", err)
	}
	return poems, nil
}

func (p *poemService) SavePoem(ctx context.Context, poemID int64, in models.PoemInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return fmt.Errorf("%w: title and content are required", common.ErrorValidation)
	}

	var err error
	if poemID == 0 {
		err = p.client.CreatePoem(ctx, in)
	} else {
		err = p.client.UpdatePoem(ctx, poemID, in)
	}
	if err != nil {
		return fmt.Errorf("save poem error: %w", err)
	}
	return nil
}

func (p *poemService) DeletePoem(ctx context.Context, poemID, userID int64) error {
	if err := p.client.DeletePoem(ctx, poemID, userID); err != nil {
		return fmt.Errorf("delete poem error: %w", err)
	}
	return nil
}

func (p *poemService) ListPoemCategories(ctx context.Context) ([]models.PoemCategory, error) {
	cats, err := p.client.ListPoemCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list poem categories error: %w", err)
	}
	return cats, nil
}

func (p *poemService) AddPoemCategory(ctx context.Context, in models.PoemCategoryInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: category name is required", common.ErrorValidation)
	}
	if err := p.client.CreatePoemCategory(ctx, in); err != nil {
		return fmt.Errorf("add poem category error: %w", err)
	}
	return nil
}

func (p *poemService) ListReviews(ctx context.Context, poemID int64) ([]models.Review, error) {
	reviews, err := p.client.ListReviews(ctx, poemID)
	if err != nil {
		return nil, fmt.Errorf("list reviews error: %w", err)
	}
	return reviews, nil
}

func (p *poemService) SubmitReview(ctx context.Context, poemID int64, in models.ReviewInput) error {
	if in.Rating < MinRating || in.Rating > MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", common.ErrorValidation, MinRating, MaxRating)
	}
	if err := p.client.SubmitReview(ctx, poemID, in); err != nil {
		return fmt.Errorf("submit review error: %w", err)
	}
	return nil
}

func (p *poemService) DeleteMyReview(ctx context.Context, poemID, userID int64) error {
	if err := p.client.DeleteMyReview(ctx, poemID, userID); err != nil {
		return fmt.Errorf("delete review error: %w", err)
	}
	return nil
}
