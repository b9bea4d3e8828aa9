package services

import (
	"context"
	"encoding/json"

	"github.com/Abubakar-88/jugjiggasha/internal/apiclient"
	"github.com/Abubakar-88/jugjiggasha/internal/models"
	"github.com/Abubakar-88/jugjiggasha/internal/offline"
)

// CategoryServiceProvider defines the interface for category services.
type CategoryServiceProvider interface {
	List(ctx context.Context) ([]models.Category, bool, error)
	Get(ctx context.Context, id string) (models.Category, error)
	Create(ctx context.Context, payload models.CategoryPayload) (models.Category, error)
	Update(ctx context.Context, id string, payload models.CategoryPayload) (models.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService fronts the upstream category API.
type CategoryService struct {
	api    *apiclient.Client
	engine *offline.Engine
	events EventServiceProvider
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(api *apiclient.Client, engine *offline.Engine, events EventServiceProvider) *CategoryService {
	return &CategoryService{api: api, engine: engine, events: events}
}

// List retrieves all categories, falling back to the offline cache when the
// upstream is unreachable.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, bool, error) {
	result, err := s.engine.FetchAPI(ctx, "categories", func(ctx context.Context) (offline.Entry, error) {
		categories, err := s.api.ListCategories(ctx)
		if err != nil {
			return offline.Entry{}, err
		}
		return encodeEntry(categories)
	})
	if err != nil {
		return nil, false, err
	}

	var categories []models.Category
	err = json.Unmarshal(result.Entry.Body, &categories)
	return categories, result.FromCache, err
}

// Get retrieves a single category.
func (s *CategoryService) Get(ctx context.Context, id string) (models.Category, error) {
	return s.api.GetCategory(ctx, id)
}

// Create creates a category.
func (s *CategoryService) Create(ctx context.Context, payload models.CategoryPayload) (models.Category, error) {
	category, err := s.api.CreateCategory(ctx, payload)
	if err != nil {
		return models.Category{}, err
	}
	s.events.CreateEvent("category.create", "info", "Category created: "+category.Name, &category.ID)
	return category, nil
}

// Update updates a category.
func (s *CategoryService) Update(ctx context.Context, id string, payload models.CategoryPayload) (models.Category, error) {
	category, err := s.api.UpdateCategory(ctx, id, payload)
	if err != nil {
		return models.Category{}, err
	}
	s.events.CreateEvent("category.update", "info", "Category updated: "+category.Name, &id)
	return category, nil
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.events.CreateEvent("category.delete", "info", "Category deleted", &id)
	return nil
}
