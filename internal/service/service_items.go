package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/models"
)

type itemService struct {
	logger *logger.Logger
}

func NewItemService(logger *logger.Logger) ItemService {
	return &itemService{logger: logger}
}

func (s *itemService) GetItems(ctx context.Context) ([]models.Item, error) {
	return mockItems(), nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return findItem(id)
}

func (s *itemService) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	item := models.Item{
		ID:          nextMockID,
		Name:        req.Name,
		Description: req.Description,
		UserID:      req.UserID,
		CreatedAt:   day3,
		UpdatedAt:   day3,
	}

	logger.FromContext(ctx).Info().Str("name", item.Name).Msg("created item")
	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id int64, req models.UpdateItemRequest) (models.Item, error) {
	item, err := findItem(id)
	if err != nil {
		return models.Item{}, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.UserID != nil {
		item.UserID = *req.UserID
	}
	item.UpdatedAt = day3

	logger.FromContext(ctx).Info().Str("name", item.Name).Msg("updated item")
	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	if _, err := findItem(id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("deleted item")
	return nil
}

func findItem(id int64) (models.Item, error) {
	for _, it := range mockItems() {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Item{}, fmt.Errorf("%w: id %d", ErrItemNotFound, id)
}
