package service

import (
	"time"

	"github.com/MKhiriev/go-app-scaffold/models"
)

// Fixed timestamps of the mock records.
var (
	day1 = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	day2 = time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	day3 = time.Date(2023, time.January, 3, 0, 0, 0, 0, time.UTC)
)

// nextMockID is the id assigned to every created record.
const nextMockID int64 = 3

// mockUsers returns a fresh copy of the mock users on every call.
func mockUsers() []models.User {
	return []models.User{
		{
			ID:        1,
			Username:  "admin",
			Email:     "admin@example.com",
			IsActive:  true,
			IsAdmin:   true,
			CreatedAt: day1,
			UpdatedAt: day1,
		},
		{
			ID:        2,
			Username:  "user",
			Email:     "user@example.com",
			IsActive:  true,
			IsAdmin:   false,
			CreatedAt: day2,
			UpdatedAt: day2,
		},
	}
}

func mockItems() []models.Item {
	desc1 := "Description for Item 1"
	desc2 := "Description for Item 2"

	return []models.Item{
		{
			ID:          1,
			Name:        "Item 1",
			Description: &desc1,
			UserID:      1,
			CreatedAt:   day1,
			UpdatedAt:   day1,
		},
		{
			ID:          2,
			Name:        "Item 2",
			Description: &desc2,
			UserID:      2,
			CreatedAt:   day2,
			UpdatedAt:   day2,
		},
	}
}
