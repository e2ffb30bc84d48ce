package seed

import (
	"context"
	"fmt"
	"log"

	"suggestion-app/internal/database"
	"suggestion-app/internal/database/models"
)

var defaultCategories = []models.Category{
	{Name: "Courses", Description: "Full paid courses."},
	{Name: "Dev Questions", Description: "Advice on being a developer."},
	{Name: "In-Depth Tutorial", Description: "A deep dive video on how to use a topic."},
	{Name: "10-Minute Training", Description: "A quick \"How to\" video."},
	{Name: "Other", Description: "Not sure where this fits."},
}

var defaultStatuses = []models.Status{
	{Name: "Completed", Description: "The suggestion was accepted and the corresponding item was created."},
	{Name: "Watching", Description: "The suggestion is interesting. We are watching to see how much interest there is in it."},
	{Name: "Upcoming", Description: "The suggestion was accepted and it will be released soon."},
	{Name: "Dismissed", Description: "The suggestion was not something that we are going to undertake."},
}

// EnsureDefaults creates the stock categories and statuses that are missing.
// It is idempotent: entries whose name already exists are skipped, so running
// it repeatedly never duplicate-inserts a lookup row.
func EnsureDefaults(ctx context.Context, categories database.CategoryData, statuses database.StatusData) error {
	existingCategories, err := categories.GetAllCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	categoryNames := make(map[string]bool, len(existingCategories))
	for _, c := range existingCategories {
		categoryNames[c.Name] = true
	}
	for _, c := range defaultCategories {
		if categoryNames[c.Name] {
			continue
		}
		if err := categories.CreateCategory(ctx, &c); err != nil {
			return fmt.Errorf("failed to create category %q: %w", c.Name, err)
		}
		log.Printf("Seeded category %q", c.Name)
	}

	existingStatuses, err := statuses.GetAllStatuses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load statuses: %w", err)
	}
	statusNames := make(map[string]bool, len(existingStatuses))
	for _, s := range existingStatuses {
		statusNames[s.Name] = true
	}
	for _, s := range defaultStatuses {
		if statusNames[s.Name] {
			continue
		}
		if err := statuses.CreateStatus(ctx, &s); err != nil {
			return fmt.Errorf("failed to create status %q: %w", s.Name, err)
		}
		log.Printf("Seeded status %q", s.Name)
	}

	return nil
}
