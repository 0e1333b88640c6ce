// Package seed guarantees the service never starts empty: one super-admin
// account and a non-empty event catalog. It runs before the router accepts
// traffic and tolerates re-execution — the username lookup and the catalog
// emptiness check are the only guards it needs.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/eventhub-dev/eventhub/internal/apperr"
	"github.com/eventhub-dev/eventhub/internal/auth"
	"github.com/eventhub-dev/eventhub/internal/config"
	"github.com/eventhub-dev/eventhub/internal/models"
	"github.com/eventhub-dev/eventhub/internal/store"
)

func Run(ctx context.Context, cfg config.SeedConfig) error {
	admin, err := store.GetUserByUsername(ctx, cfg.SuperAdminUsername)

	if errors.Is(err, apperr.ErrNotFound) {
		hash, hashErr := auth.HashPassword(cfg.SuperAdminPassword)
		if hashErr != nil {
			return fmt.Errorf("hash super admin password: %w", hashErr)
		}

		admin = &models.User{
			Username:     cfg.SuperAdminUsername,
			PasswordHash: hash,
			Role:         models.RoleSuperAdmin,
			IsApproved:   true,
		}

		if err := store.CreateUser(ctx, admin); err != nil {
			return fmt.Errorf("seed super admin: %w", err)
		}

		log.Printf("Seeded super admin user: %s", cfg.SuperAdminUsername)
	} else if err != nil {
		return fmt.Errorf("look up super admin: %w", err)
	}

	events, err := store.ListEvents(ctx)

	if err != nil {
		return fmt.Errorf("check event catalog: %w", err)
	}

	if len(events) > 0 {
		return nil
	}

	samples := []models.Event{
		{
			Title:       "Tech Conference 2024",
			Description: "Annual developer meetup covering Cloud, AI, and Web Tech.",
			Date:        time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC),
			Location:    "San Francisco, CA",
			CreatedByID: admin.ID,
		},
		{
			Title:       "Company Picnic",
			Description: "Fun day out for all employees and families.",
			Date:        time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC),
			Location:    "Golden Gate Park",
			CreatedByID: admin.ID,
		},
	}

	for i := range samples {
		if err := store.CreateEvent(ctx, &samples[i]); err != nil {
			return fmt.Errorf("seed events: %w", err)
		}
	}

	log.Println("Seeded sample events")

	return nil
}
