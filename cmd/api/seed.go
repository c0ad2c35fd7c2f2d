package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harentsoaR/clinic-api/internal/config"
	"github.com/harentsoaR/clinic-api/internal/models"
	"github.com/harentsoaR/clinic-api/internal/store"
)

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the service catalogue into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue, err := readCatalogue(file)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
			if err != nil {
				return err
			}
			defer db.Disconnect(context.Background())

			inserted, updated, err := seedServices(ctx, db.Services, catalogue)
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %d service(s): %d inserted, %d updated.\n", len(catalogue), inserted, updated)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "seed/services.json", "Path to a JSON array of services")
	return cmd
}

func readCatalogue(path string) ([]models.Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	var catalogue []models.Service
	if err := json.Unmarshal(data, &catalogue); err != nil {
		return nil, fmt.Errorf("parse catalogue %s: %w", path, err)
	}
	for i, svc := range catalogue {
		if svc.Name == "" {
			return nil, fmt.Errorf("catalogue entry %d has no name", i)
		}
	}
	return catalogue, nil
}

func seedServices(ctx context.Context, services store.ServiceStore, catalogue []models.Service) (inserted, updated int64, err error) {
	for _, svc := range catalogue {
		res, err := services.UpsertByName(ctx, svc)
		if err != nil {
			return inserted, updated, err
		}
		inserted += res.UpsertedCount
		updated += res.ModifiedCount
	}
	return inserted, updated, nil
}
