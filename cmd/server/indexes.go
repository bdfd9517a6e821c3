package main

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	mongodb "github.com/bangalorejobs/job-board/internal/infrastructure/db/mongo"
)

// ensureIndexes creates every collection index the repositories rely on,
// including the unique email and unique (job, applicant) constraints.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewJobRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewApplicationRepository(db).EnsureIndexes(ctx)
}
