package services

import (
	"context"
	"testing"
	"time"

	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/models"
	"github.com/stretchr/testify/require"
)

func seedClient(t *testing.T, db database.Database, name string) *models.Client {
	t.Helper()
	client := &models.Client{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.ClientRepo().Add(context.Background(), client))
	return client
}

func seedProject(t *testing.T, db database.Database, clientID string, mutate func(*models.Project)) *models.Project {
	t.Helper()
	project := models.ProjectInput{
		ClientID:  clientID,
		Title:     "Storefront",
		StartDate: models.NewTimestamp(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)),
		Deadline:  models.NewTimestamp(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}.Project()
	if mutate != nil {
		mutate(&project)
	}
	require.NoError(t, db.ProjectRepo().Add(context.Background(), &project))
	return &project
}
