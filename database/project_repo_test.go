package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/database/dbtest"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func seedProject(t *testing.T, db database.Database, title string) *models.Project {
	t.Helper()
	client := &models.Client{Name: "Acme", Email: "ops@acme.test"}
	require.NoError(t, db.ClientRepo().Add(context.Background(), client))

	project := models.ProjectInput{
		ClientID:    client.ID,
		Title:       title,
		Description: "marketing site",
		StartDate:   models.NewTimestamp(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		Deadline:    models.NewTimestamp(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		TotalPrice:  1500,
	}.Project()
	require.NoError(t, db.ProjectRepo().Add(context.Background(), &project))
	return &project
}

func TestProjectRepo_AddAssignsIdentityAndDefaults(t *testing.T) {
	db := dbtest.New(t)
	project := seedProject(t, db, "Landing page")

	assert.NotEmpty(t, project.ID)
	assert.NotEmpty(t, project.ShareLink)
	assert.NotEqual(t, project.ID, project.ShareLink)
	assert.Equal(t, models.StatusNotStarted, project.Status)
	assert.False(t, project.CreatedAt.IsZero())

	stored, err := db.ProjectRepo().FindByID(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ShareLink, stored.ShareLink)
	assert.True(t, project.StartDate.Equal(stored.StartDate.Time))
	assert.NotNil(t, stored.Milestones)
}

func TestProjectRepo_ShareLinksAreDistinct(t *testing.T) {
	db := dbtest.New(t)
	a := seedProject(t, db, "A")
	b := seedProject(t, db, "B")
	assert.NotEqual(t, a.ShareLink, b.ShareLink)
}

func TestProjectRepo_UpdateOnlyWritesPatchedFields(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	project := seedProject(t, db, "Landing page")

	status := models.StatusCompleted
	patch := models.ProjectPatch{Status: &status}

	first, err := db.ProjectRepo().Update(ctx, project.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, first.Status)
	assert.Equal(t, "Landing page", first.Title)
	assert.Equal(t, "marketing site", first.Description)
	assert.Equal(t, 1500.0, first.TotalPrice)
	assert.Equal(t, project.ShareLink, first.ShareLink)

	second, err := db.ProjectRepo().Update(ctx, project.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProjectRepo_UpdateMilestones(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	project := seedProject(t, db, "Shop")

	milestones := []models.Milestone{{Title: "Wireframes"}, {ID: "fixed", Title: "Launch", Completed: true}}
	updated, err := db.ProjectRepo().Update(ctx, project.ID, models.ProjectPatch{Milestones: &milestones})
	require.NoError(t, err)

	require.Len(t, updated.Milestones, 2)
	assert.NotEmpty(t, updated.Milestones[0].ID)
	assert.Equal(t, "Wireframes", updated.Milestones[0].Title)
	assert.Equal(t, "fixed", updated.Milestones[1].ID)
	assert.True(t, updated.Milestones[1].Completed)
}

func TestProjectRepo_UpdateMissing(t *testing.T) {
	db := dbtest.New(t)
	title := "x"
	_, err := db.ProjectRepo().Update(context.Background(), "missing", models.ProjectPatch{Title: &title})
	assert.True(t, errs.IsNotFound(err))

	_, err = db.ProjectRepo().Update(context.Background(), "missing", models.ProjectPatch{})
	assert.True(t, errs.IsNotFound(err))
}

func TestProjectRepo_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	project := seedProject(t, db, "Cascade")
	other := seedProject(t, db, "Survivor")

	for _, text := range []string{"hello", "world"} {
		require.NoError(t, db.MessageRepo().Add(ctx, &models.Message{
			ProjectID: project.ID, SenderName: "Admin", SenderRole: models.RoleAdmin, Message: text,
		}))
	}
	require.NoError(t, db.FileRepo().Add(ctx, &models.FileUpload{
		ProjectID: project.ID, Filename: "logo.png", FileURL: "https://cdn.test/logo.png", FileType: "image/png", UploadedBy: "Admin",
	}))
	require.NoError(t, db.SRSDocumentRepo().Add(ctx, &models.SRSDocument{
		ProjectID: project.ID, Title: "SRS", Version: "1.0", FileURL: "https://cdn.test/srs.pdf", UploadedBy: "Admin",
	}))
	require.NoError(t, db.MessageRepo().Add(ctx, &models.Message{
		ProjectID: other.ID, SenderName: "Admin", SenderRole: models.RoleAdmin, Message: "keep me",
	}))

	require.NoError(t, db.ProjectRepo().Delete(ctx, project.ID))

	_, err := db.ProjectRepo().FindByID(ctx, project.ID)
	assert.True(t, errs.IsNotFound(err))

	messages, err := db.MessageRepo().FindByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, messages)
	files, err := db.FileRepo().FindByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, files)
	docs, err := db.SRSDocumentRepo().FindByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, docs)

	kept, err := db.MessageRepo().FindByProject(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	err = db.ProjectRepo().Delete(ctx, project.ID)
	assert.True(t, errs.IsNotFound(err))
}

func TestProjectRepo_CountsAndTotals(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)

	totals, err := db.ProjectRepo().Totals(ctx)
	require.NoError(t, err)
	assert.Zero(t, totals.TotalPrice)

	for _, status := range []string{models.StatusDesigning, models.StatusTesting, models.StatusCompleted} {
		p := seedProject(t, db, status)
		s := status
		_, err := db.ProjectRepo().Update(ctx, p.ID, models.ProjectPatch{Status: &s})
		require.NoError(t, err)
	}

	n, err := db.ProjectRepo().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	active, err := db.ProjectRepo().CountByStatus(ctx, models.ActiveStatuses...)
	require.NoError(t, err)
	assert.EqualValues(t, 2, active)

	totals, err = db.ProjectRepo().Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4500.0, totals.TotalPrice)
	assert.Equal(t, 0.0, totals.AmountPaid)
}

func TestProjectRepo_FindPortfolio(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	shown := seedProject(t, db, "Shown")
	seedProject(t, db, "Hidden")

	yes := true
	_, err := db.ProjectRepo().Update(ctx, shown.ID, models.ProjectPatch{IsPortfolio: &yes})
	require.NoError(t, err)

	portfolio, err := db.ProjectRepo().FindPortfolio(ctx)
	require.NoError(t, err)
	require.Len(t, portfolio, 1)
	assert.Equal(t, shown.ID, portfolio[0].ID)
}
