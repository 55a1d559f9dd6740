package services

import (
	"context"

	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"golang.org/x/sync/errgroup"
)

// SharedProject is everything a share-link holder may see.
type SharedProject struct {
	Project      models.PublicProject  `json:"project"`
	Client       *models.Client        `json:"client"`
	Messages     []*models.Message     `json:"messages"`
	Files        []*models.FileUpload  `json:"files"`
	SRSDocuments []*models.SRSDocument `json:"srs_documents"`
}

type ShareResolver struct {
	db database.Database
}

func NewShareResolver(db database.Database) *ShareResolver {
	return &ShareResolver{db: db}
}

// ResolveByShareLink loads a project by its share token along with its client,
// messages, files and SRS documents. The share link itself is never returned.
func (s *ShareResolver) ResolveByShareLink(ctx context.Context, shareLink string) (*SharedProject, error) {
	if shareLink == "" {
		return nil, errs.NewNotFound("project")
	}
	project, err := s.db.ProjectRepo().FindByShareLink(ctx, shareLink)
	if err != nil {
		return nil, err
	}

	shared := &SharedProject{Project: project.Public()}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		client, err := s.db.ClientRepo().FindByID(gctx, project.ClientID)
		if errs.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		shared.Client = client
		return nil
	})
	g.Go(func() (err error) {
		shared.Messages, err = s.db.MessageRepo().FindByProject(gctx, project.ID)
		return err
	})
	g.Go(func() (err error) {
		shared.Files, err = s.db.FileRepo().FindByProject(gctx, project.ID)
		return err
	})
	g.Go(func() (err error) {
		shared.SRSDocuments, err = s.db.SRSDocumentRepo().FindByProject(gctx, project.ID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return shared, nil
}

// Portfolio lists the projects flagged for public display.
func (s *ShareResolver) Portfolio(ctx context.Context) ([]models.PublicProject, error) {
	projects, err := s.db.ProjectRepo().FindPortfolio(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicProject, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Public())
	}
	return out, nil
}
