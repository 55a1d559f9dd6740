package database

import (
	"context"
	"errors"

	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"gorm.io/gorm"
)

// ListLimit caps every unpaginated listing. Results beyond it are silently truncated.
const ListLimit = 1000

type Database struct {
	db              *gorm.DB
	userRepo        *UserRepo
	clientRepo      *ClientRepo
	projectRepo     *ProjectRepo
	messageRepo     *MessageRepo
	fileRepo        *FileRepo
	srsDocumentRepo *SRSDocumentRepo
	bookingRepo     *BookingRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:              db,
		userRepo:        NewUserRepo(db),
		clientRepo:      NewClientRepo(db),
		projectRepo:     NewProjectRepo(db),
		messageRepo:     NewMessageRepo(db),
		fileRepo:        NewFileRepo(db),
		srsDocumentRepo: NewSRSDocumentRepo(db),
		bookingRepo:     NewBookingRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ClientRepo() *ClientRepo {
	return d.clientRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}

func (d Database) FileRepo() *FileRepo {
	return d.fileRepo
}

func (d Database) SRSDocumentRepo() *SRSDocumentRepo {
	return d.srsDocumentRepo
}

func (d Database) BookingRepo() *BookingRepo {
	return d.bookingRepo
}

// Migrate creates or updates the tables for every model
func (d Database) Migrate(ctx context.Context) error {
	if err := d.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return errs.NewDatabaseError("migrate", "schema", err)
	}
	return nil
}

// Ping checks the connection is alive
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// lookupError maps a single-record lookup failure onto the API error taxonomy.
func lookupError(entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFound(entity)
	}
	return errs.NewDatabaseError("find", entity, err)
}
