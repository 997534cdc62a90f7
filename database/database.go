package database

import (
	"github.com/sknikt/club-site-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	eventRepo          *EventRepo
	projectRepo        *ProjectRepo
	imageRepo          *ImageRepo
	projectFileRepo    *ProjectFileRepo
	executableFileRepo *ExecutableFileRepo
	groupInfoRepo      *GroupInfoRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		eventRepo:          NewEventRepo(db),
		projectRepo:        NewProjectRepo(db),
		imageRepo:          NewImageRepo(db),
		projectFileRepo:    NewProjectFileRepo(db),
		executableFileRepo: NewExecutableFileRepo(db),
		groupInfoRepo:      NewGroupInfoRepo(db),
	}
}

// Migrate creates or updates the schema for every entity table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Event{},
		&models.Project{},
		&models.Image{},
		&models.ProjectFile{},
		&models.ExecutableFile{},
		&models.GroupInfo{},
	)
}

// Accessor methods for each repository

func (d Database) EventRepo() *EventRepo {
	return d.eventRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ImageRepo() *ImageRepo {
	return d.imageRepo
}

func (d Database) ProjectFileRepo() *ProjectFileRepo {
	return d.projectFileRepo
}

func (d Database) ExecutableFileRepo() *ExecutableFileRepo {
	return d.executableFileRepo
}

func (d Database) GroupInfoRepo() *GroupInfoRepo {
	return d.groupInfoRepo
}
