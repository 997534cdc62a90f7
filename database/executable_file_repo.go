package database

import (
	"fmt"

	"github.com/sknikt/club-site-backend/errs"
	"github.com/sknikt/club-site-backend/models"
	"gorm.io/gorm"
)

type ExecutableFileRepo struct {
	db *gorm.DB
}

func NewExecutableFileRepo(db *gorm.DB) *ExecutableFileRepo {
	return &ExecutableFileRepo{db}
}

// FindByID returns an executable by its ID, or a 404 ApiErr when absent
func (r *ExecutableFileRepo) FindByID(id uint) (*models.ExecutableFile, error) {
	var exe models.ExecutableFile
	if err := r.db.First(&exe, id).Error; err != nil {
		return nil, errs.FromGorm("Executable", err)
	}
	return &exe, nil
}

// Add validates required fields, checks the platform against the closed
// set, and inserts a new executable row
func (r *ExecutableFileRepo) Add(exe *models.ExecutableFile) error {
	if exe.FilePath == "" {
		return errs.NewMissingRequiredFieldError("file_path")
	}
	if exe.Version == "" {
		return errs.NewMissingRequiredFieldError("version")
	}
	if exe.ProjectID == 0 {
		return errs.NewMissingRequiredFieldError("project_id")
	}
	if !exe.Platform.Valid() {
		return errs.NewBadRequestError(fmt.Sprintf("Invalid platform. Choose: %v", models.AllPlatforms()))
	}

	if err := r.db.Create(exe).Error; err != nil {
		return errs.NewDatabaseError("create", "executable", err)
	}
	return nil
}

// Delete removes an executable row by id
func (r *ExecutableFileRepo) Delete(id uint) error {
	if _, err := r.FindByID(id); err != nil {
		return err
	}
	if err := r.db.Delete(&models.ExecutableFile{}, id).Error; err != nil {
		return errs.NewDatabaseError("delete", "executable", err)
	}
	return nil
}
