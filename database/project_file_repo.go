package database

import (
	"github.com/sknikt/club-site-backend/errs"
	"github.com/sknikt/club-site-backend/models"
	"gorm.io/gorm"
)

type ProjectFileRepo struct {
	db *gorm.DB
}

func NewProjectFileRepo(db *gorm.DB) *ProjectFileRepo {
	return &ProjectFileRepo{db}
}

// FindByID returns a project file by its ID, or a 404 ApiErr when absent
func (r *ProjectFileRepo) FindByID(id uint) (*models.ProjectFile, error) {
	var file models.ProjectFile
	if err := r.db.First(&file, id).Error; err != nil {
		return nil, errs.FromGorm("File", err)
	}
	return &file, nil
}

// Add inserts a new project file row
func (r *ProjectFileRepo) Add(file *models.ProjectFile) error {
	if file.FilePath == "" {
		return errs.NewMissingRequiredFieldError("file_path")
	}
	if file.ProjectID == 0 {
		return errs.NewMissingRequiredFieldError("project_id")
	}

	if err := r.db.Create(file).Error; err != nil {
		return errs.NewDatabaseError("create", "project file", err)
	}
	return nil
}

// Delete removes a project file row by id
func (r *ProjectFileRepo) Delete(id uint) error {
	if _, err := r.FindByID(id); err != nil {
		return err
	}
	if err := r.db.Delete(&models.ProjectFile{}, id).Error; err != nil {
		return errs.NewDatabaseError("delete", "project file", err)
	}
	return nil
}
