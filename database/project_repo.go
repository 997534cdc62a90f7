package database

import (
	"github.com/sknikt/club-site-backend/errs"
	"github.com/sknikt/club-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns projects with their images, files and executables,
// bounded by offset and limit
func (r *ProjectRepo) FindAll(offset, limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Preload("Images").
		Preload("Files").
		Preload("Executables").
		Offset(offset).Limit(limit).
		Find(&projects).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	for _, project := range projects {
		normalizeProject(project)
	}
	return projects, nil
}

// FindByID returns a project by its ID, or a 404 ApiErr when absent
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Images").
		Preload("Files").
		Preload("Executables").
		First(&project, id).Error
	if err != nil {
		return nil, errs.FromGorm("Project", err)
	}
	normalizeProject(&project)
	return &project, nil
}

// Add validates required fields and inserts a new project
func (r *ProjectRepo) Add(project *models.Project) error {
	if project.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if project.Description == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	if project.Technologies == "" {
		return errs.NewMissingRequiredFieldError("technologies")
	}

	if err := r.db.Create(project).Error; err != nil {
		return errs.NewDatabaseError("create", "project", err)
	}
	return nil
}

// ApplyPatch overwrites only the fields the patch carries and returns the
// updated project. Absent fields keep their prior value.
func (r *ProjectRepo) ApplyPatch(id uint, patch models.ProjectPatch) (*models.Project, error) {
	if _, err := r.FindByID(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, errs.NewInvalidFieldError("name", "must not be empty")
		}
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Technologies != nil {
		updates["technologies"] = *patch.Technologies
	}
	if patch.Year.Set {
		if patch.Year.Valid {
			updates["year"] = patch.Year.Value
		} else {
			updates["year"] = nil
		}
	}

	if len(updates) > 0 {
		if err := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, errs.NewDatabaseError("update", "project", err)
		}
	}

	return r.FindByID(id)
}

// Delete removes a project together with its image, file and executable
// rows. Blobs belonging to those child rows stay on disk; cleaning them is
// an out-of-band concern.
func (r *ProjectRepo) Delete(id uint) error {
	if _, err := r.FindByID(id); err != nil {
		return err
	}
	if err := r.db.Select(clause.Associations).Delete(&models.Project{ID: id}).Error; err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}
	return nil
}

func normalizeProject(project *models.Project) {
	if project.Images == nil {
		project.Images = []models.Image{}
	}
	if project.Files == nil {
		project.Files = []models.ProjectFile{}
	}
	if project.Executables == nil {
		project.Executables = []models.ExecutableFile{}
	}
}
