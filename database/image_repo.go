package database

import (
	"github.com/sknikt/club-site-backend/errs"
	"github.com/sknikt/club-site-backend/models"
	"gorm.io/gorm"
)

type ImageRepo struct {
	db *gorm.DB
}

func NewImageRepo(db *gorm.DB) *ImageRepo {
	return &ImageRepo{db}
}

// FindByID returns an image by its ID, or a 404 ApiErr when absent
func (r *ImageRepo) FindByID(id uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, errs.FromGorm("Image", err)
	}
	return &image, nil
}

// FindByEvent returns every image owned by the given event
func (r *ImageRepo) FindByEvent(eventID uint) ([]*models.Image, error) {
	var images []*models.Image
	if err := r.db.Where("event_id = ?", eventID).Find(&images).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "images", err)
	}
	return images, nil
}

// FindByProject returns every image owned by the given project
func (r *ImageRepo) FindByProject(projectID uint) ([]*models.Image, error) {
	var images []*models.Image
	if err := r.db.Where("project_id = ?", projectID).Find(&images).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "images", err)
	}
	return images, nil
}

// Add inserts a new image row. Exactly one of EventID and ProjectID must be
// set; callers construct rows from a models.ImageOwner so this is a guard
// against misuse, not a user-facing validation.
func (r *ImageRepo) Add(image *models.Image) error {
	if image.FilePath == "" {
		return errs.NewMissingRequiredFieldError("file_path")
	}
	if (image.EventID == nil) == (image.ProjectID == nil) {
		return errs.NewBadRequestError("image must reference exactly one of event_id or project_id")
	}

	if err := r.db.Create(image).Error; err != nil {
		return errs.NewDatabaseError("create", "image", err)
	}
	return nil
}

// Delete removes an image row by id
func (r *ImageRepo) Delete(id uint) error {
	if _, err := r.FindByID(id); err != nil {
		return err
	}
	if err := r.db.Delete(&models.Image{}, id).Error; err != nil {
		return errs.NewDatabaseError("delete", "image", err)
	}
	return nil
}
