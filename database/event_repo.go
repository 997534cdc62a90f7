package database

import (
	"github.com/sknikt/club-site-backend/errs"
	"github.com/sknikt/club-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db}
}

// FindAll returns events with their images, bounded by offset and limit
func (r *EventRepo) FindAll(offset, limit int) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.Preload("Images").Offset(offset).Limit(limit).Find(&events).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "events", err)
	}
	for _, event := range events {
		if event.Images == nil {
			event.Images = []models.Image{}
		}
	}
	return events, nil
}

// FindByID returns an event by its ID, or a 404 ApiErr when absent
func (r *EventRepo) FindByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.Preload("Images").First(&event, id).Error; err != nil {
		return nil, errs.FromGorm("Event", err)
	}
	if event.Images == nil {
		event.Images = []models.Image{}
	}
	return &event, nil
}

// Add validates required fields and inserts a new event
func (r *EventRepo) Add(event *models.Event) error {
	if event.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if event.Description == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	if event.Date.IsZero() {
		return errs.NewMissingRequiredFieldError("date")
	}

	if err := r.db.Create(event).Error; err != nil {
		return errs.NewDatabaseError("create", "event", err)
	}
	return nil
}

// ApplyPatch overwrites only the fields the patch carries and returns the
// updated event. Absent fields keep their prior value.
func (r *EventRepo) ApplyPatch(id uint, patch models.EventPatch) (*models.Event, error) {
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
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}

	if len(updates) > 0 {
		if err := r.db.Model(&models.Event{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, errs.NewDatabaseError("update", "event", err)
		}
	}

	return r.FindByID(id)
}

// Delete removes an event and its image rows. The image blobs are not
// purged here; only direct deletes through the attachment manager touch
// the blob store.
func (r *EventRepo) Delete(id uint) error {
	if _, err := r.FindByID(id); err != nil {
		return err
	}
	if err := r.db.Select(clause.Associations).Delete(&models.Event{ID: id}).Error; err != nil {
		return errs.NewDatabaseError("delete", "event", err)
	}
	return nil
}
