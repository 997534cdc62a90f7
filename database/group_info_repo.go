package database

import (
	"errors"

	"github.com/sknikt/club-site-backend/errs"
	"github.com/sknikt/club-site-backend/models"
	"gorm.io/gorm"
)

type GroupInfoRepo struct {
	db *gorm.DB
}

func NewGroupInfoRepo(db *gorm.DB) *GroupInfoRepo {
	return &GroupInfoRepo{db}
}

// Get returns the singleton record, or a 404 ApiErr when none exists yet
func (r *GroupInfoRepo) Get() (*models.GroupInfo, error) {
	var info models.GroupInfo
	if err := r.db.First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("Group info not found")
		}
		return nil, errs.NewDatabaseError("query", "group info", err)
	}
	return &info, nil
}

// Add inserts the singleton record after checking none exists. The check
// and the insert share one transaction; once a create has committed, every
// later create fails with a conflict. There is no unique-index guard, so
// truly concurrent creates are not serialized.
func (r *GroupInfoRepo) Add(info *models.GroupInfo) error {
	if info.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if info.Description == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	if info.Contact == "" {
		return errs.NewMissingRequiredFieldError("contact")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.GroupInfo{}).Count(&count).Error; err != nil {
			return errs.NewDatabaseError("count", "group info", err)
		}
		if count > 0 {
			return errs.NewConflictError("Group info already exists, please update it.")
		}
		if err := tx.Create(info).Error; err != nil {
			return errs.NewDatabaseError("create", "group info", err)
		}
		return nil
	})
}

// ApplyPatch overwrites only the fields the patch carries and returns the
// updated record. Fails with 404 when the record was never created.
func (r *GroupInfoRepo) ApplyPatch(patch models.GroupInfoPatch) (*models.GroupInfo, error) {
	info, err := r.Get()
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, errs.NewNotFoundError("Group info not found, please create it first.")
		}
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
	if patch.Contact != nil {
		updates["contact"] = *patch.Contact
	}

	if len(updates) > 0 {
		if err := r.db.Model(&models.GroupInfo{}).Where("id = ?", info.ID).Updates(updates).Error; err != nil {
			return nil, errs.NewDatabaseError("update", "group info", err)
		}
	}

	return r.Get()
}
