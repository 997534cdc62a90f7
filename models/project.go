package models

// Project represents a club project with its attached media and downloads
type Project struct {
	ID           uint             `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name         string           `json:"name" db:"name" gorm:"type:text;not null;index"`
	Description  string           `json:"description" db:"description" gorm:"type:text;not null"`
	Technologies string           `json:"technologies" db:"technologies" gorm:"type:text;not null"`
	Year         *int             `json:"year" db:"year"`
	Images       []Image          `json:"images" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Files        []ProjectFile    `json:"files" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Executables  []ExecutableFile `json:"executable" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// ProjectPatch carries a partial update; absent fields keep their prior
// value. Year is the one nullable column, so it is absent-aware: an
// explicit null clears it.
type ProjectPatch struct {
	Name         *string       `json:"name"`
	Description  *string       `json:"description"`
	Technologies *string       `json:"technologies"`
	Year         Optional[int] `json:"year"`
}
