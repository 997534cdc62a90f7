package models

// ProjectFile is a downloadable source archive attached to a project
type ProjectFile struct {
	ID        uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	FilePath  string `json:"file_path" db:"file_path" gorm:"type:text;not null"`
	ProjectID uint   `json:"project_id" db:"project_id" gorm:"not null;index"`
}
