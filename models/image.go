package models

// Image is a gallery picture owned by exactly one event or one project.
type Image struct {
	ID        uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	FilePath  string `json:"file_path" db:"file_path" gorm:"type:text;not null;index"`
	EventID   *uint  `json:"event_id" db:"event_id" gorm:"index"`
	ProjectID *uint  `json:"project_id" db:"project_id" gorm:"index"`
}

// OwnerKind discriminates the parent side of an image.
type OwnerKind string

const (
	OwnerEvent   OwnerKind = "event"
	OwnerProject OwnerKind = "project"
)

// ImageOwner names the single parent an image belongs to. Constructing one
// through EventOwner or ProjectOwner rules out the both/neither ambiguity
// that optional ids would allow.
type ImageOwner struct {
	Kind OwnerKind
	ID   uint
}

func EventOwner(id uint) ImageOwner {
	return ImageOwner{Kind: OwnerEvent, ID: id}
}

func ProjectOwner(id uint) ImageOwner {
	return ImageOwner{Kind: OwnerProject, ID: id}
}
