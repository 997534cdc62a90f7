package models

// GroupInfo is the singleton "about us" record; at most one row ever exists.
type GroupInfo struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" db:"name" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text;not null"`
	Contact     string `json:"contact" db:"contact" gorm:"type:text;not null"`
}

// GroupInfoPatch carries a partial update; nil fields keep their prior value
type GroupInfoPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Contact     *string `json:"contact"`
}
