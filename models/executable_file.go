package models

// Platform is the closed set of targets an executable can be built for.
type Platform string

const (
	PlatformWindows Platform = "Windows"
	PlatformLinux   Platform = "Linux"
	PlatformMacOS   Platform = "MacOS"
)

// AllPlatforms lists every accepted platform value, in declaration order.
func AllPlatforms() []Platform {
	return []Platform{PlatformWindows, PlatformLinux, PlatformMacOS}
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformWindows, PlatformLinux, PlatformMacOS:
		return true
	}
	return false
}

// ExecutableFile is a downloadable build of a project for one platform
type ExecutableFile struct {
	ID        uint     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	FilePath  string   `json:"file_path" db:"file_path" gorm:"type:text;not null"`
	Version   string   `json:"version" db:"version" gorm:"type:text;not null"`
	Platform  Platform `json:"platform" db:"platform" gorm:"type:text;not null"`
	ProjectID uint     `json:"project_id" db:"project_id" gorm:"not null;index"`
}
