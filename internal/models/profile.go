package models

import "time"

type Profile struct {
	ID                 uint                 `gorm:"primaryKey" json:"-"`
	UserID             uint                 `gorm:"not null;uniqueIndex" json:"user_id"`
	LegacyTemplate     LegacyWeeklyTemplate `gorm:"column:legacy_template;serializer:lenientjson" json:"legacy_template,omitempty"`
	WeekBlocks         []WeekBlock          `gorm:"column:week_blocks;serializer:lenientjson" json:"week_blocks"`
	DietaryPreferences []string             `gorm:"serializer:lenientjson" json:"dietary_preferences"`
	Allergens          []string             `gorm:"serializer:lenientjson" json:"allergens"`
	Version            int                  `gorm:"not null;default:0" json:"version"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}
