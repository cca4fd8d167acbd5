package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for all persisted tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&venueModel{},
		&reservationModel{},
		&paymentModel{},
		&notificationModel{},
	)
}
