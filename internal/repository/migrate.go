package repository

import (
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every persisted model.
// Unique constraints declared here back the invariants the services
// rely on (references, codes, one vote per user per review, ...).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&userProfileModel{},
		&authTokenModel{},
		&cityModel{},
		&hotelChainModel{},
		&amenityModel{},
		&hotelModel{},
		&hotelAmenityModel{},
		&hotelImageModel{},
		&roomTypeModel{},
		&roomModel{},
		&roomAmenityModel{},
		&roomImageModel{},
		&bookingModel{},
		&bookingRoomModel{},
		&paymentModel{},
		&reviewModel{},
		&reviewVoteModel{},
		&reviewImageModel{},
		&reviewResponseModel{},
		&siteSettingsModel{},
		&emailTemplateModel{},
		&notificationModel{},
	)
}
