package db_models

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	IsAdmin      bool `gorm:"default:false"`
	IsActive     bool `gorm:"default:true"`

	Trips []Trip
}
