package mysql

import (
	"gorm.io/gorm"

	"github.com/Guyuepp/bloglist/internal/repository/mysql/model"
)

// AutoMigrate creates or updates the blogs and users tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Blog{})
}
