package model

import (
	"time"
)

// AdminUser 后台管理员账户，登录凭据为企业邮箱 + 密码
type AdminUser struct {
	ID        uint64 `gorm:"primaryKey"`
	Email     string `gorm:"type:varchar(120);uniqueIndex:idx_email"`
	Password  string `gorm:"type:varchar(255)"`
	Role      string `gorm:"type:varchar(30);default:'ADMIN'"`
	IsActive  bool   `gorm:"type:tinyint(1);default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AdminUser) TableName() string {
	return "admin_users"
}
