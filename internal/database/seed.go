package database

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chatboost/chatboost-server/internal/model"
)

// SeedDemoUsers 写入演示账号，仅在 debug 模式下调用。已存在则跳过
func SeedDemoUsers(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	demoKey := "cb_demo_key_123456"
	users := []model.User{
		{
			Name:         "Demo User",
			Email:        "demo@example.com",
			PasswordHash: string(hash),
			Plan:         model.PlanFree,
			MessagesUsed: 5,
			MessageLimit: 10,
			APIKey:       &demoKey,
		},
		{
			Name:         "Premium User",
			Email:        "premium@example.com",
			PasswordHash: string(hash),
			Plan:         model.PlanIndividual,
			MessagesUsed: 8,
			MessageLimit: 15,
		},
	}

	for i := range users {
		var existing model.User
		err := db.Where("email = ?", users[i].Email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&users[i]).Error; err != nil {
			return err
		}
		log.Printf("Seeded demo user: %s", users[i].Email)
	}

	return nil
}
