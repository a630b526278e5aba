package repository

import (
	"gorm.io/gorm"

	"github.com/chatboost/chatboost-server/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByAPIKey(apiKey string) (*model.User, error) {
	var user model.User
	err := r.db.Where("api_key = ?", apiKey).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) UpdateAPIKey(id int64, apiKey string) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Update("api_key", apiKey).Error
}

// UpdatePlan 切换套餐：重算额度并清零已用量，单条 UPDATE 完成
func (r *UserRepository) UpdatePlan(id int64, plan string, messageLimit int) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"plan":          plan,
		"message_limit": messageLimit,
		"messages_used": 0,
	}).Error
}

// IncrementUsage 额度内原子递增，返回是否成功。
// WHERE 条件承担配额检查，零行受影响即额度已满，记录保持不变。
func (r *UserRepository) IncrementUsage(id int64) (bool, error) {
	result := r.db.Model(&model.User{}).
		Where("id = ? AND (message_limit < 0 OR messages_used < message_limit)", id).
		Update("messages_used", gorm.Expr("messages_used + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) ResetUsage(id int64) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Update("messages_used", 0).Error
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
