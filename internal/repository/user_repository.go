package repository

import (
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	return duplicateOr(r.db.Create(user).Error)
}

func (r *UserRepository) UpdateUser(user *model.User) error {
	return r.db.Omit("Tags").Save(user).Error
}

func (r *UserRepository) ReplaceTags(user *model.User, tags []model.Tag) error {
	if err := r.db.Model(user).Association("Tags").Replace(tags); err != nil {
		return err
	}
	user.Tags = tags
	return nil
}

func (r *UserRepository) FindUserByID(id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.db.Preload("Tags").First(&u, "id = ?", id).Error
	return &u, err
}

func (r *UserRepository) FindUserByEmail(email string) (*model.User, error) {
	var u model.User
	err := r.db.First(&u, "email = ?", email).Error
	return &u, err
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) ExistsByNickname(nickname string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("nickname = ?", nickname).Count(&count).Error
	return count > 0, err
}
