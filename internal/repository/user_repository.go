package repository

import (
	"github.com/ekremtasci/testportal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(id uuid.UUID) (*model.User, error)
	FindStudentsByIDs(ids []uuid.UUID) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindStudentsByIDs(ids []uuid.UUID) ([]model.User, error) {
	var users []model.User
	err := r.db.Where("id IN ? AND role = ?", ids, model.RoleStudent).Find(&users).Error
	return users, err
}
