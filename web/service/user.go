package service

import (
	"errors"

	"github.com/KyryloYefremov/go-blog/database"
	"github.com/KyryloYefremov/go-blog/database/model"
	"github.com/KyryloYefremov/go-blog/logger"
	"github.com/KyryloYefremov/go-blog/util/crypto"
)

var (
	ErrEmailExists   = errors.New("a user with this email already exists")
	ErrUserNotFound  = errors.New("no user with this email")
	ErrWrongPassword = errors.New("password does not match")
)

type UserService struct{}

func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(email string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates a new user with a hashed password. A duplicate email,
// whether found up front or raised by the unique constraint in a race,
// yields ErrEmailExists and leaves the table unchanged.
func (s *UserService) Register(name string, email string, password string) (*model.User, error) {
	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).
		Where("email = ?", email).
		Count(&count).
		Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailExists
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
	if err := db.Create(user).Error; err != nil {
		if database.IsDuplicate(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// CheckUser verifies the credentials for a login attempt. The returned
// error distinguishes an unknown email from a wrong password so the
// handler can flash the matching message.
func (s *UserService) CheckUser(email string, password string) (*model.User, error) {
	user, err := s.GetUserByEmail(email)
	if database.IsNotFound(err) {
		return nil, ErrUserNotFound
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrWrongPassword
	}
	return user, nil
}
