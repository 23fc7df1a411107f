package service

import (
	"testing"

	"github.com/KyryloYefremov/go-blog/database"
	"github.com/KyryloYefremov/go-blog/database/model"
	"github.com/KyryloYefremov/go-blog/util/crypto"

	"github.com/stretchr/testify/assert"
)

func TestRegisterHashesPassword(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	user, err := service.Register("Jane Doe", "jane@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, model.AdminUserId, user.Id)
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, crypto.CheckPasswordHash(user.Password, "password123"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	_, err := service.Register("Jane Doe", "jane@example.com", "password123")
	assert.NoError(t, err)

	_, err = service.Register("Someone Else", "jane@example.com", "otherpassword")
	assert.ErrorIs(t, err, ErrEmailExists)

	var count int64
	database.GetDB().Model(model.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCheckUser(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	registered, err := service.Register("Jane Doe", "jane@example.com", "password123")
	assert.NoError(t, err)

	user, err := service.CheckUser("jane@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, registered.Id, user.Id)

	_, err = service.CheckUser("jane@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = service.CheckUser("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserNotFound(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	_, err := service.GetUser(42)
	assert.True(t, database.IsNotFound(err))
}
