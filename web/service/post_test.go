package service

import (
	"testing"
	"time"

	"github.com/KyryloYefremov/go-blog/database"

	"github.com/stretchr/testify/assert"
)

func TestPostRoundTrip(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	service := PostService{}

	author, err := userService.Register("Jane Doe", "jane@example.com", "password123")
	assert.NoError(t, err)

	post, err := service.CreatePost(
		"First Post", "A subtitle", "<p>Hello world</p>",
		"https://example.com/cover.jpg", author.Id,
	)
	assert.NoError(t, err)

	got, err := service.GetPost(post.Id)
	assert.NoError(t, err)
	assert.Equal(t, "First Post", got.Title)
	assert.Equal(t, "A subtitle", got.Subtitle)
	assert.Equal(t, "<p>Hello world</p>", got.Body)
	assert.Equal(t, "https://example.com/cover.jpg", got.ImgUrl)
	assert.Equal(t, author.Id, got.AuthorId)
	assert.Equal(t, "Jane Doe", got.Author.Name)

	// Creation date is a display string like "April 05, 2024".
	parsed, err := time.Parse("January 02, 2006", got.Date)
	assert.NoError(t, err)
	assert.Equal(t, time.Now().Year(), parsed.Year())
}

func TestCreatePostDuplicateTitle(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	service := PostService{}

	author, _ := userService.Register("Jane Doe", "jane@example.com", "password123")

	_, err := service.CreatePost("First Post", "one", "body", "https://example.com/1.jpg", author.Id)
	assert.NoError(t, err)

	_, err = service.CreatePost("First Post", "two", "body", "https://example.com/2.jpg", author.Id)
	assert.Error(t, err)
	assert.True(t, database.IsDuplicate(err))
}

func TestUpdatePostKeepsDate(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	service := PostService{}

	author, _ := userService.Register("Jane Doe", "jane@example.com", "password123")
	post, err := service.CreatePost("First Post", "one", "body", "https://example.com/1.jpg", author.Id)
	assert.NoError(t, err)

	post.Title = "Renamed Post"
	post.Subtitle = "updated"
	post.Body = "new body"
	err = service.UpdatePost(post)
	assert.NoError(t, err)

	got, err := service.GetPost(post.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed Post", got.Title)
	assert.Equal(t, "updated", got.Subtitle)
	assert.Equal(t, post.Date, got.Date)
}

func TestDeletePostCascadesComments(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	service := PostService{}
	commentService := CommentService{}

	author, _ := userService.Register("Jane Doe", "jane@example.com", "password123")
	post, err := service.CreatePost("First Post", "one", "body", "https://example.com/1.jpg", author.Id)
	assert.NoError(t, err)

	_, err = commentService.AddComment("Nice post!", author.Id, post.Id)
	assert.NoError(t, err)

	err = service.DeletePost(post.Id)
	assert.NoError(t, err)

	_, err = service.GetPost(post.Id)
	assert.True(t, database.IsNotFound(err))

	comments, err := commentService.GetComments(post.Id)
	assert.NoError(t, err)
	assert.Len(t, comments, 0)
}
