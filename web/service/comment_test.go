package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddCommentLinksUserAndPost(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	postService := PostService{}
	service := CommentService{}

	author, _ := userService.Register("Jane Doe", "jane@example.com", "password123")
	commenter, _ := userService.Register("John Roe", "john@example.com", "password456")
	post, err := postService.CreatePost("First Post", "one", "body", "https://example.com/1.jpg", author.Id)
	assert.NoError(t, err)

	comment, err := service.AddComment("Nice post!", commenter.Id, post.Id)
	assert.NoError(t, err)

	comments, err := service.GetComments(post.Id)
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, comment.Id, comments[0].Id)
	assert.Equal(t, "Nice post!", comments[0].Text)
	assert.Equal(t, commenter.Id, comments[0].AuthorId)
	assert.Equal(t, "John Roe", comments[0].Author.Name)
}
