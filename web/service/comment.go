package service

import (
	"github.com/KyryloYefremov/go-blog/database"
	"github.com/KyryloYefremov/go-blog/database/model"
)

type CommentService struct{}

func (s *CommentService) GetComments(postId int) ([]*model.Comment, error) {
	db := database.GetDB()

	var comments []*model.Comment
	err := db.Model(model.Comment{}).
		Preload("Author").
		Where("post_id = ?", postId).
		Find(&comments).
		Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) AddComment(text string, authorId int, postId int) (*model.Comment, error) {
	db := database.GetDB()

	comment := &model.Comment{
		AuthorId: authorId,
		PostId:   postId,
		Text:     text,
	}
	if err := db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
