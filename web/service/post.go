package service

import (
	"time"

	"github.com/KyryloYefremov/go-blog/database"
	"github.com/KyryloYefremov/go-blog/database/model"

	"gorm.io/gorm"
)

// dateFormat renders creation dates as display strings, e.g. "April 05, 2024".
const dateFormat = "January 02, 2006"

type PostService struct{}

func (s *PostService) GetPosts() ([]*model.Post, error) {
	db := database.GetDB()

	var posts []*model.Post
	err := db.Model(model.Post{}).
		Preload("Author").
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) GetPost(id int) (*model.Post, error) {
	db := database.GetDB()

	post := &model.Post{}
	err := db.Model(model.Post{}).
		Preload("Author").
		Where("id = ?", id).
		First(post).
		Error
	if err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePost inserts a new post authored by authorId. The creation date
// is stamped with the current calendar date as a display string.
func (s *PostService) CreatePost(title, subtitle, body, imgUrl string, authorId int) (*model.Post, error) {
	db := database.GetDB()

	post := &model.Post{
		AuthorId: authorId,
		Title:    title,
		Subtitle: subtitle,
		Date:     time.Now().Format(dateFormat),
		Body:     body,
		ImgUrl:   imgUrl,
	}
	if err := db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost overwrites the post's editable fields. The original
// creation date is kept as-is.
func (s *PostService) UpdatePost(post *model.Post) error {
	db := database.GetDB()
	return db.Model(model.Post{}).
		Where("id = ?", post.Id).
		Updates(map[string]any{
			"title":     post.Title,
			"subtitle":  post.Subtitle,
			"body":      post.Body,
			"img_url":   post.ImgUrl,
			"author_id": post.AuthorId,
		}).
		Error
}

// DeletePost removes the post together with its comments in one
// transaction, so no comment is left referencing a dead post.
func (s *PostService) DeletePost(id int) error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}
