package model

// AdminUserId is the single user id with elevated privileges. The first
// registered user becomes the site administrator.
const AdminUserId = 1

type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
}

// IsAdmin reports whether the user holds the admin identity.
func (u *User) IsAdmin() bool {
	return u != nil && u.Id == AdminUserId
}

type Post struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	AuthorId int    `json:"-"`
	Author   *User  `json:"author" gorm:"foreignKey:AuthorId"`
	Title    string `json:"title" gorm:"unique"`
	Subtitle string `json:"subtitle"`
	Date     string `json:"date"`
	Body     string `json:"body"`
	ImgUrl   string `json:"imgUrl"`
}

func (Post) TableName() string {
	return "blog_posts"
}

type Comment struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	AuthorId int    `json:"-"`
	Author   *User  `json:"author" gorm:"foreignKey:AuthorId"`
	PostId   int    `json:"-"`
	Text     string `json:"text"`
}
