package models

import "time"

// Post is a stored publication.
// @Description Publication of a user
type Post struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement:false" example:"1"`
	AuthorID    int64     `json:"authorId" gorm:"not null;index" example:"1"`
	Description string    `json:"description" gorm:"not null" example:"my cat is sleeping"`
	PostDate    time.Time `json:"postDate" gorm:"not null;index" example:"2024-03-15T14:30:00Z"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	AuthorID    int64  `json:"authorId" example:"1"`
	Description string `json:"description" example:"my cat is sleeping"`
}

// UpdatePostRequest is the body of PUT /posts. Only the description can change.
type UpdatePostRequest struct {
	ID          *int64  `json:"id" example:"1"`
	Description *string `json:"description" example:"my cat woke up"`
}

func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
