package dto

import (
	"time"

	"github.com/google/uuid"
)

type CommentRequest struct {
	Content  string     `json:"content" validate:"required,max=2000"`
	ParentID *uuid.UUID `json:"parent_id"`
}

type CommentDTO struct {
	ID             uuid.UUID    `json:"id"`
	Content        string       `json:"content"`
	AuthorID       uuid.UUID    `json:"author_id"`
	AuthorNickname string       `json:"author_nickname"`
	CreatedAt      time.Time    `json:"created_at"`
	Children       []CommentDTO `json:"children"`
}
