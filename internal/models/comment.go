package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a text comment on a video.
type Comment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Video     primitive.ObjectID `json:"video" bson:"video"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CommentView is a comment as listed under a video.
type CommentView struct {
	ID                   primitive.ObjectID `json:"_id" bson:"_id"`
	Content              string             `json:"content" bson:"content"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy            *UserSummary       `json:"createdBy" bson:"createdBy"`
	LikeCount            int64              `json:"likeCount" bson:"likeCount"`
	IsLikedByCurrentUser bool               `json:"isLikedByCurrentUser" bson:"isLikedByCurrentUser"`
}

// CommentPage is the payload of the video comments endpoint.
type CommentPage struct {
	TotalDocs     int64         `json:"totalDocs"`
	Count         int           `json:"count"`
	Comments      []CommentView `json:"comments"`
	TotalPages    int64         `json:"totalPages"`
	CurrentPage   int64         `json:"currentPage"`
	HasNextPage   bool          `json:"hasNextPage"`
	HasPrevPage   bool          `json:"hasPrevPage"`
	NextPage      *int64        `json:"nextPage"`
	PrevPage      *int64        `json:"prevPage"`
	PagingCounter int64         `json:"pagingCounter"`
}

// NewCommentPage reshapes a generic page into the comments payload.
func NewCommentPage(p *Page[CommentView]) *CommentPage {
	return &CommentPage{
		TotalDocs:     p.TotalDocs,
		Count:         len(p.Docs),
		Comments:      p.Docs,
		TotalPages:    p.TotalPages,
		CurrentPage:   p.Page,
		HasNextPage:   p.HasNextPage,
		HasPrevPage:   p.HasPrevPage,
		NextPage:      p.NextPage,
		PrevPage:      p.PrevPage,
		PagingCounter: p.PagingCounter,
	}
}
