package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeTargetKind names the collection a like points at.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

// ErrInvalidLikeTarget is returned when a like document does not point at exactly one target.
var ErrInvalidLikeTarget = errors.New("like must reference exactly one of video, comment or tweet")

// LikeTarget is what a like points at: a video, a comment or a tweet.
type LikeTarget struct {
	Kind LikeTargetKind
	ID   primitive.ObjectID
}

func VideoTarget(id primitive.ObjectID) LikeTarget   { return LikeTarget{Kind: LikeTargetVideo, ID: id} }
func CommentTarget(id primitive.ObjectID) LikeTarget { return LikeTarget{Kind: LikeTargetComment, ID: id} }
func TweetTarget(id primitive.ObjectID) LikeTarget   { return LikeTarget{Kind: LikeTargetTweet, ID: id} }

// Field is the document field holding the target id.
func (t LikeTarget) Field() string {
	return string(t.Kind)
}

// Valid reports whether the kind is known and the id set.
func (t LikeTarget) Valid() bool {
	switch t.Kind {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return !t.ID.IsZero()
	}
	return false
}

// Like records that a user liked one target.
type Like struct {
	ID        primitive.ObjectID
	LikedBy   primitive.ObjectID
	Target    LikeTarget
	CreatedAt time.Time
	UpdatedAt time.Time
}

// likeDocument is the stored shape; exactly one target pointer is non-nil.
type likeDocument struct {
	ID        primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	LikedBy   primitive.ObjectID  `json:"likedBy" bson:"likedBy"`
	Video     *primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty"`
	Comment   *primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	Tweet     *primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
}

func (l Like) document() (likeDocument, error) {
	if !l.Target.Valid() {
		return likeDocument{}, ErrInvalidLikeTarget
	}
	doc := likeDocument{
		ID:        l.ID,
		LikedBy:   l.LikedBy,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	id := l.Target.ID
	switch l.Target.Kind {
	case LikeTargetVideo:
		doc.Video = &id
	case LikeTargetComment:
		doc.Comment = &id
	case LikeTargetTweet:
		doc.Tweet = &id
	}
	return doc, nil
}

func (d likeDocument) like() (Like, error) {
	l := Like{ID: d.ID, LikedBy: d.LikedBy, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
	set := 0
	if d.Video != nil {
		l.Target, set = VideoTarget(*d.Video), set+1
	}
	if d.Comment != nil {
		l.Target, set = CommentTarget(*d.Comment), set+1
	}
	if d.Tweet != nil {
		l.Target, set = TweetTarget(*d.Tweet), set+1
	}
	if set != 1 {
		return Like{}, fmt.Errorf("like %s: %w", d.ID.Hex(), ErrInvalidLikeTarget)
	}
	return l, nil
}

// MarshalBSON stores the target in its own field.
func (l Like) MarshalBSON() ([]byte, error) {
	doc, err := l.document()
	if err != nil {
		return nil, err
	}
	return bson.Marshal(doc)
}

// UnmarshalBSON rejects documents with zero or several targets.
func (l *Like) UnmarshalBSON(data []byte) error {
	var doc likeDocument
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}
	parsed, err := doc.like()
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalJSON renders the same shape clients see for stored likes.
func (l Like) MarshalJSON() ([]byte, error) {
	doc, err := l.document()
	if err != nil {
		return nil, err
	}
	return jsonMarshal(doc)
}

// LikeToggle reports the state after a toggle.
type LikeToggle struct {
	IsLiked bool  `json:"isLiked"`
	Like    *Like `json:"like,omitempty"`
}
