package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account and, at the same time, a channel.
type User struct {
	ID            primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	UserName      string               `json:"userName" bson:"userName"`
	Email         string               `json:"email" bson:"email"`
	FullName      string               `json:"fullName" bson:"fullName"`
	Avatar        string               `json:"avatar" bson:"avatar"`
	AvatarKey     string               `json:"-" bson:"avatarKey,omitempty"`
	CoverImage    string               `json:"coverImage" bson:"coverImage"`
	CoverImageKey string               `json:"-" bson:"coverImageKey,omitempty"`
	WatchHistory  []primitive.ObjectID `json:"watchHistory" bson:"watchHistory"`
	Password      string               `json:"-" bson:"password"`
	RefreshToken  string               `json:"-" bson:"refreshToken,omitempty"`
	CreatedAt     time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// Sanitized returns a copy without credentials, safe to attach to a request.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Password = ""
	cp.RefreshToken = ""
	return &cp
}

// UserSummary is the small public profile embedded in joined documents.
type UserSummary struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	UserName string             `json:"userName" bson:"userName"`
	FullName string             `json:"fullName" bson:"fullName"`
	Avatar   string             `json:"avatar" bson:"avatar"`
}

// ChannelProfile is the public view of a channel.
type ChannelProfile struct {
	ID                        primitive.ObjectID `json:"_id" bson:"_id"`
	UserName                  string             `json:"userName" bson:"userName"`
	FullName                  string             `json:"fullName" bson:"fullName"`
	Avatar                    string             `json:"avatar" bson:"avatar"`
	CoverImage                string             `json:"coverImage" bson:"coverImage"`
	SubscribersCount          int64              `json:"subscribersCount" bson:"subscribersCount"`
	ChannelsSubscribedToCount int64              `json:"channelsSubscribedToCount" bson:"channelsSubscribedToCount"`
	IsSubscribed              bool               `json:"isSubscribed" bson:"isSubscribed"`
	CreatedAt                 time.Time          `json:"createdAt" bson:"createdAt"`
}

// AuthTokens is an access/refresh pair.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	User *User `json:"user"`
	AuthTokens
}
