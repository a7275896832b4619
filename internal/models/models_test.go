package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int64
		limit      int64
		totalPages int64
		hasNext    bool
		hasPrev    bool
		counter    int64
	}{
		{"first of three", 25, 1, 10, 3, true, false, 1},
		{"last of three", 25, 3, 10, 3, false, true, 21},
		{"empty", 0, 1, 10, 1, false, false, 1},
		{"exact fit", 20, 2, 10, 2, false, true, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage[int](nil, tt.total, tt.page, tt.limit)
			assert.NotNil(t, p.Docs)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasNext, p.HasNextPage)
			assert.Equal(t, tt.hasPrev, p.HasPrevPage)
			assert.Equal(t, tt.counter, p.PagingCounter)
			if tt.hasNext {
				require.NotNil(t, p.NextPage)
				assert.Equal(t, tt.page+1, *p.NextPage)
			} else {
				assert.Nil(t, p.NextPage)
			}
		})
	}
}

func TestLike_BSONStoresSingleTarget(t *testing.T) {
	like := Like{
		ID:      primitive.NewObjectID(),
		LikedBy: primitive.NewObjectID(),
		Target:  CommentTarget(primitive.NewObjectID()),
	}

	raw, err := bson.Marshal(like)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, like.Target.ID, doc["comment"])
	assert.NotContains(t, doc, "video")
	assert.NotContains(t, doc, "tweet")

	var back Like
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, like.Target, back.Target)
	assert.Equal(t, like.LikedBy, back.LikedBy)
}

func TestLike_RejectsAmbiguousDocuments(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"likedBy": primitive.NewObjectID(),
		"video":   primitive.NewObjectID(),
		"comment": primitive.NewObjectID(),
	})
	require.NoError(t, err)

	var like Like
	assert.ErrorIs(t, bson.Unmarshal(raw, &like), ErrInvalidLikeTarget)

	_, err = bson.Marshal(Like{LikedBy: primitive.NewObjectID()})
	assert.Error(t, err)
}

func TestUser_JSONHidesCredentials(t *testing.T) {
	u := User{UserName: "alice", Password: "hash", RefreshToken: "rt", AvatarKey: "k"}

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.NotContains(t, string(raw), "refreshToken")
	assert.NotContains(t, string(raw), "avatarKey")

	s := u.Sanitized()
	assert.Empty(t, s.Password)
	assert.Empty(t, s.RefreshToken)
	assert.Equal(t, "hash", u.Password)
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(404, "Video not found", nil)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"statusCode":404,"message":"Video not found","success":false,"errors":[]}`, string(raw))

	ok := NewApiResponse(201, map[string]int{"a": 1}, "")
	assert.True(t, ok.Success)
	assert.Equal(t, "Success", ok.Message)
}
