package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/models"
)

func TestToggleSubscriptionHandler(t *testing.T) {
	channel := primitive.NewObjectID()

	tests := []struct {
		name         string
		channel      primitive.ObjectID
		result       *models.SubscriptionToggle
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "subscribe",
			channel:      channel,
			result:       &models.SubscriptionToggle{IsSubscribed: true, Subscription: &models.Subscription{Subscriber: testUser.ID, Channel: channel}},
			expectedCode: http.StatusOK,
			expectedMsg:  "Channel Subscribed successfully",
		},
		{
			name:         "unsubscribe",
			channel:      channel,
			result:       &models.SubscriptionToggle{IsSubscribed: false},
			expectedCode: http.StatusOK,
			expectedMsg:  "Channel Unsubscribed successfully",
		},
		{
			name:         "self",
			channel:      testUser.ID,
			err:          apierror.BadRequest("You cannot subscribe to yourself"),
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "You cannot subscribe to yourself",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockSubscriptionManager(ctrl)
			svc.EXPECT().Toggle(gomock.Any(), testUser.ID, tt.channel).Return(tt.result, tt.err)

			rr := httptest.NewRecorder()
			NewToggleSubscriptionHandler(svc).ServeHTTP(rr, newRequest(http.MethodPost, "/", nil, testUser, map[string]string{"channelId": tt.channel.Hex()}))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMsg, decodeEnvelope(t, rr).Message)
		})
	}
}

func TestSubscriptionListHandlers_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channel := primitive.NewObjectID()
	svc := NewMockSubscriptionManager(ctrl)
	svc.EXPECT().Subscribers(gomock.Any(), channel).Return([]models.Subscriber{}, nil)
	svc.EXPECT().SubscribedChannels(gomock.Any(), testUser.ID).Return([]models.SubscribedChannel{}, nil)

	rr := httptest.NewRecorder()
	NewSubscribersHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, "/", nil, testUser, map[string]string{"channelId": channel.Hex()}))
	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.Equal(t, "No subscribers found", env.Message)
	assert.JSONEq(t, `[]`, string(env.Data))

	rr = httptest.NewRecorder()
	NewSubscribedChannelsHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, "/", nil, testUser, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	env = decodeEnvelope(t, rr)
	assert.Equal(t, "No subscribed channels found", env.Message)
	assert.JSONEq(t, `[]`, string(env.Data))
}
