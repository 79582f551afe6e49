package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/scoreline/scoreline/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSubmitScoreHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	saved := &models.ScoreDB{ID: 1, PlayerName: "alice", Score: 42, CreatedAt: now}

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockScoreSubmitter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"player_name": "alice", "score": 42}`,
			mockSetup: func(m *MockScoreSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), "alice", int64(42)).
					Return(saved, nil)
			},
			expectedCode: 201,
		},
		{
			name: "success with legacy name field",
			body: `{"name": "alice", "score": 42}`,
			mockSetup: func(m *MockScoreSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), "alice", int64(42)).
					Return(saved, nil)
			},
			expectedCode: 201,
		},
		{
			name: "name is trimmed before storing",
			body: `{"player_name": "  alice  ", "score": 42}`,
			mockSetup: func(m *MockScoreSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), "alice", int64(42)).
					Return(saved, nil)
			},
			expectedCode: 201,
		},
		{
			name: "negative score accepted",
			body: `{"player_name": "alice", "score": -5}`,
			mockSetup: func(m *MockScoreSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), "alice", int64(-5)).
					Return(&models.ScoreDB{ID: 2, PlayerName: "alice", Score: -5, CreatedAt: now}, nil)
			},
			expectedCode: 201,
		},
		{
			name:          "missing score",
			body:          `{"player_name": "alice"}`,
			expectedCode:  400,
			expectedError: "player_name and score are required",
		},
		{
			name:          "missing player_name",
			body:          `{"score": 42}`,
			expectedCode:  400,
			expectedError: "player_name and score are required",
		},
		{
			name:          "null score",
			body:          `{"player_name": "alice", "score": null}`,
			expectedCode:  400,
			expectedError: "player_name and score are required",
		},
		{
			name:          "blank player_name",
			body:          `{"player_name": "   ", "score": 42}`,
			expectedCode:  400,
			expectedError: "player_name must not be empty",
		},
		{
			name:          "player_name too long",
			body:          `{"player_name": "` + strings.Repeat("x", 101) + `", "score": 42}`,
			expectedCode:  400,
			expectedError: "player_name must not exceed 100 characters",
		},
		{
			name:          "float score",
			body:          `{"player_name": "alice", "score": 12.5}`,
			expectedCode:  400,
			expectedError: "score must be an integer",
		},
		{
			name:          "non-numeric score",
			body:          `{"player_name": "alice", "score": "abc"}`,
			expectedCode:  400,
			expectedError: "Invalid request body",
		},
		{
			name:          "invalid json",
			body:          `{invalid json}`,
			expectedCode:  400,
			expectedError: "Invalid request body",
		},
		{
			name: "internal server error",
			body: `{"player_name": "bob", "score": 7}`,
			mockSetup: func(m *MockScoreSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), "bob", int64(7)).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockScoreSubmitter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSubmitScoreHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/submit", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}

			var row models.ScoreDB
			err := json.Unmarshal(rr.Body.Bytes(), &row)
			assert.NoError(t, err)
			assert.Equal(t, "alice", row.PlayerName)
			assert.Greater(t, row.ID, int64(0))
			assert.True(t, row.CreatedAt.Equal(now))
		})
	}
}
