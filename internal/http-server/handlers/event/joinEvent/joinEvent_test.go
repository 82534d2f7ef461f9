package joinEvent

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hopon/internal/http-server/handlers/event/joinEvent/mocks"
	"hopon/internal/lib/logger/handlers/slogdiscard"
	"hopon/internal/models"
	"hopon/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestJoinEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	createdAt := time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)

	joinedEvent := &models.Event{
		ID:             1,
		Name:           "Friday Football",
		Sport:          "football",
		Location:       "https://maps.example.com/pitch-4",
		MaxPlayers:     10,
		CurrentPlayers: 1,
		CreatedAt:      &createdAt,
	}

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.EventJoiner)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			eventID:     "1",
			requestBody: `{"player_name": "alice"}`,
			mockSetup: func(m *mocks.EventJoiner) {
				m.On("JoinEvent", mock.Anything, 1, "alice", "team_a").Return(joinedEvent, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"message": "Successfully joined event",
				"event": {
					"id": 1,
					"name": "Friday Football",
					"sport": "football",
					"location": "https://maps.example.com/pitch-4",
					"notes": null,
					"max_players": 10,
					"current_players": 1,
					"created_at": "2024-12-25T18:00:00Z",
					"event_date": null
				}
			}`,
		},
		{
			name:        "Explicit team",
			eventID:     "1",
			requestBody: `{"player_name": "bob", "team": "team_b"}`,
			mockSetup: func(m *mocks.EventJoiner) {
				m.On("JoinEvent", mock.Anything, 1, "bob", "team_b").Return(joinedEvent, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			eventID:        "1",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventJoiner) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"failed to decode request"}`,
		},
		{
			name:           "Missing player_name",
			eventID:        "1",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.EventJoiner) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"error":`)
				assert.Contains(t, body, "PlayerName")
			},
		},
		{
			name:           "Empty player_name",
			eventID:        "1",
			requestBody:    `{"player_name": ""}`,
			mockSetup:      func(m *mocks.EventJoiner) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"error":`)
				assert.Contains(t, body, "PlayerName")
			},
		},
		{
			name:           "Invalid event id",
			eventID:        "abc",
			requestBody:    `{"player_name": "alice"}`,
			mockSetup:      func(m *mocks.EventJoiner) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid event id format"}`,
		},
		{
			name:        "Event not found",
			eventID:     "999",
			requestBody: `{"player_name": "alice"}`,
			mockSetup: func(m *mocks.EventJoiner) {
				m.On("JoinEvent", mock.Anything, 999, "alice", "team_a").
					Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"event not found"}`,
		},
		{
			name:        "Event full",
			eventID:     "1",
			requestBody: `{"player_name": "alice"}`,
			mockSetup: func(m *mocks.EventJoiner) {
				m.On("JoinEvent", mock.Anything, 1, "alice", "team_a").
					Return(nil, storage.ErrEventFull)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"event is full"}`,
		},
		{
			name:        "Participant conflict",
			eventID:     "1",
			requestBody: `{"player_name": "alice"}`,
			mockSetup: func(m *mocks.EventJoiner) {
				m.On("JoinEvent", mock.Anything, 1, "alice", "team_a").
					Return(nil, storage.ErrParticipantConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"participant already registered"}`,
		},
		{
			name:        "Storage error",
			eventID:     "1",
			requestBody: `{"player_name": "alice"}`,
			mockSetup: func(m *mocks.EventJoiner) {
				m.On("JoinEvent", mock.Anything, 1, "alice", "team_a").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to join event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockJoiner := mocks.NewEventJoiner(t)
			tc.mockSetup(mockJoiner)

			handler := New(logger, mockJoiner)

			router := chi.NewRouter()
			router.Post("/events/{id}/join", handler)

			req, err := http.NewRequest("POST", "/events/"+tc.eventID+"/join", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestJoinEventDefaultTeam(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockJoiner := mocks.NewEventJoiner(t)
	handler := New(logger, mockJoiner)

	createdAt := time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)
	mockJoiner.On("JoinEvent", mock.Anything, 5, "carol", DefaultTeam).
		Return(&models.Event{
			ID:             5,
			Name:           "Sunday Hoops",
			Sport:          "basketball",
			Location:       "court 2",
			MaxPlayers:     6,
			CurrentPlayers: 3,
			CreatedAt:      &createdAt,
		}, nil)

	router := chi.NewRouter()
	router.Post("/events/{id}/join", handler)

	req, err := http.NewRequest("POST", "/events/5/join", bytes.NewBufferString(`{"player_name": "carol"}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockJoiner.AssertExpectations(t)
}
