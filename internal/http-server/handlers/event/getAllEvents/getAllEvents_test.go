package getAllEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hopon/internal/http-server/handlers/event/getAllEvents/mocks"
	"hopon/internal/lib/logger/handlers/slogdiscard"
	"hopon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	older := time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)

	events := []models.Event{
		{
			ID:             2,
			Name:           "Sunday Hoops",
			Sport:          "basketball",
			Location:       "court 2",
			MaxPlayers:     6,
			CurrentPlayers: 4,
			CreatedAt:      &newer,
		},
		{
			ID:             1,
			Name:           "Friday Football",
			Sport:          "football",
			Location:       "https://maps.example.com/pitch-4",
			MaxPlayers:     10,
			CurrentPlayers: 0,
			CreatedAt:      &older,
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.EventsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(events, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var got []models.Event
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got, 2)
				assert.Equal(t, 2, got[0].ID, "most recent event first")
				assert.Equal(t, 1, got[1].ID)
				assert.Equal(t, 4, got[0].CurrentPlayers)
			},
		},
		{
			name: "Empty list",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `[]`, string(body), "empty list must encode as [], not null")
			},
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"failed to get events"}`, string(body))
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/events", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.Bytes())
		})
	}
}
