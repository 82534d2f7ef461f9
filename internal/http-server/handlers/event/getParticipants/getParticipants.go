package getParticipants

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"hopon/internal/lib/api/response"
	"hopon/internal/lib/logger/sl"
	"hopon/internal/models"
	"hopon/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ParticipantsResponse struct {
	Event        *models.Event        `json:"event"`
	Participants []models.Participant `json:"participants"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantsGetter
type ParticipantsGetter interface {
	GetEventWithParticipants(ctx context.Context, eventID int) (*models.Event, []models.Participant, error)
}

func New(log *slog.Logger, getter ParticipantsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getParticipants.New"

		log = log.With(slog.String("op", op))

		eventIDStr := chi.URLParam(r, "id")
		if eventIDStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIDStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		event, participants, err := getter.GetEventWithParticipants(r.Context(), eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get participants", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get participants"))
			return
		}

		log.Info("participants retrieved successfully", slog.Int("count", len(participants)))

		if participants == nil {
			participants = []models.Participant{}
		}

		render.JSON(w, r, ParticipantsResponse{
			Event:        event,
			Participants: participants,
		})
	}
}
