package joinEvent

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
	"github.com/go-playground/validator/v10"
)

// DefaultTeam is assigned when a join request carries no team label.
const DefaultTeam = "team_a"

type JoinRequest struct {
	PlayerName string `json:"player_name" validate:"required"`
	Team       string `json:"team,omitempty"`
}

type JoinResponse struct {
	Message string        `json:"message"`
	Event   *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventJoiner
type EventJoiner interface {
	JoinEvent(ctx context.Context, eventID int, playerName, team string) (*models.Event, error)
}

func New(log *slog.Logger, joiner EventJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.joinEvent.New"

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

		var req JoinRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		team := req.Team
		if team == "" {
			team = DefaultTeam
		}

		event, err := joiner.JoinEvent(r.Context(), eventID, req.PlayerName, team)
		if err != nil {
			log.Error("failed to join event", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrEventFull):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is full"))
			case errors.Is(err, storage.ErrParticipantConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("participant already registered"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to join event"))
			}

			return
		}

		log.Info("player joined event", slog.String("player_name", req.PlayerName))

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.JSON(w, r, JoinResponse{
		Message: "Successfully joined event",
		Event:   event,
	})
}
