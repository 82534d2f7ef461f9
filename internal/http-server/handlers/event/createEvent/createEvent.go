package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"hopon/internal/lib/api/response"
	"hopon/internal/lib/logger/sl"
	"hopon/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Name       string     `json:"name" validate:"required"`
	Sport      string     `json:"sport" validate:"required"`
	Location   string     `json:"location" validate:"required"`
	Notes      *string    `json:"notes,omitempty"`
	MaxPlayers int        `json:"max_players" validate:"required,gt=0"`
	EventDate  *time.Time `json:"event_date,omitempty"`
}

type EventResponse struct {
	Message string        `json:"message"`
	Event   *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, event models.Event) (*models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
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

		event, err := creator.CreateEvent(r.Context(), models.Event{
			Name:       req.Name,
			Sport:      req.Sport,
			Location:   req.Location,
			Notes:      req.Notes,
			MaxPlayers: req.MaxPlayers,
			EventDate:  req.EventDate,
		})
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		log.Info("event created", slog.Int("id", event.ID))

		responseCreated(w, r, event)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Message: "Event created successfully",
		Event:   event,
	})
}
