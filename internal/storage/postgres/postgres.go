package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hopon/internal/config"
	"hopon/internal/models"
	"hopon/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Storage) initSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id          SERIAL PRIMARY KEY,
			name        VARCHAR(100) NOT NULL,
			sport       VARCHAR(50) NOT NULL,
			location    TEXT NOT NULL,
			notes       TEXT,
			max_players INTEGER NOT NULL CHECK (max_players > 0),
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			event_date  TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS event_participants (
			id          SERIAL PRIMARY KEY,
			event_id    INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			player_name VARCHAR(100) NOT NULL,
			team        VARCHAR(20),
			joined_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`

	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	query := `
		INSERT INTO events (name, sport, location, notes, max_players, event_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	var createdAt time.Time
	err := s.DB.QueryRowContext(ctx, query,
		event.Name,
		event.Sport,
		event.Location,
		event.Notes,
		event.MaxPlayers,
		event.EventDate,
	).Scan(&event.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	event.CreatedAt = &createdAt
	event.CurrentPlayers = 0

	return &event, nil
}

func (s *Storage) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	query := `
		SELECT id, name, sport, location, notes, max_players, created_at, event_date
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Sport,
		&event.Location,
		&event.Notes,
		&event.MaxPlayers,
		&event.CreatedAt,
		&event.EventDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	countQuery := `
		SELECT COUNT(*)
		FROM event_participants
		WHERE event_id = $1`

	err = s.DB.QueryRowContext(ctx, countQuery, id).Scan(&event.CurrentPlayers)
	if err != nil {
		return nil, fmt.Errorf("failed to get participant count: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, name, sport, location, notes, max_players, created_at, event_date
		FROM events
		ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Name,
			&event.Sport,
			&event.Location,
			&event.Notes,
			&event.MaxPlayers,
			&event.CreatedAt,
			&event.EventDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		countQuery := `
			SELECT COUNT(*)
			FROM event_participants
			WHERE event_id = $1`

		err = s.DB.QueryRowContext(ctx, countQuery, event.ID).Scan(&event.CurrentPlayers)
		if err != nil {
			return nil, fmt.Errorf("failed to get participant count: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// JoinEvent admits a player into an event. The capacity check and the
// insert run in one transaction with the event row locked, so concurrent
// joins near the capacity boundary serialize instead of overfilling.
func (s *Storage) JoinEvent(ctx context.Context, eventID int, playerName, team string) (*models.Event, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var maxPlayers int
	lockQuery := `
		SELECT max_players
		FROM events
		WHERE id = $1
		FOR UPDATE`

	err = tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&maxPlayers)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to lock event: %w", err)
	}

	var currentPlayers int
	countQuery := `
		SELECT COUNT(*)
		FROM event_participants
		WHERE event_id = $1`

	err = tx.QueryRowContext(ctx, countQuery, eventID).Scan(&currentPlayers)
	if err != nil {
		return nil, fmt.Errorf("failed to get participant count: %w", err)
	}

	if currentPlayers >= maxPlayers {
		return nil, storage.ErrEventFull
	}

	insertQuery := `
		INSERT INTO event_participants (event_id, player_name, team)
		VALUES ($1, $2, $3)`

	_, err = tx.ExecContext(ctx, insertQuery, eventID, playerName, team)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, storage.ErrParticipantConflict
		}
		return nil, fmt.Errorf("failed to add participant: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit join: %w", err)
	}

	return s.GetEvent(ctx, eventID)
}

func (s *Storage) GetEventWithParticipants(ctx context.Context, eventID int) (*models.Event, []models.Participant, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	query := `
		SELECT id, event_id, player_name, team, joined_at
		FROM event_participants
		WHERE event_id = $1
		ORDER BY joined_at ASC, id ASC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var participant models.Participant
		err = rows.Scan(
			&participant.ID,
			&participant.EventID,
			&participant.PlayerName,
			&participant.Team,
			&participant.JoinedAt,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, participant)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating participants: %w", err)
	}

	return event, participants, nil
}
