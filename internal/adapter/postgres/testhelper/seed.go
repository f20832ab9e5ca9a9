package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user without a Zoom link.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedZoomUser creates a user with a connected Zoom account whose token
// expires at expiresAt.
func SeedZoomUser(t *testing.T, pool *pgxpool.Pool, expiresAt time.Time) domain.User {
	t.Helper()

	user := SeedUser(t, pool)
	zoomID := "zoom-" + uniqueSuffix()
	_, err := pool.Exec(context.Background(),
		`UPDATE users SET zoom_user_id = $2, zoom_connected = true,
		        zoom_access_token = 'access-' || $2, zoom_refresh_token = 'refresh-' || $2,
		        zoom_token_expires_at = $3
		  WHERE id = $1`,
		user.ID, zoomID, expiresAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedZoomUser: %v", err)
	}
	user.ZoomUserID = &zoomID
	user.ZoomConnected = true
	return user
}

// SeedMeeting creates a Zoom-sourced meeting for userID with a random
// provider meeting ID and the given transcript text.
func SeedMeeting(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, transcript string) domain.Meeting {
	t.Helper()

	zoomID := "8" + uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.Meeting{
		ID:              uuid.New(),
		UserID:          userID,
		ZoomMeetingID:   &zoomID,
		Source:          domain.MeetingSourceZoom,
		Topic:           "Weekly sync " + zoomID,
		StartTime:       now.Add(-time.Hour),
		DurationMinutes: 45,
		TranscriptText:  transcript,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO meetings (id, user_id, zoom_meeting_id, source, topic, start_time, duration_minutes, transcript_text, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.UserID, zoomID, string(m.Source), m.Topic, m.StartTime, m.DurationMinutes, m.TranscriptText, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeeting: %v", err)
	}
	return m
}
