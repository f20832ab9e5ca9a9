package meeting

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/zoom"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

const (
	// syncWindow is the longest range Zoom accepts in one listing.
	syncWindow   = 30 * 24 * time.Hour
	syncPageSize = 300
)

// Sync pulls the caller's recorded Zoom meetings into the store. Meetings
// that already exist are counted and left unchanged.
func (s *Service) Sync(ctx context.Context, input SyncInput) (*SyncResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	to := s.now().UTC()
	if input.To != nil {
		to = input.To.UTC()
	}
	from := to.Add(-defaultSyncRange)
	if input.From != nil {
		from = input.From.UTC()
	}

	token, err := s.tokens.GetValidAccessToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("zoom token: %w", err)
	}

	result := &SyncResult{}
	seen := make(map[string]bool)
	for _, w := range windows(from, to, syncWindow) {
		pageToken := ""
		for {
			page, err := s.zoom.ListMeetings(ctx, token, zoom.ListMeetingsParams{
				From:      w.from,
				To:        w.to,
				PageSize:  syncPageSize,
				PageToken: pageToken,
			})
			if err != nil {
				return nil, fmt.Errorf("list zoom meetings: %w", err)
			}

			for _, zm := range page.Meetings {
				m := fromZoom(userID, zm)
				if m == nil || seen[*m.ZoomMeetingID] {
					continue
				}
				seen[*m.ZoomMeetingID] = true

				created, err := s.meetings.CreateIfAbsent(ctx, m)
				if err != nil {
					return nil, fmt.Errorf("store meeting: %w", err)
				}
				if created {
					result.Created++
				} else {
					result.Existing++
				}
			}

			if page.NextPageToken == "" {
				break
			}
			pageToken = page.NextPageToken
		}
	}
	result.Total = result.Created + result.Existing

	s.log.InfoContext(ctx, "meetings synced",
		slog.String("user_id", userID.String()),
		slog.Time("from", from),
		slog.Time("to", to),
		slog.Int("created", result.Created),
		slog.Int("existing", result.Existing),
	)
	return result, nil
}

type window struct {
	from, to time.Time
}

// windows splits [from, to] into consecutive ranges of at most size.
func windows(from, to time.Time, size time.Duration) []window {
	if !to.After(from) {
		return []window{{from: from, to: to}}
	}
	var out []window
	for start := from; start.Before(to); start = start.Add(size) {
		end := start.Add(size)
		if end.After(to) {
			end = to
		}
		out = append(out, window{from: start, to: end})
	}
	return out
}

func fromZoom(userID uuid.UUID, zm zoom.Meeting) *domain.Meeting {
	zid := zm.UUID
	if zid == "" && zm.ID != 0 {
		zid = strconv.FormatInt(zm.ID, 10)
	}
	if zid == "" {
		return nil
	}
	m := &domain.Meeting{
		UserID:          userID,
		ZoomMeetingID:   &zid,
		Source:          domain.MeetingSourceZoom,
		Topic:           zm.Topic,
		StartTime:       zm.StartTime.UTC(),
		DurationMinutes: zm.Duration,
	}
	if zm.Duration > 0 {
		end := m.StartTime.Add(time.Duration(zm.Duration) * time.Minute)
		m.EndTime = &end
	}
	return m
}
