package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/meetsum-backend/internal/app"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/service/meeting"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

func newMeetingsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meetings",
		Short: "Inspect stored meetings",
	}
	cmd.AddCommand(newMeetingsListCommand(ctx))
	return cmd
}

func newMeetingsListCommand(ctx *commandContext) *cobra.Command {
	var email string
	var limit, offset int
	var since time.Duration

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's meetings, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("--email is required")
			}
			return ctx.withApp(cmd.Context(), func(a *app.App) error {
				user, err := a.Users.GetByEmail(cmd.Context(), domain.NormalizeEmail(email))
				if err != nil {
					return fmt.Errorf("find user %s: %w", email, err)
				}

				input := meeting.ListInput{Limit: limit, Offset: offset}
				if since > 0 {
					from := time.Now().Add(-since)
					input.From = &from
				}
				res, err := a.Meetings.List(ctxutil.WithUserID(cmd.Context(), user.ID), input)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderMeetings(res.Meetings, time.Now()))
				fmt.Fprintf(cmd.OutOrStdout(), "%d of %d meeting(s)\n", len(res.Meetings), res.Total)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Owner's account email")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum meetings to show (max 100)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Meetings to skip")
	cmd.Flags().DurationVar(&since, "since", 0, "Only meetings started within this window, e.g. 720h")
	return cmd
}

func renderMeetings(meetings []domain.Meeting, now time.Time) string {
	headers := []string{"ID", "Topic", "Source", "Started", "Duration", "Transcript", "Analyzed"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft}

	rows := make([][]string, 0, len(meetings))
	for i := range meetings {
		m := &meetings[i]
		transcript := "-"
		if m.HasTranscript() {
			transcript = humanize.Comma(int64(len(strings.Fields(m.TranscriptText)))) + " words"
		}
		analyzed := "-"
		if m.AnalyzedAt != nil {
			analyzed = humanize.RelTime(*m.AnalyzedAt, now, "ago", "from now")
		}
		rows = append(rows, []string{
			m.ID.String(),
			m.Topic,
			string(m.Source),
			m.StartTime.Local().Format("2006-01-02 15:04"),
			strconv.Itoa(m.DurationMinutes) + "m",
			transcript,
			analyzed,
		})
	}
	return renderTable(headers, rows, aligns)
}
