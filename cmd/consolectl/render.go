package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"tenantconsole/internal/model"
)

const timeLayout = "2006-01-02 15:04:05 -0700"

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(header)
	return table
}

func formatTime(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.In(loc).Format(timeLayout)
}

func renderBackups(w io.Writer, items []model.BackupRecord, loc *time.Location) {
	table := newTable(w, []string{"ID", "TABLES", "TYPE", "STORAGE", "STATUS", "SIZE", "CREATED", "EXPIRES"})
	for _, b := range items {
		status := b.Status
		if b.RestoreStatus != nil {
			status += " (restore " + *b.RestoreStatus + ")"
		}
		table.Append([]string{
			b.ID,
			b.TableName,
			b.BackupType,
			b.StorageType,
			status,
			humanize.Bytes(uint64(max(b.BackupSize, 0))),
			formatTime(&b.CreatedAt, loc),
			formatTime(b.ExpiresAt, loc),
		})
	}
	table.Render()
}

func renderSchedules(w io.Writer, items []model.BackupSchedule, loc *time.Location) {
	table := newTable(w, []string{"CLIENT", "FREQUENCY", "TIME", "ACTIVE", "LAST RUN", "NEXT RUN"})
	for _, s := range items {
		table.Append([]string{
			s.ClientID,
			s.Frequency,
			s.TimeOfDay,
			strconv.FormatBool(s.Active),
			formatTime(s.LastRun, loc),
			formatTime(&s.NextRun, loc),
		})
	}
	table.Render()
}

func renderTableStats(w io.Writer, st *model.TableStats) {
	table := newTable(w, []string{"TABLE", "ROWS", "SIZE"})
	for _, t := range st.Tables {
		table.Append([]string{t.Name, humanize.Comma(t.Rows), humanize.Bytes(uint64(max(t.Bytes, 0)))})
	}
	table.SetFooter([]string{"TOTAL", humanize.Comma(st.TotalRows), humanize.Bytes(uint64(max(st.TotalSize, 0)))})
	table.Render()
}

func renderSessionStats(w io.Writer, st *model.SessionStats) {
	fmt.Fprintf(w, "active sessions:        %s\n", humanize.Comma(int64(st.ActiveSessions)))
	fmt.Fprintf(w, "sessions (24h):         %s\n", humanize.Comma(int64(st.TotalSessions)))
	fmt.Fprintf(w, "unique locations:       %s\n", humanize.Comma(int64(st.UniqueLocations)))
	fmt.Fprintf(w, "high activity sessions: %s\n", humanize.Comma(int64(st.HighActivitySessions)))
}
