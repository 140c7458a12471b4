package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"study-tracker/internal/model"
)

// DailyLogView mirrors one user's dailylogs collection, one record per
// calendar date with 24 hourly slots. Same sync policy as SubjectView.
// Not safe for concurrent use.
type DailyLogView struct {
	c        *Client
	dates    []model.DailyLog
	selected string
	pending  bool
	syncErr  error
}

func NewDailyLogView(c *Client) *DailyLogView { return &DailyLogView{c: c} }

func (v *DailyLogView) Hydrate(ctx context.Context) error {
	dates, err := v.c.FetchDailyLogs(ctx)
	if err != nil {
		return err
	}
	v.dates = dates
	if len(dates) > 0 && v.selected == "" {
		v.selected = dates[0].ID
	}
	return nil
}

func (v *DailyLogView) Dates() []model.DailyLog { return v.dates }

func (v *DailyLogView) Selected() *model.DailyLog {
	for i := range v.dates {
		if v.dates[i].ID == v.selected {
			return &v.dates[i]
		}
	}
	return nil
}

func (v *DailyLogView) Select(id string) bool {
	for i := range v.dates {
		if v.dates[i].ID == id {
			v.selected = id
			return true
		}
	}
	return false
}

// AddDate creates a log for a calendar date and selects it. Adding a
// date that already exists is a no-op that just selects the existing
// record; no duplicate is created and nothing is pushed.
func (v *DailyLogView) AddDate(ctx context.Context, date string) *model.DailyLog {
	for i := range v.dates {
		if v.dates[i].Date == date {
			v.selected = v.dates[i].ID
			return &v.dates[i]
		}
	}

	d := model.DailyLog{
		ID:        newID(),
		Date:      date,
		Logs:      model.EmptySlots(),
		CreatedAt: model.ISOTime(time.Now()),
	}
	v.dates = append([]model.DailyLog{d}, v.dates...)
	v.selected = d.ID
	v.push(ctx)
	return v.Selected()
}

// UpdateLog sets the text for one hour slot of the selected date. The
// logs slice is normalized so its length stays exactly 24.
func (v *DailyLogView) UpdateLog(ctx context.Context, hour int, text string) error {
	if hour < 0 || hour >= model.HoursPerDay {
		return fmt.Errorf("hour out of range: %d", hour)
	}
	sel := v.Selected()
	if sel == nil {
		return ErrNoSelection
	}

	next := make([]model.DailyLog, len(v.dates))
	for i, d := range v.dates {
		if d.ID == sel.ID {
			logs := model.NormalizeSlots(d.Logs)
			logs[hour] = text
			d.Logs = logs
		}
		next[i] = d
	}
	v.dates = next
	v.push(ctx)
	return nil
}

func (v *DailyLogView) Pending() bool  { return v.pending }
func (v *DailyLogView) SyncErr() error { return v.syncErr }

func (v *DailyLogView) Flush(ctx context.Context) error {
	if !v.pending {
		return nil
	}
	v.push(ctx)
	return v.syncErr
}

func (v *DailyLogView) Reconcile(ctx context.Context) error {
	dates, err := v.c.FetchDailyLogs(ctx)
	if err != nil {
		return err
	}
	v.dates = dates
	v.pending = false
	v.syncErr = nil
	if v.Selected() == nil {
		v.selected = ""
		if len(dates) > 0 {
			v.selected = dates[0].ID
		}
	}
	return nil
}

func (v *DailyLogView) push(ctx context.Context) {
	if _, err := v.c.PushDailyLogs(ctx, v.dates); err != nil {
		slog.Warn("dailylogs sync failed", "user", v.c.User(), "err", err)
		v.pending = true
		v.syncErr = err
		return
	}
	v.pending = false
	v.syncErr = nil
}
