package client

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"study-tracker/internal/model"
)

var ErrNoSelection = errors.New("nothing selected")

// SubjectView mirrors one user's subjects collection. Every mutation
// computes the new collection, updates local state and selection
// synchronously, then pushes the whole collection. A failed push never
// rolls local state back; it is kept as a pending write that Flush
// retries. Not safe for concurrent use.
type SubjectView struct {
	c        *Client
	subjects []model.Subject
	selected string
	pending  bool
	syncErr  error
}

func NewSubjectView(c *Client) *SubjectView { return &SubjectView{c: c} }

// Hydrate loads the collection; when it is non-empty and nothing is
// selected yet, the first element becomes selected.
func (v *SubjectView) Hydrate(ctx context.Context) error {
	subjects, err := v.c.FetchSubjects(ctx)
	if err != nil {
		return err
	}
	v.subjects = subjects
	if len(subjects) > 0 && v.selected == "" {
		v.selected = subjects[0].ID
	}
	return nil
}

func (v *SubjectView) Subjects() []model.Subject { return v.subjects }

// Selected re-derives the selected subject from the current collection.
func (v *SubjectView) Selected() *model.Subject {
	for i := range v.subjects {
		if v.subjects[i].ID == v.selected {
			return &v.subjects[i]
		}
	}
	return nil
}

func (v *SubjectView) Select(id string) bool {
	for i := range v.subjects {
		if v.subjects[i].ID == id {
			v.selected = id
			return true
		}
	}
	return false
}

func (v *SubjectView) AddSubject(ctx context.Context, name, description string) (*model.Subject, error) {
	if name == "" {
		return nil, errors.New("subject name is required")
	}
	s := model.Subject{
		ID:          newID(),
		Name:        name,
		Description: description,
		Entries:     []model.Entry{},
		CreatedAt:   model.ISOTime(time.Now()),
	}
	v.subjects = append(v.subjects, s)
	v.selected = s.ID
	v.push(ctx)
	return v.Selected(), nil
}

// AddEntry prepends a new entry to the selected subject; entries stay
// newest-first.
func (v *SubjectView) AddEntry(ctx context.Context, description string, att *model.Attachments) (*model.Entry, error) {
	if description == "" {
		return nil, errors.New("entry description is required")
	}
	sel := v.Selected()
	if sel == nil {
		return nil, ErrNoSelection
	}

	entry := model.Entry{
		ID:          newID(),
		Description: description,
		Date:        model.ISOTime(time.Now()),
		Attachments: att,
	}

	next := make([]model.Subject, len(v.subjects))
	for i, s := range v.subjects {
		if s.ID == sel.ID {
			s.Entries = append([]model.Entry{entry}, s.Entries...)
		}
		next[i] = s
	}
	v.subjects = next
	v.push(ctx)
	return &entry, nil
}

func (v *SubjectView) DeleteEntry(ctx context.Context, entryID string) error {
	sel := v.Selected()
	if sel == nil {
		return ErrNoSelection
	}

	next := make([]model.Subject, len(v.subjects))
	for i, s := range v.subjects {
		if s.ID == sel.ID {
			kept := make([]model.Entry, 0, len(s.Entries))
			for _, e := range s.Entries {
				if e.ID != entryID {
					kept = append(kept, e)
				}
			}
			s.Entries = kept
		}
		next[i] = s
	}
	v.subjects = next
	v.push(ctx)
	return nil
}

// DeleteSubject filters the subject out and pushes the remainder; when
// the selected subject goes, selection falls back to the first
// remaining one or to none.
func (v *SubjectView) DeleteSubject(ctx context.Context, subjectID string) {
	kept := make([]model.Subject, 0, len(v.subjects))
	for _, s := range v.subjects {
		if s.ID != subjectID {
			kept = append(kept, s)
		}
	}
	v.subjects = kept

	if v.selected == subjectID {
		v.selected = ""
		if len(kept) > 0 {
			v.selected = kept[0].ID
		}
	}
	v.push(ctx)
}

// Pending reports whether the last push failed and local state is ahead
// of the server.
func (v *SubjectView) Pending() bool { return v.pending }

// SyncErr returns the last push failure, for surfacing in a UI.
func (v *SubjectView) SyncErr() error { return v.syncErr }

// Flush retries the pending write, if any.
func (v *SubjectView) Flush(ctx context.Context) error {
	if !v.pending {
		return nil
	}
	v.push(ctx)
	return v.syncErr
}

// Reconcile re-fetches server state and adopts it, dropping any pending
// write. Selection is re-derived against the fetched collection.
func (v *SubjectView) Reconcile(ctx context.Context) error {
	subjects, err := v.c.FetchSubjects(ctx)
	if err != nil {
		return err
	}
	v.subjects = subjects
	v.pending = false
	v.syncErr = nil
	if v.Selected() == nil {
		v.selected = ""
		if len(subjects) > 0 {
			v.selected = subjects[0].ID
		}
	}
	return nil
}

func (v *SubjectView) push(ctx context.Context) {
	if _, err := v.c.PushSubjects(ctx, v.subjects); err != nil {
		slog.Warn("subjects sync failed", "user", v.c.User(), "err", err)
		v.pending = true
		v.syncErr = err
		return
	}
	v.pending = false
	v.syncErr = nil
}
