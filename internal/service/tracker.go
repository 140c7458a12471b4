package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"study-tracker/internal/model"
	"study-tracker/internal/store"
)

// TrackerService implements the sync contract: whole collections are
// fetched and replaced, never merged. The later of two concurrent
// replacements wins in full.
type TrackerService struct {
	store store.Store
}

func NewTrackerService(st store.Store) *TrackerService { return &TrackerService{store: st} }

// FetchOrCreateUser returns the user record, provisioning an empty one
// on first sight. Any name becomes a valid account this way.
func (s *TrackerService) FetchOrCreateUser(ctx context.Context, name string) (*model.User, error) {
	u, err := s.store.FindUser(ctx, name)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	u = model.NewUser(name)
	if err := s.store.SaveUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Subjects returns the stored subjects collection, or an empty one when
// the user does not exist. Unlike FetchOrCreateUser it never provisions.
func (s *TrackerService) Subjects(ctx context.Context, name string) (json.RawMessage, error) {
	u, err := s.store.FindUser(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return model.EmptyCollection(), nil
	}
	if err != nil {
		return nil, err
	}
	return collectionOrEmpty(u.Subjects), nil
}

// ReplaceSubjects upserts the user and sets subjects to exactly the
// submitted collection.
func (s *TrackerService) ReplaceSubjects(ctx context.Context, name string, subjects json.RawMessage) (json.RawMessage, error) {
	u, err := s.store.FindUser(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		u = model.NewUser(name)
	} else if err != nil {
		return nil, err
	}
	u.Subjects = collectionOrEmpty(subjects)
	if err := s.store.SaveUser(ctx, u); err != nil {
		return nil, err
	}
	return u.Subjects, nil
}

// DeleteSubject removes one subject by id and returns the remainder.
// Ids match by exact string, or numerically for records written by the
// legacy schema that stored numeric ids.
func (s *TrackerService) DeleteSubject(ctx context.Context, name, id string) (json.RawMessage, error) {
	u, err := s.store.FindUser(ctx, name)
	if err != nil {
		return nil, err
	}

	var subjects []map[string]any
	if err := json.Unmarshal(collectionOrEmpty(u.Subjects), &subjects); err != nil {
		return nil, fmt.Errorf("decode subjects: %w", err)
	}

	kept := make([]map[string]any, 0, len(subjects))
	for _, sub := range subjects {
		if !idMatches(sub["id"], id) {
			kept = append(kept, sub)
		}
	}

	data, err := json.Marshal(kept)
	if err != nil {
		return nil, fmt.Errorf("encode subjects: %w", err)
	}
	u.Subjects = data
	if err := s.store.SaveUser(ctx, u); err != nil {
		return nil, err
	}
	return u.Subjects, nil
}

// DailyLogs mirrors Subjects for the dailylogs collection.
func (s *TrackerService) DailyLogs(ctx context.Context, name string) (json.RawMessage, error) {
	u, err := s.store.FindUser(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return model.EmptyCollection(), nil
	}
	if err != nil {
		return nil, err
	}
	return collectionOrEmpty(u.DailyLogs), nil
}

// ReplaceDailyLogs mirrors ReplaceSubjects for the dailylogs collection.
func (s *TrackerService) ReplaceDailyLogs(ctx context.Context, name string, dailylogs json.RawMessage) (json.RawMessage, error) {
	u, err := s.store.FindUser(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		u = model.NewUser(name)
	} else if err != nil {
		return nil, err
	}
	u.DailyLogs = collectionOrEmpty(dailylogs)
	if err := s.store.SaveUser(ctx, u); err != nil {
		return nil, err
	}
	return u.DailyLogs, nil
}

func collectionOrEmpty(c json.RawMessage) json.RawMessage {
	if len(c) == 0 {
		return model.EmptyCollection()
	}
	return c
}

func idMatches(stored any, param string) bool {
	switch v := stored.(type) {
	case string:
		return v == param
	case float64:
		n, err := strconv.ParseFloat(param, 64)
		return err == nil && n == v
	default:
		return false
	}
}
