package model

import (
	"fmt"
	"time"
)

// Canonical client-side shapes. The server stores collections verbatim,
// so these types are the contract the client keeps, not something the
// server enforces.

type Attachment struct {
	Name string `json:"name"`
	Data string `json:"data"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

type Attachments struct {
	Image *Attachment `json:"image,omitempty"`
	PDF   *Attachment `json:"pdf,omitempty"`
	Voice *Attachment `json:"voice,omitempty"`
}

type Entry struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
	Attachments *Attachments `json:"attachments,omitempty"`
}

type Subject struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Entries     []Entry `json:"entries"`
	CreatedAt   string  `json:"createdAt"`
}

type DailyLog struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Logs      []string `json:"logs"`
	CreatedAt string   `json:"createdAt"`
}

// HoursPerDay is the fixed length of DailyLog.Logs; slot h covers
// [h:00, h+1:00).
const HoursPerDay = 24

func EmptySlots() []string { return make([]string, HoursPerDay) }

// NormalizeSlots pads or truncates a logs slice to exactly HoursPerDay
// entries.
func NormalizeSlots(logs []string) []string {
	out := make([]string, HoursPerDay)
	copy(out, logs)
	return out
}

// HourRange renders slot h for display, e.g. "09:00 - 10:00".
func HourRange(h int) string {
	return fmt.Sprintf("%02d:00 - %02d:00", h, (h+1)%HoursPerDay)
}

// ISOTime formats a timestamp the way the stored records expect,
// millisecond-precision UTC.
func ISOTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
