package model

import "encoding/json"

// User is the stored document: one row per user name, both collections
// kept as JSON exactly as the client submitted them. Nested shape is
// deliberately loose; the server never validates subjects or dailylogs
// beyond being JSON.
type User struct {
	Name      string          `gorm:"primaryKey;size:191" json:"name"`
	Subjects  json.RawMessage `gorm:"serializer:json;type:json" json:"subjects"`
	DailyLogs json.RawMessage `gorm:"serializer:json;type:json;column:dailylogs" json:"dailylogs"`
}

func (User) TableName() string { return "users" }

// NewUser returns an empty provisioned record for a name.
func NewUser(name string) *User {
	return &User{Name: name, Subjects: EmptyCollection(), DailyLogs: EmptyCollection()}
}

func EmptyCollection() json.RawMessage { return json.RawMessage("[]") }
