package storage

import "time"

// Comment is a single feed comment. Immutable once posted; legacy documents
// stored comments as bare strings, which migrate with an empty author.
type Comment struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// Post is one completed-task entry in the shared feed document
// (newest-first). The JSON field names are the historical on-disk names and
// must not change.
type Post struct {
	ID          string    `json:"id"`
	Author      string    `json:"username"`
	Task        string    `json:"task"`
	Description string    `json:"description"`
	Image       []byte    `json:"imageData,omitempty"`
	CreatedAt   time.Time `json:"date"`
	LikedBy     []string  `json:"likedBy"`
	Comments    []Comment `json:"comments"`
}

// TaskList is one user's daily tasks plus the time they were last saved.
// The list expires when SavedAt falls on a different calendar day than now.
type TaskList struct {
	Tasks   []string
	SavedAt time.Time
}
