package models

// AppInfo is remote-published app metadata (minimum supported version,
// banner text). Synced alongside the base tables.
type AppInfo struct {
	ID         int64  `json:"id"`
	MinVersion string `json:"min_version,omitempty"`
	Banner     string `json:"banner,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// Notification is a remote-published announcement. The "last visited"
// timestamp lives in local app state, not here.
type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
