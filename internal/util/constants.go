package util

const TimeFormat = "2006-01-02 15:04:05"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimeImage = "image/"
	MimePDF   = "application/pdf"
)

// SessionCookieName is the edge-readable copy of the session token. The same
// token also travels in the Authorization header for API calls; both must be
// cleared together on logout.
const SessionCookieName = "gleam_token"
