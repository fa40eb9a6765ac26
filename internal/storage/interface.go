package storage

// Well-known keys. The session key holds the serialized Session; the theme
// key holds the UI theme name.
const (
	KeySession = "session"
	KeyTheme   = "theme"
)

// Storage is a durable key-value store surviving restarts, the terminal
// analog of the browser's local storage. Implementations must treat a
// missing key as (nil, false, nil), not as an error.
type Storage interface {
	Load(key string) (value []byte, ok bool, err error)
	Save(key string, value []byte) error
	Delete(key string) error
}
