package kv

// Bridge key namespace shared by the state containers and the session layer.
// Each owner reads and writes only its own key.
const (
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
	KeyUser     = "user"
)

// Store is the persistent key-value bridge backing client state.
//
// Load returns (nil, false) when the key was never written or the driver
// cannot produce the value. Save and Delete are fire-and-forget: a driver
// that cannot persist logs a warning and drops the write, so in-memory
// state stays authoritative for the current session.
type Store interface {
	Load(key string) ([]byte, bool)
	Save(key string, value []byte)
	Delete(key string)
}
