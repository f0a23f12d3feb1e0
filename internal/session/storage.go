package session

import (
	"encoding/base64"
	"net/http"
	"sync"
	"time"
)

// Storage is durable client-side key/value storage, shaped after the
// browser's localStorage.
type Storage interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
	RemoveItem(key string)
}

// MemoryStorage keeps items in a map. The zero value is ready to use.
type MemoryStorage struct {
	mu    sync.Mutex
	items map[string]string
}

func (m *MemoryStorage) GetItem(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok
}

func (m *MemoryStorage) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items == nil {
		m.items = make(map[string]string)
	}
	m.items[key] = value
	return nil
}

func (m *MemoryStorage) RemoveItem(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}

// CookieOptions control the cookies written by CookieStorage.
type CookieOptions struct {
	Path   string
	MaxAge time.Duration
	Secure bool
}

// CookieStorage persists items as cookies on the visiting browser. Values
// are base64url encoded so JSON survives the cookie grammar. Writes made
// during the request are visible to later reads of the same request.
type CookieStorage struct {
	r       *http.Request
	w       http.ResponseWriter
	opts    CookieOptions
	pending map[string]*string
}

func NewCookieStorage(w http.ResponseWriter, r *http.Request, opts CookieOptions) *CookieStorage {
	if opts.Path == "" {
		opts.Path = "/"
	}
	return &CookieStorage{r: r, w: w, opts: opts, pending: make(map[string]*string)}
}

func (c *CookieStorage) GetItem(key string) (string, bool) {
	if v, ok := c.pending[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}
	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		// Hand back the raw value; the caller decides whether it is usable.
		return cookie.Value, true
	}
	return string(decoded), true
}

func (c *CookieStorage) SetItem(key, value string) error {
	cookie := &http.Cookie{
		Name:     key,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(value)),
		Path:     c.opts.Path,
		HttpOnly: true,
		Secure:   c.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if c.opts.MaxAge > 0 {
		cookie.MaxAge = int(c.opts.MaxAge.Seconds())
		cookie.Expires = time.Now().Add(c.opts.MaxAge)
	}
	if err := cookie.Valid(); err != nil {
		return err
	}
	http.SetCookie(c.w, cookie)
	c.pending[key] = &value
	return nil
}

func (c *CookieStorage) RemoveItem(key string) {
	http.SetCookie(c.w, &http.Cookie{Name: key, Path: c.opts.Path, MaxAge: -1})
	c.pending[key] = nil
}
