package auth

import (
	"sync"

	"github.com/cyclegear/storefront/internal/models"
)

// Credential is a directory entry: the user record plus its plaintext
// password. Credentials live only in the directory, never in storage or
// responses.
type Credential struct {
	models.User
	Password string
}

// Directory is the table of registered users. Lookup is a case-sensitive
// exact match on email.
type Directory interface {
	FindByEmail(email string) (Credential, bool)
	Append(c Credential) Credential
}

// MemoryDirectory assigns ids from a monotonic counter so removals can
// never recycle an id.
type MemoryDirectory struct {
	mu      sync.Mutex
	entries []Credential
	nextID  int
}

func NewMemoryDirectory(seed ...Credential) *MemoryDirectory {
	d := &MemoryDirectory{nextID: 1}
	for _, c := range seed {
		if c.ID >= d.nextID {
			d.nextID = c.ID + 1
		}
		d.entries = append(d.entries, c)
	}
	return d
}

// SeedDirectory returns the fixed mock user table the storefront ships with.
func SeedDirectory() *MemoryDirectory {
	return NewMemoryDirectory(
		Credential{
			User: models.User{
				ID:        1,
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@cyclegear.com",
				Phone:     "+1234567890",
				IsAdmin:   true,
			},
			Password: "admin123",
		},
		Credential{
			User: models.User{
				ID:        2,
				FirstName: "John",
				LastName:  "Doe",
				Email:     "john@example.com",
				Phone:     "+1234567891",
				IsAdmin:   false,
			},
			Password: "user123",
		},
	)
}

func (d *MemoryDirectory) FindByEmail(email string) (Credential, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, c := range d.entries {
		if c.Email == email {
			return c, true
		}
	}
	return Credential{}, false
}

func (d *MemoryDirectory) Append(c Credential) Credential {
	d.mu.Lock()
	defer d.mu.Unlock()

	c.ID = d.nextID
	d.nextID++
	d.entries = append(d.entries, c)
	return c
}

func (d *MemoryDirectory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}
