package mock

import (
	"context"
	"errors"
	"sync"

	"github.com/genvault/genvault/database"
)

// ErrDuplicateEmail mimics the unique index violation sqlite reports.
var ErrDuplicateEmail = errors.New("UNIQUE constraint failed: users.email")

var _ database.DB = (*MockDB)(nil)

// MockDB is an in-memory implementation of database.DB for testing.
type MockDB struct {
	mu sync.RWMutex

	users      map[uint]*database.User
	nextUserID uint

	texts      map[uint]*database.GeneratedText
	nextTextID uint

	// Error simulation
	CreateUserError               error
	GetUserByEmailError           error
	GetUserByIDError              error
	CreateGeneratedTextError      error
	ListGeneratedTextsByUserError error
}

// NewMockDB creates a new MockDB instance.
func NewMockDB() *MockDB {
	return &MockDB{
		users:      make(map[uint]*database.User),
		nextUserID: 1,
		texts:      make(map[uint]*database.GeneratedText),
		nextTextID: 1,
	}
}

// Reset clears all data and errors from the mock database.
func (m *MockDB) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[uint]*database.User)
	m.nextUserID = 1
	m.texts = make(map[uint]*database.GeneratedText)
	m.nextTextID = 1

	m.CreateUserError = nil
	m.GetUserByEmailError = nil
	m.GetUserByIDError = nil
	m.CreateGeneratedTextError = nil
	m.ListGeneratedTextsByUserError = nil
}

func (m *MockDB) CreateUser(ctx context.Context, email, passwordHash string) (*database.User, error) {
	if m.CreateUserError != nil {
		return nil, m.CreateUserError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	user := &database.User{
		Email:        email,
		PasswordHash: passwordHash,
		Active:       true,
	}
	user.ID = m.nextUserID
	m.nextUserID++
	m.users[user.ID] = user
	return user, nil
}

func (m *MockDB) GetUserByEmail(ctx context.Context, email string) (*database.User, error) {
	if m.GetUserByEmailError != nil {
		return nil, m.GetUserByEmailError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *MockDB) GetUserByID(ctx context.Context, id uint) (*database.User, error) {
	if m.GetUserByIDError != nil {
		return nil, m.GetUserByIDError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return user, nil
}

func (m *MockDB) CreateGeneratedText(ctx context.Context, userID uint, prompt, response string) (*database.GeneratedText, error) {
	if m.CreateGeneratedTextError != nil {
		return nil, m.CreateGeneratedTextError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	text := &database.GeneratedText{
		Prompt:   prompt,
		Response: response,
		UserID:   userID,
	}
	text.ID = m.nextTextID
	m.nextTextID++
	m.texts[text.ID] = text
	return text, nil
}

func (m *MockDB) ListGeneratedTextsByUser(ctx context.Context, userID uint) ([]database.GeneratedText, error) {
	if m.ListGeneratedTextsByUserError != nil {
		return nil, m.ListGeneratedTextsByUserError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var texts []database.GeneratedText
	for id := uint(1); id < m.nextTextID; id++ {
		if t, ok := m.texts[id]; ok && t.UserID == userID {
			texts = append(texts, *t)
		}
	}
	return texts, nil
}
