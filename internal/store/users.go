package store

import (
	"sync"

	"github.com/ajaymkoli/Job-Portal/internal/models"
	"go.uber.org/zap"
)

// UserStore holds registered recruiter accounts for the lifetime of the
// process. All access goes through the store's mutex.
type UserStore struct {
	mu     sync.Mutex
	users  []models.User
	nextID int
	logger *zap.Logger
}

func NewUserStore(logger *zap.Logger) *UserStore {
	return &UserStore{
		nextID: 1,
		logger: logger,
	}
}

// Register creates a new account. Email and mobile are unique keys: a
// collision with either on an existing account fails with ErrUserExists.
// Matching is exact and case-sensitive.
func (s *UserStore) Register(name, email, mobile, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email || u.Mobile == mobile {
			return nil, ErrUserExists
		}
	}

	user := models.User{
		ID:       s.nextID,
		Name:     name,
		Email:    email,
		Mobile:   mobile,
		Password: password,
	}
	s.nextID++
	s.users = append(s.users, user)

	s.logger.Info("user registered",
		zap.Int("user_id", user.ID),
		zap.String("email", user.Email),
	)

	return &user, nil
}

// Authenticate looks up an account by exact email+password match.
func (s *UserStore) Authenticate(email, password string) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			user := u
			return &user, true
		}
	}

	return nil, false
}

// ByEmail returns the account with the given email, if any.
func (s *UserStore) ByEmail(email string) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, true
		}
	}

	return nil, false
}
