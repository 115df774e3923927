package memory

import (
	"sync"
	"time"

	"github.com/ledgerlab/fintrack/internal/domain/session"
	"github.com/ledgerlab/fintrack/internal/domain/transaction"
	"github.com/ledgerlab/fintrack/internal/domain/user"
)

// timestamps mirror the millisecond ISO form the API has always emitted
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// Store keeps users, transactions and sessions in process memory. Users and
// transactions draw ids from one shared monotonic sequence; sessions have
// their own. A single mutex covers every operation end to end, so each
// read-modify-write (including the delete-user cascade) is atomic with
// respect to other requests.
type Store struct {
	mu            sync.Mutex
	users         []user.User
	transactions  []transaction.Transaction
	sessions      []session.Session
	nextID        int64
	nextSessionID int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		nextID:        1,
		nextSessionID: 1,
		now:           time.Now,
	}
}

func (s *Store) nowISO() string {
	return s.now().UTC().Format(isoLayout)
}

// Users

func (s *Store) CreateUser(req user.CreateUserRequest) user.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user.User{
		ID:          s.nextID,
		Name:        req.Name,
		Email:       req.Email,
		AccountType: req.AccountType,
	}
	s.nextID++
	s.users = append(s.users, u)

	return u
}

func (s *Store) GetUser(id int64) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}

	return user.User{}, user.ErrNotFound
}

// GetUserByEmail returns the first user whose email matches exactly.
// No uniqueness is enforced at insert time, so first match wins.
func (s *Store) GetUserByEmail(email string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}

	return user.User{}, user.ErrNotFound
}

func (s *Store) UpdateUser(id int64, req user.UpdateUserRequest) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}

		s.users[i].Name = req.Name
		s.users[i].Email = req.Email
		s.users[i].AccountType = req.AccountType
		s.users[i].UpdatedAt = s.nowISO()

		return s.users[i], nil
	}

	return user.User{}, user.ErrNotFound
}

// DeleteUser removes the user and every transaction owned by it.
// Transactions that merely reference the user as a recipient are left
// alone, so recipientId may dangle after a delete.
func (s *Store) DeleteUser(id int64) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID != id {
			continue
		}

		s.users = append(s.users[:i], s.users[i+1:]...)

		kept := s.transactions[:0]
		for _, t := range s.transactions {
			if t.UserID != id {
				kept = append(kept, t)
			}
		}
		s.transactions = kept

		return u, nil
	}

	return user.User{}, user.ErrNotFound
}

func (s *Store) ListUsers() []user.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]user.User, len(s.users))
	copy(out, s.users)

	return out
}

// Transactions

func (s *Store) CreateTransaction(req transaction.CreateTransactionRequest) transaction.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := transaction.Transaction{
		ID:          s.nextID,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Type:        req.Type,
		RecipientID: recipientOrNil(req.RecipientID),
		Timestamp:   s.nowISO(),
	}
	s.nextID++
	s.transactions = append(s.transactions, t)

	return t
}

func (s *Store) GetTransaction(id int64) (transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.transactions {
		if t.ID == id {
			return t, nil
		}
	}

	return transaction.Transaction{}, transaction.ErrNotFound
}

func (s *Store) UpdateTransaction(id int64, req transaction.UpdateTransactionRequest) (transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}

		s.transactions[i].UserID = req.UserID
		s.transactions[i].Amount = req.Amount
		s.transactions[i].Type = req.Type
		s.transactions[i].RecipientID = recipientOrNil(req.RecipientID)
		s.transactions[i].UpdatedAt = s.nowISO()

		return s.transactions[i], nil
	}

	return transaction.Transaction{}, transaction.ErrNotFound
}

func (s *Store) DeleteTransaction(id int64) (transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.transactions {
		if t.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return t, nil
		}
	}

	return transaction.Transaction{}, transaction.ErrNotFound
}

func (s *Store) ListTransactionsByUser(userID int64) []transaction.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]transaction.Transaction, 0)
	for _, t := range s.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}

	return out
}

func (s *Store) ListTransactions() []transaction.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]transaction.Transaction, len(s.transactions))
	copy(out, s.transactions)

	return out
}

// Sessions

func (s *Store) CreateSession(token string, u user.User) session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := session.Session{
		ID:        s.nextSessionID,
		Token:     token,
		UserID:    u.ID,
		User:      u,
		CreatedAt: s.now(),
	}
	s.nextSessionID++
	s.sessions = append(s.sessions, sess)

	return sess
}

func (s *Store) GetSessionByToken(token string) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.Token == token {
			return sess, nil
		}
	}

	return session.Session{}, session.ErrNotFound
}

func (s *Store) DeleteSessionByToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.sessions[:0]
	for _, sess := range s.sessions {
		if sess.Token != token {
			kept = append(kept, sess)
		}
	}
	s.sessions = kept
}

// a zero recipient reads the same as no recipient at all
func recipientOrNil(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}

	v := *id
	return &v
}
