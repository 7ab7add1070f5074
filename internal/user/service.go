package user

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new user and returns its id. Emails are lowercased on
// write; the duplicate check is a find-then-insert sequence and is not atomic
// under concurrent registrations for the same address.
func (s *Service) Register(ctx context.Context, email, name, password string) (string, error) {
	email = strings.ToLower(email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailExists
	} else if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	now := time.Now().UTC()
	u := User{
		ID:          uuid.NewString(),
		Email:       email,
		Name:        name,
		Password:    hashPassword(password),
		Created:     now,
		LastUpdated: now,
	}

	if err := s.repo.Insert(ctx, u); err != nil {
		return "", err
	}

	return u.ID, nil
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

type ListQuery struct {
	Email string
	Name  string
	Page  int64
	Limit int64
}

type ListResult struct {
	Count int    `json:"count"`
	Total int64  `json:"total"`
	Users []User `json:"users"`
}

// List returns one page of users matching the query, with the password field
// cleared on every entry.
func (s *Service) List(ctx context.Context, q ListQuery) (ListResult, error) {
	var skip int64
	if q.Page > 0 {
		skip = (q.Page - 1) * q.Limit
	}

	users, total, err := s.repo.Find(ctx, Filter{Email: strings.ToLower(q.Email), Name: q.Name}, skip, q.Limit)
	if err != nil {
		return ListResult{}, err
	}

	sanitized := make([]User, 0, len(users))
	for _, u := range users {
		u.Password = ""
		sanitized = append(sanitized, u)
	}

	return ListResult{Count: len(sanitized), Total: total, Users: sanitized}, nil
}

type UpdateInput struct {
	Name        string
	Email       string
	OldPassword string
	NewPassword string
}

// Update applies a partial update to an existing user. Empty fields leave the
// stored value unchanged. A password change requires both OldPassword and
// NewPassword; one without the other is silently ignored.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if email := strings.ToLower(in.Email); email != "" && email != u.Email {
		if _, err := s.repo.FindByEmail(ctx, email); err == nil {
			return ErrEmailExists
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}
	}

	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		u.Email = strings.ToLower(in.Email)
	}

	if in.OldPassword != "" && in.NewPassword != "" {
		if u.Password != hashPassword(in.OldPassword) {
			return ErrPasswordMismatch
		}
		u.Password = hashPassword(in.NewPassword)
	}

	// Record the mutation time. LastLogin is untouched here.
	u.LastUpdated = time.Now().UTC()

	return s.repo.Replace(ctx, u)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

// Authenticate validates credentials and stamps the login time. An unknown
// email and a wrong password both return ErrInvalidCredentials so callers
// cannot tell whether the address exists.
func (s *Service) Authenticate(ctx context.Context, email, password string) error {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if u.Password != hashPassword(password) {
		return ErrInvalidCredentials
	}

	now := time.Now().UTC()
	u.LastLogin = &now
	u.LastUpdated = now

	return s.repo.Replace(ctx, u)
}

// hashPassword returns the unsalted MD5 hex digest of the plaintext. This is
// the digest format the existing user records were written with; it is a known
// weak scheme and any migration to a salted KDF has to rewrite stored records.
func hashPassword(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}
