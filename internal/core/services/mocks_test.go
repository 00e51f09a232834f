package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/Tushar3330/Mytube/internal/apperrors"
	"github.com/Tushar3330/Mytube/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	args := m.Called(ctx, username, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAccountDetails(ctx context.Context, userID, fullName, email, username string, updatedAt time.Time) (*domain.User, error) {
	args := m.Called(ctx, userID, fullName, email, username, updatedAt)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string, updatedAt time.Time) (*domain.User, error) {
	args := m.Called(ctx, userID, avatarURL, updatedAt)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, userID, coverImageURL string, updatedAt time.Time) (*domain.User, error) {
	args := m.Called(ctx, userID, coverImageURL, updatedAt)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) RotateRefreshToken(ctx context.Context, userID, oldHash, newHash string, expiresAt time.Time) (bool, error) {
	args := m.Called(ctx, userID, oldHash, newHash, expiresAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func userOrNil(v any) *domain.User {
	if v == nil {
		return nil
	}
	return v.(*domain.User)
}

// --- Mock ChannelReader ---
type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) GetChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, username, viewerID)
	var profile *domain.ChannelProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.ChannelProfile)
	}
	return profile, args.Error(1)
}

func (m *MockChannelRepository) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchedVideo, error) {
	args := m.Called(ctx, userID)
	var history []domain.WatchedVideo
	if args.Get(0) != nil {
		history = args.Get(0).([]domain.WatchedVideo)
	}
	return history, args.Error(1)
}

// --- Mock AssetStorage ---
type MockAssetStorage struct {
	mock.Mock
}

func (m *MockAssetStorage) Upload(ctx context.Context, folder domain.AssetFolder, file domain.UploadedFile) (string, error) {
	args := m.Called(ctx, folder, file)
	return args.String(0), args.Error(1)
}

// memoryUserRepo is a stateful user store for session lifecycle tests.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newMemoryUserRepo(users ...domain.User) *memoryUserRepo {
	r := &memoryUserRepo{users: map[string]domain.User{}}
	for _, u := range users {
		r.users[u.UserID] = u
	}
	return r
}

func (r *memoryUserRepo) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (r *memoryUserRepo) FindUserByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryUserRepo) SaveUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return apperrors.ErrDuplicate
		}
	}
	r.users[user.UserID] = user
	return nil
}

func (r *memoryUserRepo) update(userID string, fn func(*domain.User)) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	fn(&u)
	r.users[userID] = u
	return &u, nil
}

func (r *memoryUserRepo) UpdateAccountDetails(_ context.Context, userID, fullName, email, username string, updatedAt time.Time) (*domain.User, error) {
	return r.update(userID, func(u *domain.User) {
		u.FullName, u.Email, u.Username, u.UpdatedAt = fullName, email, username, updatedAt
	})
}

func (r *memoryUserRepo) UpdatePasswordHash(_ context.Context, userID, passwordHash string, updatedAt time.Time) error {
	_, err := r.update(userID, func(u *domain.User) {
		u.PasswordHash, u.UpdatedAt = passwordHash, updatedAt
	})
	return err
}

func (r *memoryUserRepo) UpdateAvatar(_ context.Context, userID, avatarURL string, updatedAt time.Time) (*domain.User, error) {
	return r.update(userID, func(u *domain.User) {
		u.AvatarURL, u.UpdatedAt = avatarURL, updatedAt
	})
}

func (r *memoryUserRepo) UpdateCoverImage(_ context.Context, userID, coverImageURL string, updatedAt time.Time) (*domain.User, error) {
	return r.update(userID, func(u *domain.User) {
		u.CoverImageURL, u.UpdatedAt = coverImageURL, updatedAt
	})
}

func (r *memoryUserRepo) SetRefreshToken(_ context.Context, userID, refreshTokenHash string, expiresAt time.Time) error {
	_, err := r.update(userID, func(u *domain.User) {
		u.RefreshTokenHash, u.RefreshTokenExpiresAt = &refreshTokenHash, &expiresAt
	})
	return err
}

func (r *memoryUserRepo) RotateRefreshToken(_ context.Context, userID, oldHash, newHash string, expiresAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok || u.RefreshTokenHash == nil || *u.RefreshTokenHash != oldHash {
		return false, nil
	}
	u.RefreshTokenHash, u.RefreshTokenExpiresAt = &newHash, &expiresAt
	r.users[userID] = u
	return true, nil
}

func (r *memoryUserRepo) ClearRefreshToken(_ context.Context, userID string) error {
	_, err := r.update(userID, func(u *domain.User) {
		u.RefreshTokenHash, u.RefreshTokenExpiresAt = nil, nil
	})
	if err == apperrors.ErrNotFound {
		return nil
	}
	return err
}

func (r *memoryUserRepo) stored(userID string) domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[userID]
}
