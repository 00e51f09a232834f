package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Tushar3330/Mytube/internal/apperrors"
	"github.com/Tushar3330/Mytube/internal/core/domain"
	portssvc "github.com/Tushar3330/Mytube/internal/core/ports/services"
	"github.com/Tushar3330/Mytube/internal/core/services"
	"github.com/Tushar3330/Mytube/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockUserRepository
	mockChannel *MockChannelRepository
	mockStorage *MockAssetStorage
	service     portssvc.UserSvcFacade
	ctx         context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.mockChannel = new(MockChannelRepository)
	s.mockStorage = new(MockAssetStorage)
	s.service = services.NewUserService(s.mockRepo, s.mockChannel, s.mockStorage)
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.mockRepo.AssertExpectations(s.T())
	s.mockChannel.AssertExpectations(s.T())
	s.mockStorage.AssertExpectations(s.T())
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) statusOf(err error) int {
	var appErr *apperrors.AppError
	s.Require().True(errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.StatusCode
}

func storedUser() *domain.User {
	hash := "stored-refresh-digest"
	return &domain.User{
		UserID:           "user-1",
		Username:         "alice",
		Email:            "alice@example.com",
		FullName:         "Alice A",
		PasswordHash:     "$2a$10$abcdefghijklmnopqrstuv",
		RefreshTokenHash: &hash,
	}
}

func (s *UserServiceTestSuite) TestGetUserByID_Sanitized() {
	s.mockRepo.On("FindUserByID", s.ctx, "user-1").Return(storedUser(), nil).Once()

	user, err := s.service.GetUserByID(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
	s.Empty(user.PasswordHash)
	s.Nil(user.RefreshTokenHash)
}

func (s *UserServiceTestSuite) TestGetUserByID_NotFound() {
	s.mockRepo.On("FindUserByID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetUserByID(s.ctx, "ghost")
	s.Equal(http.StatusNotFound, s.statusOf(err))
}

func (s *UserServiceTestSuite) TestUpdateAccountDetails_Normalizes() {
	updated := storedUser()
	updated.FullName = "Alice B"
	updated.Email = "new@example.com"
	s.mockRepo.On("UpdateAccountDetails", s.ctx, "user-1", "Alice B", "new@example.com", "alice", mock.AnythingOfType("time.Time")).Return(updated, nil).Once()

	user, err := s.service.UpdateAccountDetails(s.ctx, "user-1", dto.UpdateAccountRequest{
		FullName: " Alice B ",
		Email:    "NEW@example.com",
		Username: "Alice",
	})
	s.Require().NoError(err)
	s.Equal("new@example.com", user.Email)
	s.Empty(user.PasswordHash)
}

func (s *UserServiceTestSuite) TestUpdateAccountDetails_Errors() {
	_, err := s.service.UpdateAccountDetails(s.ctx, "user-1", dto.UpdateAccountRequest{FullName: "x", Email: "", Username: "alice"})
	s.Equal(http.StatusBadRequest, s.statusOf(err))

	s.mockRepo.On("UpdateAccountDetails", s.ctx, "user-1", "Alice", "bob@example.com", "alice", mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrDuplicate).Once()
	_, err = s.service.UpdateAccountDetails(s.ctx, "user-1", dto.UpdateAccountRequest{FullName: "Alice", Email: "bob@example.com", Username: "alice"})
	s.Equal(http.StatusConflict, s.statusOf(err))
}

func (s *UserServiceTestSuite) TestUpdateAvatar() {
	file := domain.UploadedFile{Path: "/tmp/new.png", Filename: "new.png"}
	updated := storedUser()
	updated.AvatarURL = "https://cdn.test/avatars/new.png"

	s.mockStorage.On("Upload", s.ctx, domain.AvatarFolder, file).Return(updated.AvatarURL, nil).Once()
	s.mockRepo.On("UpdateAvatar", s.ctx, "user-1", updated.AvatarURL, mock.AnythingOfType("time.Time")).Return(updated, nil).Once()

	user, err := s.service.UpdateAvatar(s.ctx, "user-1", &file)
	s.Require().NoError(err)
	s.Equal(updated.AvatarURL, user.AvatarURL)
}

func (s *UserServiceTestSuite) TestUpdateAvatar_MissingFile() {
	_, err := s.service.UpdateAvatar(s.ctx, "user-1", nil)
	s.Equal(http.StatusUnauthorized, s.statusOf(err))
}

func (s *UserServiceTestSuite) TestUpdateCoverImage_UploadFailureKeepsOldURL() {
	file := domain.UploadedFile{Path: "/tmp/c.png", Filename: "c.png"}
	s.mockStorage.On("Upload", s.ctx, domain.CoverImageFolder, file).Return("", errors.New("timeout")).Once()

	_, err := s.service.UpdateCoverImage(s.ctx, "user-1", &file)
	s.Equal(http.StatusBadRequest, s.statusOf(err))
	s.ErrorIs(err, apperrors.ErrUpload)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateCoverImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateCoverImage_MissingFile() {
	_, err := s.service.UpdateCoverImage(s.ctx, "user-1", nil)
	s.Equal(http.StatusUnauthorized, s.statusOf(err))
}

func (s *UserServiceTestSuite) TestGetChannelProfile() {
	profile := &domain.ChannelProfile{UserID: "user-2", Username: "bob", SubscribersCount: 3, ChannelsSubscribedToCount: 1, IsSubscribed: true}
	s.mockChannel.On("GetChannelProfile", s.ctx, "bob", "user-1").Return(profile, nil).Once()

	got, err := s.service.GetChannelProfile(s.ctx, " Bob ", "user-1")
	s.Require().NoError(err)
	s.Equal(int64(3), got.SubscribersCount)
	s.True(got.IsSubscribed)
}

func (s *UserServiceTestSuite) TestGetChannelProfile_Errors() {
	_, err := s.service.GetChannelProfile(s.ctx, "  ", "user-1")
	s.Equal(http.StatusBadRequest, s.statusOf(err))

	s.mockChannel.On("GetChannelProfile", s.ctx, "ghost", "user-1").Return(nil, apperrors.ErrNotFound).Once()
	_, err = s.service.GetChannelProfile(s.ctx, "ghost", "user-1")
	s.Equal(http.StatusNotFound, s.statusOf(err))
}

func (s *UserServiceTestSuite) TestGetWatchHistory() {
	history := []domain.WatchedVideo{
		{VideoID: "v2", Title: "second", WatchedAt: time.Now()},
		{VideoID: "v1", Title: "first", WatchedAt: time.Now().Add(-time.Hour)},
	}
	s.mockChannel.On("GetWatchHistory", s.ctx, "user-1").Return(history, nil).Once()

	got, err := s.service.GetWatchHistory(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Len(got, 2)
	s.Equal("v2", got[0].VideoID)
}

func (s *UserServiceTestSuite) TestGetWatchHistory_EmptyIsNotNil() {
	s.mockChannel.On("GetWatchHistory", s.ctx, "user-1").Return(nil, nil).Once()

	got, err := s.service.GetWatchHistory(s.ctx, "user-1")
	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}
