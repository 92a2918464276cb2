// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

const (
	testHashKey    = "test-hash-key"
	testGoodToken  = "good.jwt.token"
	testAccountID  = int64(42)
	testAppVersion = "v1.2.3"
)

// mockAuthService implements service.AuthService. Each method field can be
// overridden per test case; ParseToken accepts testGoodToken by default.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: testGoodToken, AccountID: user.AccountID}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		if tokenString != testGoodToken {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{SignedString: tokenString, AccountID: testAccountID}, nil
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockRecordService struct {
	getProfileFn   func(ctx context.Context, accountID int64) (models.FitnessProfile, error)
	saveProfileFn  func(ctx context.Context, profile models.FitnessProfile) (models.FitnessProfile, error)
	listDaysFn     func(ctx context.Context, accountID int64) ([]models.WorkoutDaySnapshot, error)
	uploadDaysFn   func(ctx context.Context, accountID int64, days []models.WorkoutDaySnapshot) error
	listSplitsFn   func(ctx context.Context, accountID int64) ([]models.SplitSnapshot, error)
	uploadSplitsFn func(ctx context.Context, accountID int64, splits []models.SplitSnapshot) error
}

func (m *mockRecordService) GetProfile(ctx context.Context, accountID int64) (models.FitnessProfile, error) {
	return m.getProfileFn(ctx, accountID)
}

func (m *mockRecordService) SaveProfile(ctx context.Context, profile models.FitnessProfile) (models.FitnessProfile, error) {
	return m.saveProfileFn(ctx, profile)
}

func (m *mockRecordService) ListDays(ctx context.Context, accountID int64) ([]models.WorkoutDaySnapshot, error) {
	return m.listDaysFn(ctx, accountID)
}

func (m *mockRecordService) UploadDays(ctx context.Context, accountID int64, days []models.WorkoutDaySnapshot) error {
	return m.uploadDaysFn(ctx, accountID, days)
}

func (m *mockRecordService) ListSplits(ctx context.Context, accountID int64) ([]models.SplitSnapshot, error) {
	return m.listSplitsFn(ctx, accountID)
}

func (m *mockRecordService) UploadSplits(ctx context.Context, accountID int64, splits []models.SplitSnapshot) error {
	return m.uploadSplitsFn(ctx, accountID, splits)
}

type mockPreferenceService struct {
	getFn      func(ctx context.Context, accountID int64) (models.PreferenceDocument, error)
	putFn      func(ctx context.Context, accountID int64, prefs models.FitnessPreferences, baseRevision int64) (int64, error)
	revisionFn func(ctx context.Context, accountID int64) (int64, error)
}

func (m *mockPreferenceService) Get(ctx context.Context, accountID int64) (models.PreferenceDocument, error) {
	return m.getFn(ctx, accountID)
}

func (m *mockPreferenceService) Put(ctx context.Context, accountID int64, prefs models.FitnessPreferences, baseRevision int64) (int64, error) {
	return m.putFn(ctx, accountID, prefs, baseRevision)
}

func (m *mockPreferenceService) Revision(ctx context.Context, accountID int64) (int64, error) {
	return m.revisionFn(ctx, accountID)
}

type mockPublicRecordService struct {
	publishFn func(ctx context.Context, accountID int64, day models.WorkoutDaySnapshot) (string, error)
	getFn     func(ctx context.Context, recordID string) (models.WorkoutDaySnapshot, error)
}

func (m *mockPublicRecordService) Publish(ctx context.Context, accountID int64, day models.WorkoutDaySnapshot) (string, error) {
	return m.publishFn(ctx, accountID, day)
}

func (m *mockPublicRecordService) Get(ctx context.Context, recordID string) (models.WorkoutDaySnapshot, error) {
	return m.getFn(ctx, recordID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newTestHandler fills unset services with defaults and enables upload hash
// verification with testHashKey.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: testAppVersion}
	}

	cfg := config.ServerConfig{
		App:    config.App{HashKey: testHashKey},
		Server: config.Server{MetricsEnabled: true},
	}
	return NewHandler(svcs, cfg, logger.Nop())
}

// withAccount attaches the account id the auth middleware would store.
func withAccount(r *http.Request, accountID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.AccountIDCtxKey, accountID))
}

func testDay(date, name string) models.WorkoutDaySnapshot {
	return models.WorkoutDaySnapshot{
		DateKey:   date,
		DayName:   name,
		SplitName: "PPL",
		Exercises: []models.ExerciseSnapshot{{Position: 1, Name: "Bench press", Sets: []models.ExerciseSet{{Position: 1, Reps: 8, WeightKg: 60}}}},
	}
}
