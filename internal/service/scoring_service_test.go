package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yourusername/tryout-api/internal/domain/entity"
	apperrors "github.com/yourusername/tryout-api/internal/pkg/errors"
	"github.com/yourusername/tryout-api/internal/service/scoring"
)

// ============================================================================
// Mocks for ScoringService
// ============================================================================

// MockResultRepoForScoring implements repository.ResultRepository
type MockResultRepoForScoring struct {
	mock.Mock
}

func (m *MockResultRepoForScoring) DeletePackageResults(tx *gorm.DB, packageID uint) error {
	args := m.Called(tx, packageID)
	return args.Error(0)
}

func (m *MockResultRepoForScoring) SaveSubtestResults(tx *gorm.DB, results []entity.SubtestResult) error {
	args := m.Called(tx, results)
	return args.Error(0)
}

func (m *MockResultRepoForScoring) SaveLeaderboard(tx *gorm.DB, entries []entity.LeaderboardEntry) error {
	args := m.Called(tx, entries)
	return args.Error(0)
}

func (m *MockResultRepoForScoring) GetLeaderboard(packageID uint) ([]entity.LeaderboardEntry, error) {
	args := m.Called(packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LeaderboardEntry), args.Error(1)
}

func (m *MockResultRepoForScoring) GetSubtestResults(subtestID uint) ([]entity.SubtestResult, error) {
	args := m.Called(subtestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SubtestResult), args.Error(1)
}

func (m *MockResultRepoForScoring) GetUserPackageResults(packageID, userID uint) ([]entity.SubtestResult, error) {
	args := m.Called(packageID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SubtestResult), args.Error(1)
}

// fakeCache is an in-memory stand-in for the Redis cache repo.
type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Set(key string, value interface{}, expiration time.Duration) error {
	c.data[key] = []byte(value.(string))
	return nil
}

func (c *fakeCache) Get(key string) (string, error) {
	v, ok := c.data[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return string(v), nil
}

func (c *fakeCache) Delete(key string) error {
	delete(c.data, key)
	return nil
}

func (c *fakeCache) SetJSON(key string, value interface{}, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *fakeCache) GetJSON(key string, dest interface{}) error {
	raw, ok := c.data[key]
	if !ok {
		return apperrors.ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (c *fakeCache) Exists(key string) (bool, error) {
	_, ok := c.data[key]
	return ok, nil
}

// ============================================================================
// Tests for snapshot and row building
// ============================================================================

func snapshotTestPackage() *entity.Package {
	choice := uint(11)
	return &entity.Package{
		ID: 7,
		Subtests: []entity.Subtest{
			{
				ID:        31,
				PackageID: 7,
				Code:      "pu",
				Questions: []entity.Question{
					{
						ID:              101,
						SubtestID:       31,
						CorrectChoiceID: &choice,
						Answers: []entity.UserAnswer{
							{ID: 1, UserID: 1, QuestionID: 101, ChoiceID: &choice,
								User: entity.User{ID: 1, Username: "alice", Email: "alice@example.com"}},
						},
					},
				},
			},
		},
	}
}

func TestBuildSnapshot_CopiesEntityGraph(t *testing.T) {
	snapshot, err := buildSnapshot(snapshotTestPackage())

	require.NoError(t, err)
	require.Len(t, snapshot.Subtests, 1)
	assert.Equal(t, uint(31), snapshot.Subtests[0].ID)
	assert.Equal(t, "pu", snapshot.Subtests[0].Code)

	require.Len(t, snapshot.Subtests[0].Questions, 1)
	q := snapshot.Subtests[0].Questions[0]
	require.NotNil(t, q.CorrectChoiceID)
	assert.Equal(t, uint(11), *q.CorrectChoiceID)

	require.Len(t, q.Answers, 1)
	assert.Equal(t, "alice", q.Answers[0].Username)
	assert.Equal(t, "alice@example.com", q.Answers[0].Email)
}

func TestBuildSnapshot_UnknownUserFailsWholeRun(t *testing.T) {
	pkg := snapshotTestPackage()
	// The answer's user was never loaded, so the reference is dangling.
	pkg.Subtests[0].Questions[0].Answers[0].User = entity.User{}

	snapshot, err := buildSnapshot(pkg)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownUser)
	assert.Nil(t, snapshot)
}

func TestBuildResultRows_RanksFollowLeaderboardOrder(t *testing.T) {
	result := &scoring.PackageResult{
		PackageID: 7,
		Subtests: []scoring.SubtestTable{
			{
				SubtestID:   31,
				Code:        "pu",
				QuestionIDs: []uint{101},
				Scores: map[uint]float64{101: 1000},
				Rows: map[uint]*scoring.SubtestResult{
					1: {UserID: 1, Username: "alice", Correct: 1, Score: 1000, Breakdown: []string{"1"}},
					2: {UserID: 2, Username: "budi", Incorrect: 1, Score: 0, Breakdown: []string{"0"}},
				},
			},
		},
		Leaderboard: []scoring.LeaderboardEntry{
			{UserID: 1, Username: "alice", TotalScore: 1000, SubtestCount: 1, AverageScore: 1000},
			{UserID: 2, Username: "budi", TotalScore: 0, SubtestCount: 1, AverageScore: 0},
		},
	}

	subtestRows, leaderboardRows := buildResultRows(7, result)

	require.Len(t, subtestRows, 2)
	byUser := make(map[uint]entity.SubtestResult, len(subtestRows))
	for _, row := range subtestRows {
		assert.Equal(t, uint(7), row.PackageID)
		assert.Equal(t, uint(31), row.SubtestID)
		byUser[row.UserID] = row
	}
	assert.Equal(t, entity.StringArray{"1"}, byUser[1].Breakdown)
	assert.Equal(t, entity.StringArray{"0"}, byUser[2].Breakdown)

	require.Len(t, leaderboardRows, 2)
	assert.Equal(t, 1, leaderboardRows[0].Rank)
	assert.Equal(t, "alice", leaderboardRows[0].Username)
	assert.Equal(t, 2, leaderboardRows[1].Rank)
}

// ============================================================================
// Tests for leaderboard reads
// ============================================================================

func TestScoringService_GetLeaderboard_WarmsCacheOnMiss(t *testing.T) {
	mockResultRepo := new(MockResultRepoForScoring)
	cache := newFakeCache()

	stored := []entity.LeaderboardEntry{
		{PackageID: 7, UserID: 1, Username: "alice", AverageScore: 500, Rank: 1},
	}
	mockResultRepo.On("GetLeaderboard", uint(7)).Return(stored, nil).Once()

	svc := NewScoringService(nil, mockResultRepo, cache, nil, nil)

	entries, err := svc.GetLeaderboard(7)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Username)

	// Second read is served from the cache; the repo expectation is Once.
	entries, err = svc.GetLeaderboard(7)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Username)

	mockResultRepo.AssertExpectations(t)
}

func TestScoringService_GetLeaderboard_EmptyResultNotCached(t *testing.T) {
	mockResultRepo := new(MockResultRepoForScoring)
	cache := newFakeCache()

	mockResultRepo.On("GetLeaderboard", uint(7)).Return([]entity.LeaderboardEntry{}, nil).Twice()

	svc := NewScoringService(nil, mockResultRepo, cache, nil, nil)

	entries, err := svc.GetLeaderboard(7)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// An unscored package keeps hitting the repo rather than pinning an
	// empty list in the cache.
	entries, err = svc.GetLeaderboard(7)
	require.NoError(t, err)
	assert.Empty(t, entries)

	mockResultRepo.AssertExpectations(t)
}

func TestScoringService_GetSubtestResults_DelegatesToRepo(t *testing.T) {
	mockResultRepo := new(MockResultRepoForScoring)

	stored := []entity.SubtestResult{
		{SubtestID: 31, UserID: 1, Username: "alice", Score: 500, Breakdown: entity.StringArray{"1", "0"}},
	}
	mockResultRepo.On("GetSubtestResults", uint(31)).Return(stored, nil)

	svc := NewScoringService(nil, mockResultRepo, newFakeCache(), nil, nil)

	results, err := svc.GetSubtestResults(31)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entity.StringArray{"1", "0"}, results[0].Breakdown)
	mockResultRepo.AssertExpectations(t)
}
