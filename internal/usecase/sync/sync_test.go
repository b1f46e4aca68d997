package sync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mauirilio/etf-tracker/internal/domain/etf"
	historyMock "github.com/mauirilio/etf-tracker/internal/infrastructure/postgres/history/mock"
	snapshotMock "github.com/mauirilio/etf-tracker/internal/infrastructure/postgres/snapshot/mock"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/sosovalue"
	sosovalueMock "github.com/mauirilio/etf-tracker/internal/infrastructure/sosovalue/mock"
	loggerMock "github.com/mauirilio/etf-tracker/pkg/logger/mock"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 14, 30, 0, 0, time.FixedZone("UTC+2", 2*3600))
}

func newTestUsecase(
	provider *sosovalueMock.MockClient,
	snapshotRepo *snapshotMock.MockSnapshotRepository,
	historyRepo *historyMock.MockHistoryRepository,
	logger *loggerMock.MockInterface,
) *Usecase {
	uc := NewUsecase(provider, snapshotRepo, historyRepo, logger)
	uc.nowFn = fixedNow
	return uc
}

func decodeSnapshotItems(t *testing.T, payload string) []sosovalue.SnapshotItem {
	t.Helper()
	var items []sosovalue.SnapshotItem
	err := json.Unmarshal([]byte(payload), &items)
	assert.NoError(t, err)
	return items
}

func TestUsecase_SyncSnapshots(t *testing.T) {
	// 2024-03-15 14:30 UTC+2 is 12:30 UTC, so the run day is the 15th
	runDay := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		mockFn   func(t *testing.T, provider *sosovalueMock.MockClient, snapshotRepo *snapshotMock.MockSnapshotRepository, logger *loggerMock.MockInterface)
		assertFn func(t *testing.T, count int, err error)
	}{
		{
			name: "normalizes heterogeneous numerics and stamps the run day",
			mockFn: func(t *testing.T, provider *sosovalueMock.MockClient, snapshotRepo *snapshotMock.MockSnapshotRepository, logger *loggerMock.MockInterface) {
				items := decodeSnapshotItems(t, `[
					{"ticker":"IBIT","institute":"BlackRock","totalNetInflow":15300000000,"dailyNetInflow":"12.5M","netAssets":{"value":"1.5B"},"volume":null,"marketPrice":"40.12"}
				]`)
				provider.EXPECT().CurrentMetrics(gomock.Any(), "us-btc-spot").Return(items, nil)

				snapshotRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *etf.Snapshot) error {
						assert.Equal(t, "IBIT", s.Ticker)
						assert.Equal(t, "BlackRock", s.Institute)
						assert.Equal(t, etf.AssetBTC, s.AssetType)
						assert.Equal(t, runDay, s.Date)
						assert.Equal(t, 15.3e9, s.TotalNetInflow)
						assert.Equal(t, 12.5e6, s.DailyNetInflow)
						assert.Equal(t, 1.5e9, s.NetAssets)
						assert.Equal(t, float64(0), s.Volume)
						assert.Equal(t, 40.12, s.MarketPrice)
						assert.JSONEq(t, `{"ticker":"IBIT","institute":"BlackRock","totalNetInflow":15300000000,"dailyNetInflow":"12.5M","netAssets":{"value":"1.5B"},"volume":null,"marketPrice":"40.12"}`, string(s.RawJSON))
						return nil
					})
				logger.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, count int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, count)
			},
		},
		{
			name: "provider failure writes nothing",
			mockFn: func(t *testing.T, provider *sosovalueMock.MockClient, snapshotRepo *snapshotMock.MockSnapshotRepository, logger *loggerMock.MockInterface) {
				provider.EXPECT().CurrentMetrics(gomock.Any(), "us-btc-spot").
					Return(nil, &sosovalue.APIError{Code: 4001, Message: "invalid api key"})
			},
			assertFn: func(t *testing.T, count int, err error) {
				assert.Error(t, err)
				assert.Equal(t, 0, count)
			},
		},
		{
			name: "a failing row is skipped, the rest of the batch proceeds",
			mockFn: func(t *testing.T, provider *sosovalueMock.MockClient, snapshotRepo *snapshotMock.MockSnapshotRepository, logger *loggerMock.MockInterface) {
				items := decodeSnapshotItems(t, `[
					{"ticker":"IBIT","totalNetInflow":1},
					{"ticker":"FBTC","totalNetInflow":2},
					{"ticker":"GBTC","totalNetInflow":3}
				]`)
				provider.EXPECT().CurrentMetrics(gomock.Any(), "us-btc-spot").Return(items, nil)

				gomock.InOrder(
					snapshotRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
					snapshotRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected")),
					snapshotRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
				)
				logger.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
				logger.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, count int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2, count)
			},
		},
		{
			name: "empty list is a successful no-op",
			mockFn: func(t *testing.T, provider *sosovalueMock.MockClient, snapshotRepo *snapshotMock.MockSnapshotRepository, logger *loggerMock.MockInterface) {
				provider.EXPECT().CurrentMetrics(gomock.Any(), "us-btc-spot").Return([]sosovalue.SnapshotItem{}, nil)
				logger.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, count int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, count)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := sosovalueMock.NewMockClient(ctrl)
			snapshotRepo := snapshotMock.NewMockSnapshotRepository(ctrl)
			historyRepo := historyMock.NewMockHistoryRepository(ctrl)
			logger := loggerMock.NewMockInterface(ctrl)

			testCase.mockFn(t, provider, snapshotRepo, logger)

			uc := newTestUsecase(provider, snapshotRepo, historyRepo, logger)
			count, err := uc.SyncSnapshots(context.Background(), etf.AssetBTC)
			testCase.assertFn(t, count, err)
		})
	}
}

func TestUsecase_SyncHistory(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(t *testing.T, provider *sosovalueMock.MockClient, historyRepo *historyMock.MockHistoryRepository, logger *loggerMock.MockInterface)
		assertFn func(t *testing.T, count int, err error)
	}{
		{
			name: "dates are stored verbatim and both inflow columns carry the day's flow",
			mockFn: func(t *testing.T, provider *sosovalueMock.MockClient, historyRepo *historyMock.MockHistoryRepository, logger *loggerMock.MockInterface) {
				provider.EXPECT().HistoricalInflow(gomock.Any(), "us-eth-spot", "day").Return([]sosovalue.HistoryItem{
					{Date: "2024-01-02", TotalNetInflow: float64(625_000_000), CumulativeNetInflow: "1.2B"},
				}, nil)

				historyRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *etf.HistoryPoint) error {
						assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), p.Date)
						assert.Equal(t, etf.AssetETH, p.AssetType)
						assert.Equal(t, 625e6, p.TotalNetInflow)
						assert.Equal(t, 625e6, p.DailyNetInflow)
						assert.Equal(t, 1.2e9, p.CumulativeNetInflow)
						assert.Equal(t, float64(0), p.TotalNetAssets)
						return nil
					})
				logger.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, count int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, count)
			},
		},
		{
			name: "unparseable dates are skipped with a warning",
			mockFn: func(t *testing.T, provider *sosovalueMock.MockClient, historyRepo *historyMock.MockHistoryRepository, logger *loggerMock.MockInterface) {
				provider.EXPECT().HistoricalInflow(gomock.Any(), "us-eth-spot", "day").Return([]sosovalue.HistoryItem{
					{Date: "01/02/2024", TotalNetInflow: float64(1)},
					{Date: "2024-01-03", TotalNetInflow: float64(2)},
				}, nil)

				historyRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
				logger.EXPECT().WarnContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
				logger.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, count int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, count)
			},
		},
		{
			name: "provider failure writes nothing",
			mockFn: func(t *testing.T, provider *sosovalueMock.MockClient, historyRepo *historyMock.MockHistoryRepository, logger *loggerMock.MockInterface) {
				provider.EXPECT().HistoricalInflow(gomock.Any(), "us-eth-spot", "day").
					Return(nil, errors.New("connection refused"))
			},
			assertFn: func(t *testing.T, count int, err error) {
				assert.Error(t, err)
				assert.Equal(t, 0, count)
			},
		},
		{
			name: "a failing day is skipped, the rest proceed",
			mockFn: func(t *testing.T, provider *sosovalueMock.MockClient, historyRepo *historyMock.MockHistoryRepository, logger *loggerMock.MockInterface) {
				provider.EXPECT().HistoricalInflow(gomock.Any(), "us-eth-spot", "day").Return([]sosovalue.HistoryItem{
					{Date: "2024-01-01", TotalNetInflow: float64(1)},
					{Date: "2024-01-02", TotalNetInflow: float64(2)},
				}, nil)

				gomock.InOrder(
					historyRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected")),
					historyRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
				)
				logger.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
				logger.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, count int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, count)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := sosovalueMock.NewMockClient(ctrl)
			snapshotRepo := snapshotMock.NewMockSnapshotRepository(ctrl)
			historyRepo := historyMock.NewMockHistoryRepository(ctrl)
			logger := loggerMock.NewMockInterface(ctrl)

			testCase.mockFn(t, provider, historyRepo, logger)

			uc := newTestUsecase(provider, snapshotRepo, historyRepo, logger)
			count, err := uc.SyncHistory(context.Background(), etf.AssetETH)
			testCase.assertFn(t, count, err)
		})
	}
}

func TestUsecase_RunFullSync(t *testing.T) {
	t.Run("covers every asset class, snapshots before history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := sosovalueMock.NewMockClient(ctrl)
		snapshotRepo := snapshotMock.NewMockSnapshotRepository(ctrl)
		historyRepo := historyMock.NewMockHistoryRepository(ctrl)
		logger := loggerMock.NewMockInterface(ctrl)

		gomock.InOrder(
			provider.EXPECT().CurrentMetrics(gomock.Any(), "us-btc-spot").Return(nil, nil),
			provider.EXPECT().CurrentMetrics(gomock.Any(), "us-eth-spot").Return(nil, nil),
			provider.EXPECT().CurrentMetrics(gomock.Any(), "us-sol-spot").Return(nil, nil),
			provider.EXPECT().HistoricalInflow(gomock.Any(), "us-btc-spot", "day").Return(nil, nil),
			provider.EXPECT().HistoricalInflow(gomock.Any(), "us-eth-spot", "day").Return(nil, nil),
			provider.EXPECT().HistoricalInflow(gomock.Any(), "us-sol-spot", "day").Return(nil, nil),
		)
		logger.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
		logger.EXPECT().InfoContext(gomock.Any(), gomock.Any()).AnyTimes()

		uc := newTestUsecase(provider, snapshotRepo, historyRepo, logger)
		uc.RunFullSync(context.Background())
	})

	t.Run("a failing asset class does not block the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := sosovalueMock.NewMockClient(ctrl)
		snapshotRepo := snapshotMock.NewMockSnapshotRepository(ctrl)
		historyRepo := historyMock.NewMockHistoryRepository(ctrl)
		logger := loggerMock.NewMockInterface(ctrl)

		gomock.InOrder(
			provider.EXPECT().CurrentMetrics(gomock.Any(), "us-btc-spot").
				Return(nil, errors.New("upstream timeout")),
			provider.EXPECT().CurrentMetrics(gomock.Any(), "us-eth-spot").Return(nil, nil),
			provider.EXPECT().CurrentMetrics(gomock.Any(), "us-sol-spot").Return(nil, nil),
			provider.EXPECT().HistoricalInflow(gomock.Any(), "us-btc-spot", "day").Return(nil, nil),
			provider.EXPECT().HistoricalInflow(gomock.Any(), "us-eth-spot", "day").Return(nil, nil),
			provider.EXPECT().HistoricalInflow(gomock.Any(), "us-sol-spot", "day").Return(nil, nil),
		)
		logger.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
		logger.EXPECT().InfoContext(gomock.Any(), gomock.Any()).AnyTimes()
		logger.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

		uc := newTestUsecase(provider, snapshotRepo, historyRepo, logger)
		uc.RunFullSync(context.Background())
	})
}
