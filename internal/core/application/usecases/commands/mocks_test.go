package commands_test

import (
	"context"
	"time"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/demand"
	"parcelflow/internal/core/domain/model/driver"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/domain/model/tracking"
	"parcelflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*parcel.Parcel, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllByIDsForUpdate(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllByMission(ctx context.Context, missionID kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockDemandRepository struct{ mock.Mock }

func (m *MockDemandRepository) Add(ctx context.Context, d *demand.Demand) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDemandRepository) Update(ctx context.Context, d *demand.Demand) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDemandRepository) Get(ctx context.Context, id kernel.UUID) (*demand.Demand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*demand.Demand), args.Error(1)
}

func (m *MockDemandRepository) GetAllByIDsForUpdate(ctx context.Context, ids []kernel.UUID) ([]*demand.Demand, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*demand.Demand), args.Error(1)
}

func (m *MockDemandRepository) GetAllAssignable(ctx context.Context, agency string) ([]*demand.Demand, error) {
	args := m.Called(ctx, agency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*demand.Demand), args.Error(1)
}

type MockMissionRepository struct{ mock.Mock }

func (m *MockMissionRepository) Add(ctx context.Context, a *mission.Mission) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockMissionRepository) Update(ctx context.Context, a *mission.Mission) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockMissionRepository) Get(ctx context.Context, id kernel.UUID) (*mission.Mission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mission.Mission), args.Error(1)
}

func (m *MockMissionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*mission.Mission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mission.Mission), args.Error(1)
}

func (m *MockMissionRepository) GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*mission.Mission, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mission.Mission), args.Error(1)
}

func (m *MockMissionRepository) GetAllPendingBefore(ctx context.Context, t time.Time) ([]*mission.Mission, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mission.Mission), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, entry *tracking.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTrackingRepository) GetAllByParcel(ctx context.Context, parcelID kernel.UUID) ([]*tracking.Entry, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.Entry), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllActiveByAgency(ctx context.Context, agency string) ([]*driver.Driver, error) {
	args := m.Called(ctx, agency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

// MockUoW satisfies every command UoW interface so each test wires only the
// repositories its handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) DemandRepository() ports.DemandRepository {
	args := m.Called()
	return args.Get(0).(ports.DemandRepository)
}

func (m *MockUoW) MissionRepository() ports.MissionRepository {
	args := m.Called()
	return args.Get(0).(ports.MissionRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockDemandUoWFactory struct{ mock.Mock }

func (m *MockDemandUoWFactory) Create() commands.DemandUoW {
	args := m.Called()
	return args.Get(0).(commands.DemandUoW)
}

type MockMissionStateUoWFactory struct{ mock.Mock }

func (m *MockMissionStateUoWFactory) Create() commands.MissionStateUoW {
	args := m.Called()
	return args.Get(0).(commands.MissionStateUoW)
}

type MockMissionUoWFactory struct{ mock.Mock }

func (m *MockMissionUoWFactory) Create() commands.MissionUoW {
	args := m.Called()
	return args.Get(0).(commands.MissionUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) MissionCreated(ctx context.Context, a *mission.Mission) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockNotifier) MissionStatusChanged(ctx context.Context, a *mission.Mission) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockNotifier) MissionReminder(ctx context.Context, a *mission.Mission) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockNotifier) ParcelStatusChanged(ctx context.Context, entry *tracking.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
