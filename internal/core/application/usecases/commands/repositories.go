// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcelflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// DemandRepoFactory provides access to the demand repository within a transaction.
	DemandRepoFactory interface {
		DemandRepository() ports.DemandRepository
	}

	// MissionRepoFactory provides access to the mission repository within a transaction.
	MissionRepoFactory interface {
		MissionRepository() ports.MissionRepository
	}

	// TrackingRepoFactory provides access to the tracking ledger within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// ParcelUoW manages transactions for parcel-and-ledger operations.
	// Every parcel status change appends a ledger entry in the same
	// transaction, so the two repositories always travel together.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		TrackingRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// DemandUoW manages transactions for demand operations.
	// Demand creation reads parcels to validate ownership and status.
	DemandUoW interface {
		TxManager
		DemandRepoFactory
		ParcelRepoFactory
	}

	// DemandUoWFactory creates new demand unit of work instances.
	DemandUoWFactory interface {
		Create() DemandUoW
	}

	// MissionStateUoW manages transactions for mission-only state changes
	// (accept, reject, start).
	MissionStateUoW interface {
		TxManager
		MissionRepoFactory
	}

	// MissionStateUoWFactory creates new mission state unit of work instances.
	MissionStateUoWFactory interface {
		Create() MissionStateUoW
	}

	// MissionUoW manages transactions that span the whole assignment
	// boundary: missions, their demands and parcels, the ledger, and the
	// driver pool.
	MissionUoW interface {
		TxManager
		MissionRepoFactory
		DemandRepoFactory
		ParcelRepoFactory
		TrackingRepoFactory
		DriverRepoFactory
	}

	// MissionUoWFactory creates new mission unit of work instances.
	MissionUoWFactory interface {
		Create() MissionUoW
	}
)
