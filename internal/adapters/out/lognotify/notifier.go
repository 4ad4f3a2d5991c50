// Package lognotify provides a Notifier that writes events to the
// structured log instead of a message broker. It backs local development
// and deployments that run without RabbitMQ.
package lognotify

import (
	"context"
	"log/slog"

	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/core/domain/model/tracking"
)

// Notifier implements ports.Notifier over slog.
type Notifier struct {
	log *slog.Logger
}

// NewNotifier creates a log-backed notifier.
func NewNotifier(log *slog.Logger) *Notifier {
	return &Notifier{log: log.With("component", "notifier")}
}

// MissionCreated logs a freshly assigned mission.
func (n *Notifier) MissionCreated(_ context.Context, m *mission.Mission) error {
	if err := m.Validate(); err != nil {
		return err
	}
	n.log.Info("mission created",
		"missionId", m.ID().String(),
		"number", m.Number(),
		"kind", m.Kind().String(),
		"driverId", m.Driver().String(),
		"parcels", len(m.ParcelIDs()))
	return nil
}

// MissionStatusChanged logs a mission status transition.
func (n *Notifier) MissionStatusChanged(_ context.Context, m *mission.Mission) error {
	if err := m.Validate(); err != nil {
		return err
	}
	n.log.Info("mission status changed",
		"missionId", m.ID().String(),
		"number", m.Number(),
		"status", m.Status().String(),
		"reason", m.StatusReason())
	return nil
}

// MissionReminder logs an overdue pending mission.
func (n *Notifier) MissionReminder(_ context.Context, m *mission.Mission) error {
	if err := m.Validate(); err != nil {
		return err
	}
	n.log.Warn("mission still pending past schedule",
		"missionId", m.ID().String(),
		"number", m.Number(),
		"driverId", m.Driver().String(),
		"scheduledAt", m.ScheduledAt())
	return nil
}

// ParcelStatusChanged logs a parcel status change.
func (n *Notifier) ParcelStatusChanged(_ context.Context, entry *tracking.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	n.log.Info("parcel status changed",
		"parcelId", entry.Parcel().String(),
		"status", entry.Status().String(),
		"override", entry.IsOverride())
	return nil
}
