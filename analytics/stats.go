// Package analytics reduces fetched appointment and payment collections into
// the dashboard's derived numbers. Every function is pure: no I/O, no caching,
// inputs are never mutated, and results are recomputed on every call.
package analytics

import (
	"strings"
	"time"

	"therapydesk-backend/models"
)

const dateLayout = "2006-01-02"

// CalculateStats computes the dashboard summary for the given snapshot,
// evaluated against the current wall clock.
func CalculateStats(appointments []models.Appointment, payments []models.Payment) models.DashboardStats {
	return CalculateStatsAt(appointments, payments, time.Now())
}

// CalculateStatsAt is CalculateStats with an injected clock.
//
// Active clients are counted by distinct client_name strings, not by a stable
// client id, so two clients sharing a name collapse into one. That matches the
// numbers the dashboard has always shown; changing it would silently shift
// every historical comparison.
func CalculateStatsAt(appointments []models.Appointment, payments []models.Payment, now time.Time) models.DashboardStats {
	today := now.Format(dateLayout)

	stats := models.DashboardStats{
		TotalAppointments: len(appointments),
	}

	clients := make(map[string]struct{})
	for _, a := range appointments {
		clients[a.Metadata.ClientName] = struct{}{}
		if a.Metadata.Status == models.AppointmentStatusCompleted {
			stats.CompletedSessions++
		}
		// Prefix match: a malformed date simply never counts as today.
		if strings.HasPrefix(a.Metadata.AppointmentDate, today) {
			stats.TodaysAppointments++
		}
	}
	stats.ActiveClients = len(clients)

	for _, p := range payments {
		switch p.Metadata.Status {
		case models.PaymentStatusPaid:
			stats.TotalRevenue += p.Metadata.Amount
		case models.PaymentStatusPending:
			stats.PendingPayments++
		}
	}

	return stats
}
