package handlers

import (
	"net/http"

	"github.com/stardental/clinic-backend/internal/domain/entities"
)

// DashboardHandler serves the admin overview counts
type DashboardHandler struct {
	appointments AppointmentService
	blog         BlogService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(appointments AppointmentService, blog BlogService) *DashboardHandler {
	return &DashboardHandler{
		appointments: appointments,
		blog:         blog,
	}
}

type dashboardStats struct {
	TotalAppointments   int                     `json:"total_appointments"`
	PendingAppointments int                     `json:"pending_appointments"`
	TotalPosts          int                     `json:"total_posts"`
	RecentAppointments  []*entities.Appointment `json:"recent_appointments"`
}

// Overview handles GET /api/admin/dashboard
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointments.List(r.Context(), "")
	if err != nil {
		respondWithServiceError(w, r, err, "failed to load dashboard")
		return
	}

	recent, err := h.appointments.ListRecent(r.Context(), 3)
	if err != nil {
		respondWithServiceError(w, r, err, "failed to load dashboard")
		return
	}

	posts, err := h.blog.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, "failed to load dashboard")
		return
	}

	stats := dashboardStats{
		TotalAppointments:  len(appointments),
		TotalPosts:         len(posts),
		RecentAppointments: recent,
	}
	for _, appointment := range appointments {
		if appointment.Status == entities.AppointmentStatusPending {
			stats.PendingAppointments++
		}
	}

	respondWithJSON(w, http.StatusOK, stats)
}
