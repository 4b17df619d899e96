package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stardental/clinic-backend/internal/api/handlers"
	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestDashboardHandler_Overview(t *testing.T) {
	appointments := &stubAppointmentService{appointments: []*entities.Appointment{
		{ID: "a-1", Status: entities.AppointmentStatusPending},
		{ID: "a-2", Status: entities.AppointmentStatusConfirmed},
		{ID: "a-3", Status: entities.AppointmentStatusPending},
		{ID: "a-4", Status: entities.AppointmentStatusCompleted},
	}}
	blog := &stubBlogService{posts: []*entities.BlogPost{
		{ID: "p-1"}, {ID: "p-2"},
	}}
	handler := handlers.NewDashboardHandler(appointments, blog)

	req := httptest.NewRequest("GET", "/api/admin/dashboard", nil)
	w := httptest.NewRecorder()

	handler.Overview(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		TotalAppointments   int                     `json:"total_appointments"`
		PendingAppointments int                     `json:"pending_appointments"`
		TotalPosts          int                     `json:"total_posts"`
		RecentAppointments  []*entities.Appointment `json:"recent_appointments"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 4, response.TotalAppointments)
	assert.Equal(t, 2, response.PendingAppointments)
	assert.Equal(t, 2, response.TotalPosts)
	assert.Len(t, response.RecentAppointments, 3)
}
