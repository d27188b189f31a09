package transport

import (
	"net/http"
)

// GetDashboard handler
// @Summary Dashboard stats
// @Description Aggregate counts, capacity utilisation and alerts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} model.DashboardStats
// @Failure 500 {object} transport.ErrorResponse
// @Router /api/dashboard [get]
func (s *RestHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.DashboardApp.GetStats(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
