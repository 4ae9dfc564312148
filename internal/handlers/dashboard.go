package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"properly-backend/internal/contact"
	"properly-backend/internal/transport"
)

type DashboardResponse struct {
	Counts         DashboardCounts      `json:"counts"`
	RecentContacts []contact.Submission `json:"recent_contacts"`
}

type DashboardCounts struct {
	BlogPosts          int64 `json:"blog_posts"`
	Services           int64 `json:"services"`
	Testimonials       int64 `json:"testimonials"`
	ContactSubmissions int64 `json:"contact_submissions"`
	NewSubmissions     int64 `json:"new_submissions"`
}

// AdminDashboard aggregates the counts shown on the dashboard landing
// page plus the five most recent contact submissions.
func (s *Server) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	var resp DashboardResponse
	var err error

	if resp.Counts.BlogPosts, err = s.Cols.BlogPosts.CountDocuments(ctx, bson.M{}); err != nil {
		s.dashboardError(w, log, err)
		return
	}
	if resp.Counts.Services, err = s.Cols.Services.CountDocuments(ctx, bson.M{}); err != nil {
		s.dashboardError(w, log, err)
		return
	}
	if resp.Counts.Testimonials, err = s.Cols.Testimonials.CountDocuments(ctx, bson.M{}); err != nil {
		s.dashboardError(w, log, err)
		return
	}
	if resp.Counts.ContactSubmissions, err = s.Cols.ContactSubmissions.CountDocuments(ctx, bson.M{}); err != nil {
		s.dashboardError(w, log, err)
		return
	}
	if resp.Counts.NewSubmissions, err = s.Cols.ContactSubmissions.CountDocuments(ctx, bson.M{"status": contact.StatusNew}); err != nil {
		s.dashboardError(w, log, err)
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(5)
	cur, err := s.Cols.ContactSubmissions.Find(ctx, bson.M{}, opts)
	if err != nil {
		s.dashboardError(w, log, err)
		return
	}
	defer cur.Close(ctx)

	resp.RecentContacts = make([]contact.Submission, 0, 5)
	if err := cur.All(ctx, &resp.RecentContacts); err != nil {
		s.dashboardError(w, log, err)
		return
	}

	log.Info("admin dashboard: ok")
	transport.WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) dashboardError(w http.ResponseWriter, log *slog.Logger, err error) {
	log.Error("admin dashboard: database error", slog.String("error", err.Error()))
	transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
}
