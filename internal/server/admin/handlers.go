package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/server/metrics"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type switchView struct {
	Owner         string        `json:"owner"`
	Interval      int64         `json:"interval"`
	GracePeriod   int64         `json:"gracePeriod"`
	LastCheckIn   int64         `json:"lastCheckIn"`
	Deadline      int64         `json:"deadline"`
	Height        int64         `json:"height"`
	Active        bool          `json:"active"`
	Triggered     bool          `json:"triggered"`
	TriggeredAt   *int64        `json:"triggeredAt,omitempty"`
	Balance       int64         `json:"balance"`
	TokenID       int64         `json:"tokenId,omitempty"`
	Beneficiaries []beneficiary `json:"beneficiaries"`
}

type beneficiary struct {
	Recipient  string `json:"recipient"`
	Percentage int    `json:"percentage"`
}

type pageView struct {
	Page          int           `json:"page"`
	TotalCount    int           `json:"totalCount"`
	HasMore       bool          `json:"hasMore"`
	Beneficiaries []beneficiary `json:"beneficiaries"`
}

type tokenView struct {
	ID          int64  `json:"id"`
	Holder      string `json:"holder"`
	SwitchOwner string `json:"switchOwner"`
	URI         string `json:"uri"`
}

type errorView struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := common.CodeOf(err)
	msg := err.Error()
	status := http.StatusInternalServerError
	switch code {
	case common.CodeNotFound:
		status = http.StatusNotFound
	case common.CodeInvalidInput:
		status = http.StatusBadRequest
	default:
		s.logger.Error(r.Context(), "admin request failed", "path", r.URL.Path, "error", err,
			"request_id", chimw.GetReqID(r.Context()))
		msg = common.Message(common.CodeInternal)
		code = common.CodeInternal
	}
	writeJSON(w, status, errorView{Code: code, Message: msg})
}

func toBeneficiaries(list []models.Beneficiary) []beneficiary {
	out := make([]beneficiary, 0, len(list))
	for _, b := range list {
		out = append(out, beneficiary{Recipient: b.Recipient, Percentage: b.Percentage})
	}
	return out
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			s.logger.Warn(r.Context(), "readiness check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]int64{"height": s.readers.Switches.Height()})
}

func (s *Server) getSwitch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner := chi.URLParam(r, "owner")

	sw, err := s.readers.Switches.GetSwitch(ctx, owner)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	balance, err := s.readers.Vaults.GetBalance(ctx, owner)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view := switchView{
		Owner:         sw.Owner,
		Interval:      sw.Interval,
		GracePeriod:   sw.GracePeriod,
		LastCheckIn:   sw.LastCheckIn,
		Deadline:      sw.Deadline(),
		Height:        s.readers.Switches.Height(),
		Active:        sw.Status().Active,
		Triggered:     sw.Triggered,
		TriggeredAt:   sw.TriggeredAt,
		Balance:       balance,
		Beneficiaries: []beneficiary{},
	}

	list, err := s.readers.Beneficiaries.GetBeneficiaries(ctx, owner)
	switch {
	case err == nil:
		view.Beneficiaries = toBeneficiaries(list)
	case !errors.Is(err, common.ErrorNotFound):
		s.writeError(w, r, err)
		return
	}

	tok, err := s.readers.Tokens.GetTokenForSwitch(ctx, owner)
	switch {
	case err == nil:
		view.TokenID = tok.ID
	case !errors.Is(err, common.ErrorNotFound):
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) getBeneficiaries(w http.ResponseWriter, r *http.Request) {
	page := 0
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, r, common.ErrorInvalidInput)
			return
		}
		page = n
	}

	p, err := s.readers.Beneficiaries.GetBeneficiariesPage(r.Context(), chi.URLParam(r, "owner"), page)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageView{
		Page:          p.Page,
		TotalCount:    p.TotalCount,
		HasMore:       p.HasMore,
		Beneficiaries: toBeneficiaries(p.Beneficiaries),
	})
}

func (s *Server) getToken(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, r, common.ErrorInvalidInput)
		return
	}
	t, err := s.readers.Tokens.GetToken(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenView{ID: t.ID, Holder: t.Holder, SwitchOwner: t.SwitchOwner, URI: t.URI()})
}

// countRequests records every response under its route pattern.
func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}
