package http

import (
	"net"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type VisitorHandler struct {
	visitorUsecase usecase.VisitorUC
	logger         logger.Logger
}

func NewVisitorHandler(visitorUsecase usecase.VisitorUC, logger logger.Logger) *VisitorHandler {
	return &VisitorHandler{visitorUsecase: visitorUsecase, logger: logger}
}

// trackVisit
//
//	@Summary		Учёт посещения
//	@Description	Один визит на IP в сутки, повторы игнорируются
//	@Tags			visitors
//	@Produce		json
//	@Success		200	{object}	successResponse
//	@Router			/visitors/track [post]
func (v *VisitorHandler) trackVisit(w http.ResponseWriter, r *http.Request) {
	err := v.visitorUsecase.Track(r.Context(), &usecase.TrackVisitReq{
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		writeErr(v.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, successResponse{Success: true})
}

// visitorStats
//
//	@Summary	Статистика посещений
//	@Tags		visitors
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	visitorStatsResponse
//	@Router		/visitors/stats [get]
func (v *VisitorHandler) visitorStats(w http.ResponseWriter, r *http.Request) {
	stats, err := v.visitorUsecase.Stats(r.Context())
	if err != nil {
		writeErr(v.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, visitorStatsResponse{
		Today: stats.Today,
		Week:  stats.Week,
		Total: stats.Total,
	})
}

// clientIP возвращает адрес клиента. RemoteAddr уже переписан middleware.RealIP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
