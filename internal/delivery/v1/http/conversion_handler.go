package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ConversionHandler struct {
	conversionUsecase usecase.ConversionUC
	logger            logger.Logger
}

func NewConversionHandler(conversionUsecase usecase.ConversionUC, logger logger.Logger) *ConversionHandler {
	return &ConversionHandler{conversionUsecase: conversionUsecase, logger: logger}
}

// trackConversion
//
//	@Summary		Событие для рекламного пикселя
//	@Description	Сбой внешнего API не влияет на ответ
//	@Tags			conversions
//	@Accept			json
//	@Produce		json
//	@Param			event	path		string				true	"pageview, viewcontent, addtocart или purchase"
//	@Param			payload	body		conversionRequest	false	"Данные события"
//	@Success		200		{object}	successResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/conversions/{event} [post]
func (c *ConversionHandler) trackConversion(w http.ResponseWriter, r *http.Request) {
	name, ok := usecase.ParseConversionEventName(chi.URLParam(r, "event"))
	if !ok {
		writeErr(c.logger, w, r, e.NewValidationError("event", "must be one of: pageview, viewcontent, addtocart, purchase"))
		return
	}

	var body conversionRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &body); err != nil {
			writeErr(c.logger, w, r, err)
			return
		}
	}

	err := c.conversionUsecase.Track(r.Context(), &usecase.TrackConversionReq{
		EventName:      name,
		EventSourceURL: body.EventSourceURL,
		ClientIP:       clientIP(r),
		UserAgent:      r.UserAgent(),
		Email:          body.Email,
		Phone:          body.Phone,
		ContentIDs:     body.ContentIDs,
		ContentName:    body.ContentName,
		Value:          body.Value,
		Currency:       body.Currency,
		NumItems:       body.NumItems,
	})
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, successResponse{Success: true})
}
