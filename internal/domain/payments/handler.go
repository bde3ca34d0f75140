package payments

import (
	"errors"
	"net/http"

	"patitas-eternas/internal/middleware"
	"patitas-eternas/internal/platform/respond"
	"patitas-eternas/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

const (
	msgCreateFailed = "Error al crear la orden en PayPal"
	msgVerifyFailed = "Error al verificar el pago con PayPal"
)

var errMessages = respond.ErrorMessages{
	Invalid:  "Faltan datos requeridos",
	NotFound: "Pago no encontrado",
}

// RegisterRoutes: limit envuelve ambos endpoints (puede ser nil).
func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler) {
	if limit == nil {
		limit = func(h http.Handler) http.Handler { return h }
	}

	r.Route("/payments", func(pr chi.Router) {
		pr.Use(limit)
		pr.Post("/create-order", createOrderHandler(svc))
		pr.Post("/capture", captureHandler(svc))
	})
}

// createOrderHandler godoc
// @Summary Crear orden de donación
// @Description Crea una orden en PayPal (MXN). El cliente la aprueba y luego llama a /payments/capture.
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body CreateOrderRequest true "Monto y descripción opcional"
// @Success 200 {object} OrderResult
// @Failure 400 {object} map[string]any
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /payments/create-order [post]
func createOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateOrderRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			writeError(w, r, err, msgCreateFailed)
			return
		}

		res, err := svc.CreateOrder(r.Context(), middleware.CallerFrom(r.Context()), req)
		if err != nil {
			writeError(w, r, err, msgCreateFailed)
			return
		}
		respond.JSON(w, http.StatusOK, res)
	}
}

// captureHandler godoc
// @Summary Registrar donación
// @Description Verifica la orden en PayPal y guarda el pago si está COMPLETED o APPROVED.
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body CaptureRequest true "orderId, paymentId y monto"
// @Success 201 {object} map[string]string "id + message"
// @Failure 400 {object} map[string]any
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /payments/capture [post]
func captureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CaptureRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			writeError(w, r, err, msgVerifyFailed)
			return
		}

		p, err := svc.Capture(r.Context(), middleware.CallerFrom(r.Context()), req)
		if err != nil {
			writeError(w, r, err, msgVerifyFailed)
			return
		}

		middleware.LoggerFrom(r.Context()).Info("donation captured", map[string]any{
			"payment_id": p.ID,
			"order_id":   p.OrderID,
			"amount":     p.Amount,
		})
		respond.Created(w, p.ID, "Pago registrado exitosamente")
	}
}

// upstreamMsg es el texto para fallas de PayPal; depende del endpoint.
func writeError(w http.ResponseWriter, r *http.Request, err error, upstreamMsg string) {
	switch {
	case errors.Is(err, ErrNotConfirmed):
		respond.Message(w, http.StatusBadRequest, "El pago no ha sido completado en PayPal")
		return
	case errors.Is(err, ErrGatewayUnavailable):
		respond.Message(w, http.StatusInternalServerError, "Pagos no disponibles")
		return
	case errors.Is(err, ErrUpstream):
		middleware.LoggerFrom(r.Context()).Error("payments: gateway failure", map[string]any{"err": err})
		respond.Message(w, http.StatusInternalServerError, upstreamMsg)
		return
	}
	if respond.Error(w, err, errMessages) {
		return
	}
	middleware.LoggerFrom(r.Context()).Error("payments: internal error", map[string]any{"err": err})
	respond.Message(w, http.StatusInternalServerError, "Error interno del servidor")
}
