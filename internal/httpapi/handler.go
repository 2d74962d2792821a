package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	logMsgEncodingResponseFailed = "encoding response failed"
	logMsgOperationFailed        = "lending operation failed"
	logAttrError                 = "error"

	paramBookID        = "bookID"
	paramMemberID      = "memberID"
	paramTransactionID = "transactionID"
	paramHoldID        = "holdID"
)

// Logger is a minimal interface for the handler's error logging.
// Implementations must be safe for concurrent use.
type Logger interface {
	Error(msg string, args ...any)
}

// Handler serves the lending API. Build it with NewHandler and mount it as
// an http.Handler.
type Handler struct {
	engine  Engine
	logger  Logger
	metrics http.Handler
	router  chi.Router
}

// Option defines a functional option for configuring a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for encoding and infrastructure errors.
func WithLogger(logger Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithMetricsHandler mounts the given handler at /metrics, typically
// promhttp.HandlerFor over the service's Prometheus registry.
func WithMetricsHandler(metrics http.Handler) Option {
	return func(h *Handler) {
		h.metrics = metrics
	}
}

// NewHandler creates the API handler with all routes mounted.
func NewHandler(engine Engine, options ...Option) *Handler {
	handler := &Handler{engine: engine}

	for _, option := range options {
		option(handler)
	}

	handler.router = handler.buildRouter()

	return handler
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) buildRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", h.health)

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics)
	}

	router.Route("/api", func(api chi.Router) {
		api.Route("/books", func(books chi.Router) {
			books.Get("/", h.listBooks)
			books.Post("/", h.createBook)
			books.Get("/{bookID}", h.getBook)
			books.Put("/{bookID}", h.updateBook)
			books.Delete("/{bookID}", h.removeBook)
			books.Get("/{bookID}/checkout", h.currentHolder)
		})

		api.Route("/members", func(members chi.Router) {
			members.Get("/", h.listMembers)
			members.Post("/", h.createMember)
			members.Get("/{memberID}", h.getMember)
			members.Put("/{memberID}", h.updateMember)
			members.Delete("/{memberID}", h.deleteMember)
			members.Get("/{memberID}/transactions", h.listMemberTransactions)
			members.Get("/{memberID}/holds", h.listMemberHolds)
		})

		api.Route("/transactions", func(transactions chi.Router) {
			transactions.Get("/", h.listTransactions)
			transactions.Post("/", h.createTransaction)
			transactions.Get("/{transactionID}", h.getTransaction)
		})

		api.Route("/holds", func(holds chi.Router) {
			holds.Get("/", h.listHolds)
			holds.Post("/", h.createHold)
			holds.Get("/{holdID}", h.getHold)
			holds.Delete("/{holdID}", h.cancelHold)
		})
	})

	return router
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) logError(msg string, err error) {
	if h.logger != nil {
		h.logger.Error(msg, logAttrError, err.Error())
	}
}

// pathID parses the named URL parameter as a UUID. A parse failure has
// already been reported to the client when ok is false.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		h.writeBadRequest(w, msgInvalidID)

		return uuid.Nil, false
	}

	return id, true
}
