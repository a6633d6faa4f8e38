package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sirdesai22/staffing-service/internal/schemas"
	"github.com/sirdesai22/staffing-service/internal/services"
)

const maxBodyBytes = 1 << 20

// Store is the set of operations the HTTP layer needs for one entity.
// R is the read shape, C the create payload, U the update payload and F the
// list filter.
type Store[R, C, U, F any] interface {
	Get(ctx context.Context, id int64) (R, error)
	List(ctx context.Context, page services.Page, filter F) ([]R, error)
	Create(ctx context.Context, in C) (R, error)
	Update(ctx context.Context, id int64, in U) (R, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type (
	EngineerService   = Store[schemas.Engineer, schemas.EngineerCreate, schemas.EngineerUpdate, services.EngineerFilter]
	ProjectService    = Store[schemas.Project, schemas.ProjectCreate, schemas.ProjectUpdate, services.ProjectFilter]
	SalesStaffService = Store[schemas.SalesStaff, schemas.SalesStaffCreate, schemas.SalesStaffUpdate, services.SalesStaffFilter]
)

// Handler serves the engineer, project and sales staff endpoints.
type Handler struct {
	engineers  *resource[schemas.Engineer, schemas.EngineerCreate, schemas.EngineerUpdate, services.EngineerFilter]
	projects   *resource[schemas.Project, schemas.ProjectCreate, schemas.ProjectUpdate, services.ProjectFilter]
	salesStaff *resource[schemas.SalesStaff, schemas.SalesStaffCreate, schemas.SalesStaffUpdate, services.SalesStaffFilter]
	log        *zap.Logger
}

func NewHandler(engineers EngineerService, projects ProjectService, salesStaff SalesStaffService, log *zap.Logger) *Handler {
	return &Handler{
		engineers: &resource[schemas.Engineer, schemas.EngineerCreate, schemas.EngineerUpdate, services.EngineerFilter]{
			name:       "Engineer",
			store:      engineers,
			createKind: schemas.EngineerCreateKind,
			updateKind: schemas.EngineerUpdateKind,
			filter: func(q url.Values) services.EngineerFilter {
				return services.EngineerFilter{Status: q.Get("status")}
			},
			log: log,
		},
		projects: &resource[schemas.Project, schemas.ProjectCreate, schemas.ProjectUpdate, services.ProjectFilter]{
			name:       "Project",
			store:      projects,
			createKind: schemas.ProjectCreateKind,
			updateKind: schemas.ProjectUpdateKind,
			filter: func(q url.Values) services.ProjectFilter {
				return services.ProjectFilter{Status: q.Get("status")}
			},
			log: log,
		},
		salesStaff: &resource[schemas.SalesStaff, schemas.SalesStaffCreate, schemas.SalesStaffUpdate, services.SalesStaffFilter]{
			name:       "Sales staff",
			store:      salesStaff,
			createKind: schemas.SalesStaffCreateKind,
			updateKind: schemas.SalesStaffUpdateKind,
			filter: func(q url.Values) services.SalesStaffFilter {
				return services.SalesStaffFilter{Email: q.Get("email")}
			},
			log: log,
		},
		log: log,
	}
}

// RegisterRoutes mounts every endpoint on r. Each path also matches with a
// trailing slash.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	handle(r, "/health", h.Health, http.MethodGet)

	h.engineers.register(r, "/engineers")
	h.projects.register(r, "/projects")
	h.salesStaff.register(r, "/sales-staff")
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Engineer Project Management API"})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handle(r *mux.Router, path string, fn http.HandlerFunc, methods ...string) {
	r.HandleFunc(path, fn).Methods(methods...)
	r.HandleFunc(path+"/", fn).Methods(methods...)
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, resp ErrorResponse) {
	writeJSON(w, status, resp)
}

// writeServiceError maps err onto a status code. entity names the resource in
// not-found messages.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, entity string, err error) {
	var ve *schemas.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusUnprocessableEntity, ErrorResponse{"validation_failed", ve.Error(), ve.Errors})
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, ErrorResponse{"not_found", entity + " not found", map[string]interface{}{}})
	case errors.Is(err, services.ErrConflict):
		writeError(w, http.StatusConflict, ErrorResponse{"conflict", "Email already registered", map[string]interface{}{}})
	case errors.Is(err, services.ErrInvalidReference):
		writeError(w, http.StatusBadRequest, ErrorResponse{"invalid_reference", "Referenced sales staff does not exist", map[string]interface{}{}})
	default:
		log.Error("request failed", zap.String("entity", entity), zap.Error(err))
		writeError(w, http.StatusInternalServerError, ErrorResponse{"internal", "internal server error", map[string]interface{}{}})
	}
}

func invalidParam(field, msg string) *schemas.ValidationError {
	return &schemas.ValidationError{Errors: []schemas.FieldError{{Field: field, Message: msg}}}
}

// parseID reads the {id} path variable; it must be a positive integer.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidParam("id", "must be a positive integer")
	}
	return id, nil
}

// parsePage reads skip and limit; absent values take the service defaults.
func parsePage(q url.Values) (services.Page, error) {
	page := services.Page{Skip: 0, Limit: services.DefaultLimit}
	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return page, invalidParam("skip", "must be a non-negative integer")
		}
		page.Skip = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > services.MaxLimit {
			return page, invalidParam("limit", "must be an integer between 1 and "+strconv.Itoa(services.MaxLimit))
		}
		page.Limit = n
	}
	return page, nil
}
