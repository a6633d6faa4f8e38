package api

import (
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sirdesai22/staffing-service/internal/schemas"
	"github.com/sirdesai22/staffing-service/internal/services"
)

// resource wires one Store to its list/item routes.
type resource[R, C, U, F any] struct {
	name       string
	store      Store[R, C, U, F]
	createKind schemas.Kind
	updateKind schemas.Kind
	filter     func(url.Values) F
	log        *zap.Logger
}

func (rs *resource[R, C, U, F]) register(r *mux.Router, base string) {
	handle(r, base, rs.list, http.MethodGet)
	handle(r, base, rs.create, http.MethodPost)
	handle(r, base+"/{id}", rs.get, http.MethodGet)
	handle(r, base+"/{id}", rs.update, http.MethodPut, http.MethodPatch)
	handle(r, base+"/{id}", rs.delete, http.MethodDelete)
}

func (rs *resource[R, C, U, F]) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := parsePage(q)
	if err != nil {
		writeServiceError(w, rs.log, rs.name, err)
		return
	}
	out, err := rs.store.List(r.Context(), page, rs.filter(q))
	if err != nil {
		writeServiceError(w, rs.log, rs.name, err)
		return
	}
	if out == nil {
		out = []R{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (rs *resource[R, C, U, F]) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, rs.log, rs.name, err)
		return
	}
	out, err := rs.store.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, rs.log, rs.name, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (rs *resource[R, C, U, F]) create(w http.ResponseWriter, r *http.Request) {
	var in C
	if err := decodeBody(w, r, rs.createKind, &in); err != nil {
		writeServiceError(w, rs.log, rs.name, err)
		return
	}
	out, err := rs.store.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, rs.log, rs.name, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// update serves both PUT and PATCH; only attributes present in the body change.
func (rs *resource[R, C, U, F]) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, rs.log, rs.name, err)
		return
	}
	var in U
	if err := decodeBody(w, r, rs.updateKind, &in); err != nil {
		writeServiceError(w, rs.log, rs.name, err)
		return
	}
	out, err := rs.store.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, rs.log, rs.name, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (rs *resource[R, C, U, F]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, rs.log, rs.name, err)
		return
	}
	deleted, err := rs.store.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, rs.log, rs.name, err)
		return
	}
	if !deleted {
		writeServiceError(w, rs.log, rs.name, services.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": rs.name + " deleted"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, kind schemas.Kind, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return invalidParam("", "request body could not be read: "+err.Error())
	}
	return schemas.Decode(r.Context(), kind, body, dst)
}
