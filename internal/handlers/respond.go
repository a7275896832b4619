package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/middlewares"
	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/validation"
)

// multipartMemory is how much of a multipart form is buffered in memory
// before spilling to temporary files.
const multipartMemory = 32 << 20

func respondJSON(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.NewApiResponse(status, data, message)); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// respondError is the single place where errors become error envelopes.
// Anything that is not an *apierror.Error is logged and hidden behind a 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apierror.As(err)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Errorw("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.StatusCode)
	_ = json.NewEncoder(w).Encode(models.NewErrorResponse(apiErr.StatusCode, apiErr.Message, apiErr.Errors))
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apierror.BadRequest("Request body is required")
		}
		return apierror.BadRequest("Invalid request body")
	}
	return nil
}

// pathID parses a chi URL parameter as an ObjectID.
func pathID(r *http.Request, name string) (primitive.ObjectID, error) {
	id, ok := validation.ObjectID(chi.URLParam(r, name))
	if !ok {
		return primitive.NilObjectID, apierror.BadRequest("Invalid " + name)
	}
	return id, nil
}

// currentUser returns the user attached by the auth middleware.
func currentUser(r *http.Request) (*models.User, error) {
	user := middlewares.UserFromContext(r.Context())
	if user == nil {
		return nil, apierror.Unauthorized("Unauthorized request")
	}
	return user, nil
}

// pageQuery reads page and limit, falling back to the defaults when absent.
// Bounds are checked by the services.
func pageQuery(r *http.Request, defPage, defLimit int64) (models.PageQuery, error) {
	q := models.PageQuery{Page: defPage, Limit: defLimit}
	var err error
	if q.Page, err = queryInt(r, "page", defPage); err != nil {
		return q, err
	}
	if q.Limit, err = queryInt(r, "limit", defLimit); err != nil {
		return q, err
	}
	return q, nil
}

func queryInt(r *http.Request, key string, def int64) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierror.BadRequest("Invalid " + key)
	}
	return v, nil
}

// parseMultipart caps the body at maxBytes and parses the form.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apierror.New(http.StatusRequestEntityTooLarge, "Uploaded file is too large")
		}
		return apierror.BadRequest("Invalid multipart form")
	}
	return nil
}

// formFile returns the first file sent under field, or nil.
func formFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	if files := r.MultipartForm.File[field]; len(files) > 0 {
		return files[0]
	}
	return nil
}
