package middlewares

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/models"
)

func writeError(w http.ResponseWriter, e *apierror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(models.NewErrorResponse(e.StatusCode, e.Message, e.Errors))
}
