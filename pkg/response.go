package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.Text, []byte(message), http.StatusOK)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	bodyJson, err := json.Marshal(body)
	if err != nil {
		log.Errorf("marshal response body: %s", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}
	WriteResponseBytes(w, ContentType.JSON, bodyJson, statusCode)
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	// cannot fail for a plain string
	bodyJson, _ := json.Marshal(ErrorResponse{Message: message})
	WriteResponseBytes(w, ContentType.JSON, bodyJson, statusCode)
}
