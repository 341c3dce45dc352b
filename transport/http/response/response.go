package response

import (
	"dashboard/shared/constant"
	"dashboard/shared/failure"
	"dashboard/shared/logger"
	"encoding/json"
	"net/http"
)

// JSON bodies use one of three envelopes: {"data":...}, {"message":...} or {"error":...}.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	withJSON(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	withJSON(writer, code, Data[any]{Data: &payload})
}

// WithError answers with the status carried by err, 500 when it carries none.
func WithError(writer http.ResponseWriter, err error) {
	message := err.Error()

	withJSON(writer, failure.GetCode(err), Error{Error: &message})
}

func WithHTML(writer http.ResponseWriter, code int, body []byte) {
	write(writer, code, constant.ContentTypeHTML, body)
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func withJSON(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	write(writer, code, constant.ContentTypeJSON, body)
}

func write(writer http.ResponseWriter, code int, contentType string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
