// pkg/api/response.go
package api

import (
	"net/http"
	"strconv"
)

// ContentTypeText is sent with every static body.
const ContentTypeText = "text/html; charset=utf-8"

// ResponseWriter is a utility for writing consistent API responses
type ResponseWriter struct {
	Writer http.ResponseWriter
}

// NewResponseWriter creates a new ResponseWriter with the given http.ResponseWriter
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{Writer: w}
}

// SendText writes body verbatim with the given status code.
func (rw *ResponseWriter) SendText(statusCode int, body string) error {
	h := rw.Writer.Header()
	h.Set("Content-Type", ContentTypeText)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	rw.Writer.WriteHeader(statusCode)
	_, err := rw.Writer.Write([]byte(body))
	return err
}
