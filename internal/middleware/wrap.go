package middleware

import "net/http"

// ResponseRecorder wraps ResponseWriter, captures the status code, and can
// run a hook just before the first byte is written (used for late cookie
// writes).
type ResponseRecorder struct {
	http.ResponseWriter
	status      int
	wrote       bool
	beforeWrite func(http.ResponseWriter)
}

func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	return &ResponseRecorder{ResponseWriter: w, status: http.StatusOK}
}

// SetBeforeWrite registers a hook invoked once before headers are flushed.
func (rw *ResponseRecorder) SetBeforeWrite(fn func(http.ResponseWriter)) {
	rw.beforeWrite = fn
}

func (rw *ResponseRecorder) WriteHeader(statusCode int) {
	rw.ensureHook()
	rw.status = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *ResponseRecorder) Write(b []byte) (int, error) {
	rw.ensureHook()
	return rw.ResponseWriter.Write(b)
}

func (rw *ResponseRecorder) ensureHook() {
	if !rw.wrote {
		rw.wrote = true
		if rw.beforeWrite != nil {
			rw.beforeWrite(rw.ResponseWriter)
		}
	}
}

// Status returns the captured response code.
func (rw *ResponseRecorder) Status() int { return rw.status }
