package httpapi

import (
	"bytes"
	"log"
	"net/http"
	"time"
)

const defaultMaxLogBytes = 512

// statusRecorder captures the status, the byte count and the start of the
// body for request logging.
type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	maxLogBytes  int
	bytesWritten int
	logBody      bytes.Buffer
	truncated    bool
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if remaining := r.maxLogBytes - r.logBody.Len(); remaining > 0 {
		if len(p) > remaining {
			r.logBody.Write(p[:remaining])
			r.truncated = true
		} else {
			r.logBody.Write(p)
		}
	} else if len(p) > 0 {
		r.truncated = true
	}

	n, err := r.ResponseWriter.Write(p)
	r.bytesWritten += n
	return n, err
}

// withRequestLogging logs one line per request. Error responses include the
// beginning of the body.
func withRequestLogging(next http.Handler, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			maxLogBytes:    defaultMaxLogBytes,
		}

		next.ServeHTTP(recorder, r)

		if recorder.statusCode >= http.StatusBadRequest {
			body := bytes.TrimSpace(recorder.logBody.Bytes())
			suffix := ""
			if recorder.truncated {
				suffix = "..."
			}
			logger.Printf("%s %s -> %d (%d bytes, %s) body=%s%s",
				r.Method, r.URL.Path, recorder.statusCode, recorder.bytesWritten, time.Since(start), body, suffix)
			return
		}
		logger.Printf("%s %s -> %d (%d bytes, %s)",
			r.Method, r.URL.Path, recorder.statusCode, recorder.bytesWritten, time.Since(start))
	})
}
