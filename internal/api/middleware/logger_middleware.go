package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/RoyceAzure/lab/vendorportal/internal/constants"
	"github.com/rs/zerolog"
)

type StatusRecoder struct {
	http.ResponseWriter
	status int
}

func (w *StatusRecoder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecoder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func getRequestID(r *http.Request) string {
	requestId := "unknown"
	if v := r.Context().Value(constants.RequestIDKey); v != nil {
		requestId = v.(string)
	}
	return requestId
}

// 記錄request 請求
// 有一起處理recover
func LoggerMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recoder := &StatusRecoder{
				ResponseWriter: w,
			}

			if logger == nil {
				temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
				logger = &temp
			}

			defer func() {
				if err := recover(); err != nil {
					var errMsg string
					if e, ok := err.(error); ok {
						errMsg = e.Error()
					} else {
						errMsg = fmt.Sprintf("%v", err)
					}
					logger.Error().
						Str("request_id", getRequestID(r)).
						Str("method", r.Method).
						Str("url", r.URL.String()).
						Str("error", errMsg).
						Msg("request panicked")

					//handler已寫過status就不再寫，避免superfluous WriteHeader
					if recoder.status == 0 {
						recoder.WriteHeader(http.StatusInternalServerError)
						json.NewEncoder(recoder).Encode(map[string]string{
							"error": "Internal Server Error",
						})
					}
				}
			}()

			next.ServeHTTP(recoder, r)

			logger.Info().
				Str("request_id", getRequestID(r)).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", recoder.Status()).
				Msg("request completed")
		})
	}
}
