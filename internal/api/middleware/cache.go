package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status  int
	headers http.Header
	body    []byte
}

// bodyCacheWriter дублирует тело ответа в буфер для кэша
type bodyCacheWriter struct {
	http.ResponseWriter
	status int
	body   *bytes.Buffer
}

func (w *bodyCacheWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *bodyCacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache кэширует успешные GET-ответы на время duration.
// Ключом служит полный RequestURI, включая query-параметры
func Cache(store *cache.Cache, duration time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.RequestURI
			if entry, found := store.Get(key); found {
				cached := entry.(cachedResponse)
				for k, v := range cached.headers {
					w.Header()[k] = v
				}
				w.WriteHeader(cached.status)
				_, _ = w.Write(cached.body)
				return
			}

			recorder := &bodyCacheWriter{ResponseWriter: w, status: http.StatusOK, body: bytes.NewBuffer(nil)}
			next.ServeHTTP(recorder, r)

			// Кэшируются только успешные ответы
			if recorder.status >= 200 && recorder.status < 300 {
				store.Set(key, cachedResponse{
					status:  recorder.status,
					headers: recorder.Header().Clone(),
					body:    recorder.body.Bytes(),
				}, duration)
			}
		})
	}
}
