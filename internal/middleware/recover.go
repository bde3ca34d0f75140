package middleware

import (
	"net/http"
	"runtime/debug"

	"patitas-eternas/internal/platform/respond"
)

// Recover reemplaza a chimw.Recoverer: loguea el panic con el logger del request
// y responde 500 en JSON como el resto de la API.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			LoggerFrom(r.Context()).Error("panic recovered", map[string]any{
				"panic": rec,
				"stack": string(debug.Stack()),
			})
			respond.Message(w, http.StatusInternalServerError, "Error interno del servidor")
		}()

		next.ServeHTTP(w, r)
	})
}
