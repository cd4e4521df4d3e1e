package handler

import (
	"net/http"
)

// HelloMessage is the body of GET /.
const HelloMessage = "Hello, Docker Compose!"

// Hello handles GET /. It doubles as the liveness check and never touches the database.
func Hello(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(HelloMessage))
}
