package handlers

import "net/http"

// isoMillis matches the millisecond ISO-8601 timestamps browsers produce.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Timestamp: a.Now().UTC().Format(isoMillis),
	})
}
