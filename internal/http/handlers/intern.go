package handlers

import "net/http"

func (a *App) Intern(w http.ResponseWriter, r *http.Request) {
	profile, err := a.Profiles.Get(r.Context())
	if err != nil {
		a.logger(r).Error().Err(err).Msg("load profile failed")
		a.error(w, http.StatusInternalServerError, "Failed to load intern data")
		return
	}
	a.json(w, http.StatusOK, dataResponse{Success: true, Data: profile})
}

func (a *App) LeaderboardList(w http.ResponseWriter, r *http.Request) {
	entries, err := a.Leaderboard.List(r.Context())
	if err != nil {
		a.logger(r).Error().Err(err).Msg("load leaderboard failed")
		a.error(w, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}
	a.json(w, http.StatusOK, dataResponse{Success: true, Data: entries})
}
