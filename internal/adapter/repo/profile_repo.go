package repo

import (
	"context"

	"internportal/internal/domain"
)

// ProfileRepo implements domain.ProfileRepository over in-memory seed data.
type ProfileRepo struct {
	profile domain.Profile
}

// NewProfileRepo creates a repo serving the given profile.
func NewProfileRepo(profile domain.Profile) *ProfileRepo {
	return &ProfileRepo{profile: profile.Clone()}
}

// Get returns a copy of the profile.
func (r *ProfileRepo) Get(ctx context.Context) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}
	return r.profile.Clone(), nil
}
