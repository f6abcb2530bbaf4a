package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/service/ports"
)

const (
	avatarBaseURL     = "https://api.dicebear.com/7.x/"
	maxDisplayNameLen = 50
	maxBioLen         = 500
)

// AvatarStyles are the dicebear styles a user may pick from. The first one
// is used when nothing was picked.
var AvatarStyles = []string{"adventurer", "bottts", "fun-emoji", "pixel-art", "thumbs", "notionists"}

// AvatarOptions lists the selectable avatars for seed.
func AvatarOptions(seed string) []domain.AvatarOption {
	out := make([]domain.AvatarOption, 0, len(AvatarStyles))
	for _, style := range AvatarStyles {
		out = append(out, domain.AvatarOption{Style: style, URL: avatarURL(style, seed)})
	}
	return out
}

func avatarURL(style, seed string) string {
	return avatarBaseURL + style + "/svg?seed=" + url.QueryEscape(seed)
}

func avatarSeed(u domain.User) string {
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}

func defaultProfileInput(u domain.User) domain.ProfileInput {
	name, _, _ := strings.Cut(u.Email, "@")
	return domain.ProfileInput{
		DisplayName: name,
		AvatarURL:   avatarURL(AvatarStyles[0], avatarSeed(u)),
	}
}

type ProfileService struct {
	repo ports.ProfileRepo
}

func NewProfileService(repo ports.ProfileRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the user's profile, or the starter profile when none is stored.
func (s *ProfileService) Get(ctx context.Context, u domain.User) (domain.Profile, error) {
	p, err := s.repo.Get(ctx, u.ID)
	if err == nil {
		if p.AvatarURL == "" {
			p.AvatarURL = avatarURL(AvatarStyles[0], avatarSeed(u))
		}
		return p, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	in := defaultProfileInput(u)
	return domain.Profile{ID: u.ID, DisplayName: in.DisplayName, AvatarURL: in.AvatarURL}, nil
}

// Avatars lists the avatars u may pick, seeded by email or id.
func (s *ProfileService) Avatars(u domain.User) []domain.AvatarOption {
	return AvatarOptions(avatarSeed(u))
}

func (s *ProfileService) Update(ctx context.Context, u domain.User, in domain.ProfileInput) (domain.Profile, error) {
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	in.Bio = strings.TrimSpace(in.Bio)
	in.AvatarURL = strings.TrimSpace(in.AvatarURL)

	if in.DisplayName == "" {
		return domain.Profile{}, fmt.Errorf("%w: display_name is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(in.DisplayName) > maxDisplayNameLen {
		return domain.Profile{}, fmt.Errorf("%w: display_name is longer than %d characters", domain.ErrValidation, maxDisplayNameLen)
	}
	if utf8.RuneCountInString(in.Bio) > maxBioLen {
		return domain.Profile{}, fmt.Errorf("%w: bio is longer than %d characters", domain.ErrValidation, maxBioLen)
	}

	if in.AvatarURL == "" {
		in.AvatarURL = avatarURL(AvatarStyles[0], avatarSeed(u))
	} else if !isOfferedAvatar(in.AvatarURL, avatarSeed(u)) {
		return domain.Profile{}, fmt.Errorf("%w: avatar_url is not one of the offered avatars", domain.ErrValidation)
	}

	p, err := s.repo.Upsert(ctx, u.ID, in)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

func isOfferedAvatar(candidate, seed string) bool {
	for _, opt := range AvatarOptions(seed) {
		if opt.URL == candidate {
			return true
		}
	}
	return false
}
