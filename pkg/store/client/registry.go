package client

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile is one upstream source credential set: the order platform or one
// of the ad networks. Profiles live in an INI file with one section per
// source, e.g.
//
//	[outbrain]
//	base_url = https://api.outbrain.example
//	token    = ob-xxxx
type Profile struct {
	Name    string
	BaseURL string
	Token   string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, name string) (Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]Profile, error) {
	var profiles []Profile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, profileFromSection(section))
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s not found", name)
	}
	return profileFromSection(section), nil
}

func profileFromSection(section *ini.Section) Profile {
	return Profile{
		Name:    section.Name(),
		BaseURL: section.Key("base_url").String(),
		Token:   section.Key("token").String(),
	}
}
