package decorator_mode

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownModifier = errors.New("unknown modifier")

// Modifier wraps a profile with one extra feature.
type Modifier func(Profile) Profile

func WithPhotoSharing(profile Profile) Profile {
	return NewPhotoSharing(profile)
}

func WithStorySharing(profile Profile) Profile {
	return NewStorySharing(profile)
}

func WithLiveStreaming(profile Profile) Profile {
	return NewLiveStreaming(profile)
}

// Chain applies modifiers to base in order. The first modifier ends up
// innermost, so its feature is listed first.
func Chain(base Profile, modifiers ...Modifier) Profile {
	profile := base
	for _, m := range modifiers {
		profile = m(profile)
	}
	return profile
}

var modifierByName = map[string]Modifier{
	"photo":         WithPhotoSharing,
	"photosharing":  WithPhotoSharing,
	"story":         WithStorySharing,
	"storysharing":  WithStorySharing,
	"live":          WithLiveStreaming,
	"livestreaming": WithLiveStreaming,
}

// ModifierByName resolves names such as "photo", "Story-Sharing" or
// "live_streaming".
func ModifierByName(name string) (Modifier, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	m, ok := modifierByName[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModifier, name)
	}
	return m, nil
}

// ModifiersByName resolves every name, stopping at the first unknown one.
func ModifiersByName(names []string) ([]Modifier, error) {
	modifiers := make([]Modifier, 0, len(names))
	for _, name := range names {
		m, err := ModifierByName(name)
		if err != nil {
			return nil, err
		}
		modifiers = append(modifiers, m)
	}
	return modifiers, nil
}
