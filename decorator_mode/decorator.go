package decorator_mode

import "fmt"

// Profile is the component every decorator wraps.
type Profile interface {
	Features() string
	Cost() int
}

const BasicFeatures = "Text Posts, Comments, Likes"

// BasicProfile is the free profile at the bottom of every chain.
type BasicProfile struct{}

func (BasicProfile) Features() string {
	return BasicFeatures
}

func (BasicProfile) Cost() int {
	return 0
}

// 装饰器

const (
	PhotoSharingFeature  = "Photo Sharing"
	StorySharingFeature  = "Story Sharing"
	LiveStreamingFeature = "Live Streaming"

	PhotoSharingCost  = 5
	StorySharingCost  = 3
	LiveStreamingCost = 10
)

type PhotoSharing struct {
	profile Profile
}

func NewPhotoSharing(profile Profile) *PhotoSharing {
	return &PhotoSharing{profile: profile}
}

func (deco *PhotoSharing) Features() string {
	return deco.profile.Features() + ", " + PhotoSharingFeature
}

func (deco *PhotoSharing) Cost() int {
	return deco.profile.Cost() + PhotoSharingCost
}

type StorySharing struct {
	profile Profile
}

func NewStorySharing(profile Profile) *StorySharing {
	return &StorySharing{profile: profile}
}

func (deco *StorySharing) Features() string {
	return deco.profile.Features() + ", " + StorySharingFeature
}

func (deco *StorySharing) Cost() int {
	return deco.profile.Cost() + StorySharingCost
}

type LiveStreaming struct {
	profile Profile
}

func NewLiveStreaming(profile Profile) *LiveStreaming {
	return &LiveStreaming{profile: profile}
}

func (deco *LiveStreaming) Features() string {
	return deco.profile.Features() + ", " + LiveStreamingFeature
}

func (deco *LiveStreaming) Cost() int {
	return deco.profile.Cost() + LiveStreamingCost
}

// Describe formats a profile as "<features> - Cost: $<cost>".
func Describe(profile Profile) string {
	return fmt.Sprintf("%s - Cost: $%d", profile.Features(), profile.Cost())
}

// Showcase returns the demo profiles: basic, photo, photo+story and the full stack.
func Showcase() []Profile {
	basic := BasicProfile{}
	photo := NewPhotoSharing(basic)
	story := NewStorySharing(photo)
	full := NewLiveStreaming(NewStorySharing(NewPhotoSharing(basic)))
	return []Profile{basic, photo, story, full}
}
