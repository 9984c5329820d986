package observer_mode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"profile_decorator/codec"
	"profile_decorator/decorator_mode"
	"profile_decorator/global"
)

type recordingObject struct {
	got []string
	err error
}

func (obj *recordingObject) Update(profile decorator_mode.Profile) error {
	obj.got = append(obj.got, profile.Features())
	return obj.err
}

func TestRealSubject_AddDelete(t *testing.T) {
	var sub RealSubject
	a, b, c := &recordingObject{}, &recordingObject{}, &recordingObject{}
	sub.AddObject(a)
	sub.AddObject(b)
	sub.AddObject(c)
	sub.AddObject(b)

	require.NoError(t, sub.NotifyObjects(decorator_mode.BasicProfile{}))
	assert.Len(t, b.got, 2)

	sub.DeleteObject(b)
	require.NoError(t, sub.NotifyObjects(decorator_mode.BasicProfile{}))
	assert.Len(t, a.got, 2)
	assert.Len(t, b.got, 2)
	assert.Len(t, c.got, 2)
}

func TestRealSubject_NotifyContinuesAfterFailure(t *testing.T) {
	var sub RealSubject
	failing := &recordingObject{err: errors.New("boom")}
	after := &recordingObject{}
	sub.AddObject(failing)
	sub.AddObject(after)

	err := sub.NotifyObjects(decorator_mode.NewPhotoSharing(decorator_mode.BasicProfile{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, []string{"Text Posts, Comments, Likes, Photo Sharing"}, after.got)
}

func TestCodecObject_Update(t *testing.T) {
	var buf bytes.Buffer
	obj := &CodecObject{Codec: codec.NewTextCodec(&buf)}

	require.NoError(t, obj.Update(decorator_mode.NewStorySharing(decorator_mode.BasicProfile{})))
	assert.Equal(t, "Text Posts, Comments, Likes, Story Sharing - Cost: $3\n", buf.String())
}

func TestLogObject_FollowsGlobalLogger(t *testing.T) {
	prev := global.GLog
	t.Cleanup(func() { global.GLog = prev })

	zc, logs := observer.New(zap.InfoLevel)
	global.GLog = zap.New(zc)
	obj := &LogObject{}

	require.NoError(t, obj.Update(decorator_mode.BasicProfile{}))
	assert.Equal(t, 1, logs.FilterMessage("profile updated").Len())
}

func TestLogObject_Update(t *testing.T) {
	zc, logs := observer.New(zap.InfoLevel)
	obj := &LogObject{Log: zap.New(zc)}

	require.NoError(t, obj.Update(decorator_mode.NewLiveStreaming(decorator_mode.BasicProfile{})))

	entries := logs.FilterMessage("profile updated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Text Posts, Comments, Likes, Live Streaming", fields["features"])
	assert.EqualValues(t, 10, fields["cost"])
}
