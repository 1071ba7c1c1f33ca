//go:build js
// +build js

package audio

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/gopxl/beep"
)

// WebAudioBackend renders tones into AudioBuffers on a browser AudioContext.
type WebAudioBackend struct {
	ctx        *js.Object
	masterGain *js.Object
}

// NewWebAudioBackend creates an unopened Web Audio backend.
func NewWebAudioBackend() *WebAudioBackend {
	return &WebAudioBackend{}
}

// Open creates the AudioContext, falling back to the webkit prefix.
func (b *WebAudioBackend) Open() (beep.SampleRate, error) {
	if b.ctx != nil {
		return beep.SampleRate(b.ctx.Get("sampleRate").Int()), nil
	}

	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		return 0, ErrUnavailable
	}

	b.ctx = audioCtx.New()
	b.masterGain = b.ctx.Call("createGain")
	b.masterGain.Call("connect", b.ctx.Get("destination"))
	b.masterGain.Get("gain").Set("value", 1.0)
	return beep.SampleRate(b.ctx.Get("sampleRate").Int()), nil
}

// Resume resumes a context the browser suspended.
func (b *WebAudioBackend) Resume() {
	if b.ctx == nil {
		return
	}
	if b.ctx.Get("state").String() == "suspended" {
		b.ctx.Call("resume")
	}
}

// Play copies n samples of s into a mono AudioBuffer and starts it.
func (b *WebAudioBackend) Play(s beep.Streamer, n int) {
	if b.ctx == nil || n <= 0 {
		return
	}
	samples := Drain(s, n)
	if len(samples) == 0 {
		return
	}

	buffer := b.ctx.Call("createBuffer", 1, len(samples), b.ctx.Get("sampleRate"))
	channelData := buffer.Call("getChannelData", 0)
	for i, v := range samples {
		channelData.SetIndex(i, v)
	}

	source := b.ctx.Call("createBufferSource")
	source.Set("buffer", buffer)
	source.Call("connect", b.masterGain)
	source.Call("start", 0)
}
