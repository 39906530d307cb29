package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleHz = 48000
	toneHz   = 440
)

var (
	// audioDev is the queued-audio beeper device.
	audioDev sdl.AudioDeviceID

	// beepChunk is one frame's worth of square wave, built once.
	beepChunk []byte
)

// InitAudio opens a mono 8-bit audio device for the beeper and prebuilds
// the tone chunk queued on each sound edge.
func InitAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     sampleHz,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	dev, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return err
	}

	audioDev = dev

	// one 60Hz frame of square wave
	n := sampleHz / 60
	half := sampleHz / toneHz / 2

	beepChunk = make([]byte, n)
	for i := range beepChunk {
		if (i/half)%2 == 0 {
			beepChunk[i] = 0xA0
		} else {
			beepChunk[i] = 0x60
		}
	}

	sdl.PauseAudioDevice(audioDev, false)

	return nil
}

// Beep queues one frame of tone. The sound flag is an edge recomputed on
// every timer tick, so the host queues a chunk per tick it observes.
func Beep() {
	_ = sdl.QueueAudio(audioDev, beepChunk)
}

// CloseAudio shuts the beeper device.
func CloseAudio() {
	sdl.CloseAudioDevice(audioDev)
}
