package ffprobe

import "testing"

func TestDurationSecondsPrefersContainer(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "audio", Duration: "200.5"},
		},
		Format: Format{Duration: "330.004"},
	}
	seconds, err := result.DurationSeconds()
	if err != nil {
		t.Fatalf("DurationSeconds: %v", err)
	}
	if seconds != 330.004 {
		t.Fatalf("unexpected duration: %v", seconds)
	}
}

func TestDurationSecondsFallsBackToAudioStream(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video", Duration: "999"},
			{CodecType: "audio", Duration: "120.25"},
			{CodecType: "audio", Duration: "121"},
		},
	}
	seconds, err := result.DurationSeconds()
	if err != nil {
		t.Fatalf("DurationSeconds: %v", err)
	}
	if seconds != 121 {
		t.Fatalf("unexpected duration: %v", seconds)
	}
}

func TestDurationSecondsErrorsWhenUnavailable(t *testing.T) {
	result := Result{Format: Format{Duration: "bad", Filename: "x.mp3"}}
	if _, err := result.DurationSeconds(); err == nil {
		t.Fatal("expected error for missing duration")
	}
}

func TestAudioStreamCount(t *testing.T) {
	result := Result{Streams: []Stream{
		{CodecType: "audio"},
		{CodecType: "AUDIO"},
		{CodecType: "video"},
	}}
	if got := result.AudioStreamCount(); got != 2 {
		t.Fatalf("AudioStreamCount = %d", got)
	}
}
