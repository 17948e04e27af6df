package desktop

import (
	"encoding/binary"
	"math"
)

// SampleRate of every generated clip.
const SampleRate = 48000

// note is one pitch held for a duration. A zero frequency is a rest.
type note struct {
	freq float64
	ms   int
}

var (
	winJingle  = []note{{523.25, 90}, {659.25, 90}, {783.99, 90}, {1046.50, 260}}
	loseJingle = []note{{392.00, 140}, {311.13, 140}, {261.63, 140}, {196.00, 320}}
	musicLoop  = []note{
		{261.63, 180}, {329.63, 180}, {392.00, 180}, {329.63, 180},
		{293.66, 180}, {349.23, 180}, {440.00, 180}, {0, 180},
		{261.63, 180}, {392.00, 180}, {329.63, 180}, {261.63, 180},
		{196.00, 360}, {0, 360},
	}
)

// renderNotes synthesizes 16-bit little-endian stereo PCM. Each note has a
// short attack and a linear release so consecutive notes do not click.
func renderNotes(notes []note, gain float64) []byte {
	total := 0
	for _, n := range notes {
		total += samplesFor(n.ms)
	}
	buf := make([]byte, 0, total*4)

	for _, n := range notes {
		count := samplesFor(n.ms)
		attack := min(count/10, SampleRate/200)
		for i := 0; i < count; i++ {
			var v float64
			if n.freq > 0 {
				env := 1 - float64(i)/float64(count)
				if attack > 0 && i < attack {
					env *= float64(i) / float64(attack)
				}
				phase := 2 * math.Pi * n.freq * float64(i) / SampleRate
				// Sine with a touch of its third harmonic for a chiptune edge.
				v = (math.Sin(phase) + 0.3*math.Sin(3*phase)) / 1.3 * env * gain
			}
			s := uint16(int16(v * math.MaxInt16))
			buf = binary.LittleEndian.AppendUint16(buf, s)
			buf = binary.LittleEndian.AppendUint16(buf, s)
		}
	}
	return buf
}

func samplesFor(ms int) int {
	return SampleRate * ms / 1000
}
