package audio

// ChannelIndex selects one of the four sound-generation channels mixed
// by a Provider.
type ChannelIndex int

const (
	ChannelOne ChannelIndex = iota
	ChannelTwo
	ChannelThree
	ChannelFour
)

// Provider is anything that can feed a sink a stream of mixed audio
// samples and expose per-channel debug controls over that stream.
type Provider interface {
	// GetSamples retrieves audio samples for playback
	GetSamples(count int) []int16

	// Audio debugging controls

	ToggleChannel(channel ChannelIndex)
	SoloChannel(channel ChannelIndex)
	GetChannelStatus() (ch1, ch2, ch3, ch4 bool)
}

var _ Provider = (*APU)(nil)
