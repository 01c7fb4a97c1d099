package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifierWords(t *testing.T) {
	strip := DefaultConfig().Naming.StripWords

	t.Run("snake and kebab delimiters", func(t *testing.T) {
		require.Equal(t, []string{"foo"}, identifierWords("foo_intf", strip))
		require.Equal(t, []string{"data", "store"}, identifierWords("data-store", strip))
		require.Equal(t, []string{"a", "b", "c"}, identifierWords("a_b c", strip))
	})

	t.Run("camel humps without delimiters", func(t *testing.T) {
		require.Equal(t, []string{"foo"}, identifierWords("FooIntf", strip))
		require.Equal(t, []string{"audio", "sink"}, identifierWords("AudioSink", strip))
		require.Equal(t, []string{"reader"}, identifierWords("reader", strip))
	})

	t.Run("uppercase runs stay together", func(t *testing.T) {
		require.Equal(t, []string{"http", "server"}, identifierWords("HTTPServer", strip))
		require.Equal(t, []string{"parse", "xml"}, identifierWords("ParseXML", strip))
	})

	t.Run("stripping never leaves an empty name", func(t *testing.T) {
		require.Equal(t, []string{"intf"}, identifierWords("Intf", strip))
		require.Equal(t, []string{"intf", "intf"}, identifierWords("intf_intf", strip))
	})

	t.Run("strip matching is case insensitive", func(t *testing.T) {
		require.Equal(t, []string{"codec"}, identifierWords("CodecINTF", strip))
	})
}

func TestCaseRecombination(t *testing.T) {
	words := []string{"audio", "sink"}
	require.Equal(t, "audio-sink", kebabCase(words))
	require.Equal(t, "AudioSink", pascalCase(words))
	require.Equal(t, "AUDIO_SINK_GMOCK_H", upperSnakeOf("audio-sink-gmock.h"))
}
