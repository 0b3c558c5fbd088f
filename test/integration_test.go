package test

import (
	"encoding/hex"
	"path/filepath"
	"testing"

	"github.com/alshadows/rsfec/internal/validation"
	"github.com/alshadows/rsfec/pkg/config"
	"github.com/alshadows/rsfec/pkg/fec/rs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullWorkflow(t *testing.T) {
	message := []byte("I am a Fullstack developer at Alshadows Technology")
	const parity = 8

	require.NoError(t, validation.ValidateEncodeParams(len(message), parity))

	codeword, err := rs.Encode(message, parity)
	require.NoError(t, err)
	assert.Len(t, codeword, len(message)+parity)
	t.Logf("Codeword: %s", hex.EncodeToString(codeword))

	// Channel damage at positions the decoder does not know about.
	damaged := make([]byte, len(codeword))
	copy(damaged, codeword)
	for _, pos := range []int{10, 11, 12, 13} {
		damaged[pos] ^= 0xFF
	}

	require.NoError(t, validation.ValidateDecodeParams(len(damaged), parity))
	corrected, fixed, err := rs.Decode(damaged, parity, nil)
	require.NoError(t, err)
	assert.Equal(t, message, corrected[:len(message)])
	assert.Equal(t, []int{10, 11, 12, 13}, fixed)
}

func TestErasureWorkflow(t *testing.T) {
	message := []byte("I am a Fullstack developer at Alshadows Technology")
	const parity = 8

	codeword, err := rs.Encode(message, parity)
	require.NoError(t, err)

	// Twice the blind-error capacity, but every position is declared.
	erasures := []int{0, 1, 2, 3, 10, 11, 12, 13}
	damaged := make([]byte, len(codeword))
	copy(damaged, codeword)
	for _, pos := range erasures {
		damaged[pos] ^= 0xFF
	}

	require.NoError(t, validation.ValidateErasures(erasures, len(damaged), parity))
	corrected, fixed, err := rs.Decode(damaged, parity, erasures)
	require.NoError(t, err)
	assert.Equal(t, message, corrected[:len(message)])
	assert.Equal(t, erasures, fixed)
}

func TestOverloadedChannelFailsCleanly(t *testing.T) {
	codeword, err := rs.Encode([]byte("Hello"), 4)
	require.NoError(t, err)

	damaged := make([]byte, len(codeword))
	copy(damaged, codeword)
	for _, pos := range []int{0, 1, 2} {
		damaged[pos] ^= 0xFF
	}

	corrected, fixed, err := rs.Decode(damaged, 4, nil)
	assert.ErrorIs(t, err, rs.ErrUncorrectable)
	assert.Nil(t, corrected)
	assert.Nil(t, fixed)
}

func TestCodecAcrossManyMessages(t *testing.T) {
	codec, err := rs.NewCodec(6)
	require.NoError(t, err)

	messages := [][]byte{
		[]byte("first"),
		[]byte("second message, somewhat longer"),
		{0x00},
		{0xFF, 0x00, 0xFF},
	}

	for _, message := range messages {
		codeword, err := codec.Encode(message)
		require.NoError(t, err)

		damaged := make([]byte, len(codeword))
		copy(damaged, codeword)
		damaged[0] ^= 0x01
		damaged[len(damaged)-1] ^= 0x80

		corrected, fixed, err := codec.Decode(damaged, nil)
		require.NoError(t, err)
		assert.Equal(t, message, corrected[:len(message)])
		assert.Len(t, fixed, 2)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("RSFEC_CONFIG", filepath.Join(t.TempDir(), "config.json"))

	m, err := config.NewManager()
	require.NoError(t, err)

	cfg := m.Config()
	assert.Equal(t, 8, cfg.Defaults.Parity)
	assert.Equal(t, 0xFF, cfg.Defaults.CorruptMask)

	// A second manager reads the file the first one created.
	m2, err := config.NewManager()
	require.NoError(t, err)
	assert.Equal(t, cfg.Defaults.Parity, m2.Config().Defaults.Parity)
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("RSFEC_CONFIG", filepath.Join(t.TempDir(), "config.json"))
	t.Setenv("RSFEC_PARITY", "16")

	m, err := config.NewManager()
	require.NoError(t, err)
	assert.Equal(t, 16, m.Config().Defaults.Parity)
	assert.Equal(t, 16, config.DefaultParity())
}
