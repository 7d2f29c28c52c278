package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDGenerator(t *testing.T) {
	gen, err := NewIDGenerator(IDStrategyUUID)
	require.NoError(t, err)
	assert.IsType(t, &UUIDGenerator{}, gen)

	gen, err = NewIDGenerator("")
	require.NoError(t, err)
	assert.IsType(t, &UUIDGenerator{}, gen)

	gen, err = NewIDGenerator(IDStrategyTimestamp)
	require.NoError(t, err)
	assert.IsType(t, &TimestampGenerator{}, gen)

	_, err = NewIDGenerator("autoincrement")
	assert.Error(t, err)
}

func TestUUIDGenerator_Version7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_Distintos(t *testing.T) {
	gen := NewUUIDGenerator()
	vistos := make(map[string]struct{}, 10000)

	for range 10000 {
		id := gen.Generate()
		_, repetido := vistos[id]
		require.False(t, repetido, "id repetido: %s", id)
		vistos[id] = struct{}{}
	}
}

func TestTimestampGenerator_Formato(t *testing.T) {
	gen := &TimestampGenerator{now: func() time.Time {
		return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	}}

	id := gen.Generate()

	assert.Regexp(t, regexp.MustCompile(`^20240305140709_[a-zA-Z0-9]{6}$`), id)
}

func TestTimestampGenerator_SufijoAleatorio(t *testing.T) {
	gen := NewTimestampGenerator()
	vistos := make(map[string]struct{})

	for range 200 {
		vistos[gen.Generate()] = struct{}{}
	}

	// Con 62^6 sufijos posibles, 200 llamadas en el mismo segundo no deberían colisionar
	assert.Greater(t, len(vistos), 195)
}
