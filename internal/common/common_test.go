package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityKey(t *testing.T) {
	assert.Equal(t, "Face:Wall 1", EntityKey("Face", "Wall 1"))
	assert.Equal(t, "Face", EntityKey("Face", ""))
	assert.Equal(t, "Wall 1", EntityKey("", "Wall 1"))
}
