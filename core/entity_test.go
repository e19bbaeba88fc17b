package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baldursgate-parity/ddrc/core"
)

type sampleEntity struct {
	id  string
	typ string
}

func (s *sampleEntity) GetID() string   { return s.id }
func (s *sampleEntity) GetType() string { return s.typ }

func TestEntity_Implementation(t *testing.T) {
	var e core.Entity = &sampleEntity{id: "char-001", typ: "character"}
	assert.Equal(t, "char-001", e.GetID())
	assert.Equal(t, "character", e.GetType())
}
