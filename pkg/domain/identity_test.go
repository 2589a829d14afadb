package domain_test

import (
	"testing"

	"github.com/comfforts/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hankgalt/collection-kit/pkg/domain"
)

func TestWithId(t *testing.T) {
	l := logger.GetSlogLogger()

	type User struct {
		domain.WithId[string]
		Name string
	}

	id := uuid.NewString()
	u := User{WithId: domain.WithId[string]{Id: id}, Name: "Alice"}
	require.Equal(t, id, u.GetId())

	var hasId domain.HasId[string] = u
	require.Equal(t, id, hasId.GetId())
	l.Debug("identifiable element", "id", hasId.GetId(), "name", u.Name)
}

func TestWithIdIntKeys(t *testing.T) {
	type Port struct {
		domain.WithId[int]
		Proto string
	}

	p := Port{WithId: domain.WithId[int]{Id: 443}, Proto: "tcp"}
	require.Equal(t, 443, p.GetId())
}
