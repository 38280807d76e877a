package e_test

import (
	"go-botadmin/pkg/e"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWith_MatchesBoth(t *testing.T) {
	err := e.With(e.ErrDoRequest, assert.AnError)

	assert.ErrorIs(t, err, e.ErrDoRequest)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, e.ErrDoRequest.Error()+": "+assert.AnError.Error(), err.Error())
}

func TestWrap_KeepsCause(t *testing.T) {
	err := e.Wrap("can't update bot", e.ErrAPI)

	assert.ErrorIs(t, err, e.ErrAPI)
	assert.Equal(t, "can't update bot: API returned error", err.Error())
}
