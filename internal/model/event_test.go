package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github-activity-feed/internal/model"
)

func TestActionIsValid(t *testing.T) {
	assert.True(t, model.ActionPush.IsValid())
	assert.True(t, model.ActionPullRequest.IsValid())
	assert.True(t, model.ActionMerge.IsValid())
	assert.False(t, model.Action("").IsValid())
	assert.False(t, model.Action("push").IsValid())
	assert.False(t, model.Action("ISSUE").IsValid())
}

func TestStrHelpers(t *testing.T) {
	assert.Equal(t, "", model.StrVal(nil))
	assert.Equal(t, "main", model.StrVal(model.StrPtr("main")))
}
