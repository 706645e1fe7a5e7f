package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("empty post")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("post not found")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("not yours")))
	assert.Equal(t, KindConflict, KindOf(Conflict("already blocked")))
	assert.Equal(t, KindUnavailable, KindOf(errors.New("connection refused")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("x")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Forbidden("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Unavailable(cause)

	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Message, "connection refused", "client message stays opaque")
}
