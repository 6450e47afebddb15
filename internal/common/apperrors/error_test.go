package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("chaining", func(t *testing.T) {
		ErrBase := New("base error")
		assert.Equal(t, "base error", ErrBase.Error())
		assert.Equal(t, "msg", ErrBase.New("msg").Error())
		assert.ErrorIs(t, ErrBase, ErrBase)

		ErrFirstLevel := ErrBase.New("first level")
		assert.Equal(t, "first level", ErrFirstLevel.Error())
		assert.ErrorIs(t, ErrFirstLevel, ErrBase)

		ErrOther := New("other error")
		ErrOtherMsg := ErrOther.Msg("other error msg")
		ErrWrapped := ErrFirstLevel.Err(ErrOtherMsg)
		assert.Equal(t, "first level", ErrWrapped.Error())
		assert.ErrorIs(t, ErrWrapped, ErrBase)
		assert.ErrorIs(t, ErrWrapped, ErrFirstLevel)
		assert.ErrorIs(t, ErrWrapped, ErrOther)
		assert.ErrorIs(t, ErrWrapped, ErrOtherMsg)

		err := errors.New("error")
		ErrWrapped = ErrFirstLevel.Err(err)
		assert.Equal(t, "first level", ErrWrapped.Error())
		assert.ErrorIs(t, ErrWrapped, ErrBase)
		assert.ErrorIs(t, ErrWrapped, err)

		ErrWrapped = ErrFirstLevel.MsgErr("msg", err)
		assert.Equal(t, "msg", ErrWrapped.Error())
		assert.ErrorIs(t, ErrWrapped, ErrBase)
		assert.ErrorIs(t, ErrWrapped, err)

		goErr := fmt.Errorf("plain error")
		ErrWrappedGo := ErrFirstLevel.Err(goErr)
		assert.ErrorIs(t, ErrWrappedGo, goErr)
		assert.Len(t, ErrWrappedGo.UnwrapAll(), 2)
	})

	t.Run("status codes", func(t *testing.T) {
		ErrBadRequest := New("bad request").SetStatusCode(http.StatusBadRequest)
		assert.Equal(t, http.StatusBadRequest, ErrBadRequest.StatusCode())

		// derived errors inherit the status code
		derived := ErrBadRequest.New("field missing")
		assert.Equal(t, http.StatusBadRequest, derived.StatusCode())
		assert.ErrorIs(t, derived, ErrBadRequest)

		// SetStatusCode does not mutate the original
		changed := derived.SetStatusCode(http.StatusInternalServerError)
		assert.Equal(t, http.StatusInternalServerError, changed.StatusCode())
		assert.Equal(t, http.StatusBadRequest, derived.StatusCode())
	})

	t.Run("unrelated roots do not match", func(t *testing.T) {
		ErrA := New("a")
		ErrB := New("b")
		assert.NotErrorIs(t, ErrA.New("derived"), ErrB)
	})
}
