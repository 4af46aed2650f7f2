package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftWithField(t *testing.T) {
	draft, ok := BlankDraft().WithField(FieldContactNumber, "0123", nil)
	require.True(t, ok)
	assert.Equal(t, "0123", draft.ContactNumber)

	_, ok = draft.WithField("__v", "3", nil)
	assert.False(t, ok)

	file := &ImageFile{Filename: "logo.png", ContentType: "image/png", Content: []byte{1, 2}}
	withFile, ok := draft.WithField(FieldImage, "ignored", file)
	require.True(t, ok)
	require.NotNil(t, withFile.Image)
	assert.Equal(t, "logo.png", withFile.Image.Filename)
	assert.Empty(t, withFile.ImageURL)

	cleared, ok := withFile.WithField(FieldImage, "https://cdn/logo.png", nil)
	require.True(t, ok)
	assert.Nil(t, cleared.Image)
	assert.Equal(t, "https://cdn/logo.png", cleared.ImageURL)
}

func TestDraftFieldsEnumeratesImage(t *testing.T) {
	fields := BlankDraft().Fields()
	require.Len(t, fields, 6)
	assert.Equal(t, FieldName, fields[0].Name)
	assert.Equal(t, FieldImage, fields[5].Name)
	assert.Nil(t, fields[5].File)
	assert.Empty(t, fields[5].Value)
}

func TestDraftFromRestaurant(t *testing.T) {
	draft := DraftFromRestaurant(Restaurant{ID: "x", Name: "KFC", OpeningHours: "24h", ImageURL: "img"})
	assert.Equal(t, "KFC", draft.Name)
	assert.Equal(t, "24h", draft.OpeningHours)
	assert.Equal(t, "img", draft.ImageURL)
}

func TestValidateDraft(t *testing.T) {
	complete := Draft{Name: "KFC", Description: "Chicken", Location: "Main", ContactNumber: "1", OpeningHours: "24h"}
	require.NoError(t, ValidateDraft(complete))

	blank := complete
	blank.Description = "   "
	blank.OpeningHours = ""
	err := ValidateDraft(blank)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDraft))

	var invalid *DraftValidationError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []string{FieldDescription, FieldOpeningHours}, invalid.Missing)
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("boom")
	fetch := &FetchError{Op: OpGet, ID: "r-1", Err: cause}
	assert.ErrorIs(t, fetch, cause)
	var asMutation *MutationError
	assert.False(t, errors.As(fetch, &asMutation))
	assert.Equal(t, "fetch get r-1: boom", fetch.Error())

	mutation := &MutationError{Op: OpCreate, Err: cause}
	assert.True(t, errors.As(fmt.Errorf("submit: %w", mutation), &asMutation))
	assert.Equal(t, OpCreate, asMutation.Op)
	assert.Equal(t, "create restaurant: boom", mutation.Error())
}
