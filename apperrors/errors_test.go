package apperrors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"nagaralert-be/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFromMongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: `E11000 duplicate key error collection: nagaralert.users index: email_1 dup key: { email: "ram@example.com" }`,
		}))

		_, err := mt.Coll.InsertOne(context.Background(), bson.M{"email": "ram@example.com"})
		require.Error(mt, err)

		converted := apperrors.FromMongo(err)
		appErr, ok := apperrors.As(converted)
		require.True(mt, ok)
		assert.Equal(mt, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Equal(mt, apperrors.StatusValidationFailed, appErr.Status)
		assert.Equal(mt, map[string]string{
			"email": "Email is already registered, please use another email.",
		}, appErr.Message)
		var we mongo.WriteException
		assert.True(mt, errors.As(converted, &we))
		assert.Equal(mt, 11000, we.WriteErrors[0].Code)
	})

	mt.Run("duplicate on other field", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: `E11000 duplicate key error collection: nagaralert.municipalities index: code_1 dup key: { code: "KTM" }`,
		}))

		_, err := mt.Coll.InsertOne(context.Background(), bson.M{"code": "KTM"})
		require.Error(mt, err)

		appErr, ok := apperrors.As(apperrors.FromMongo(err))
		require.True(mt, ok)
		assert.Equal(mt, map[string]string{"code": "code must be unique"}, appErr.Message)
	})

	mt.Run("other write errors pass through", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "Document failed validation",
		}))

		_, err := mt.Coll.InsertOne(context.Background(), bson.M{"name": "x"})
		require.Error(mt, err)

		converted := apperrors.FromMongo(err)
		assert.Equal(mt, err, converted)
		_, ok := apperrors.As(converted)
		assert.False(mt, ok)
	})
}

func TestFromMongoNil(t *testing.T) {
	assert.NoError(t, apperrors.FromMongo(nil))
}

func TestClassifiers(t *testing.T) {
	wrapped := fmt.Errorf("loading report: %w", apperrors.NewNotFound("Report not found"))

	assert.True(t, apperrors.IsNotFound(wrapped))
	assert.True(t, apperrors.IsNotFound(fmt.Errorf("find: %w", apperrors.ErrDocumentNotFound)))
	assert.False(t, apperrors.IsNotFound(errors.New("boom")))

	assert.True(t, apperrors.IsValidation(apperrors.NewValidation("bad")))
	assert.False(t, apperrors.IsValidation(apperrors.NewBadRequest("bad")))

	assert.True(t, apperrors.IsAccessDenied(apperrors.NewAccessDenied("no")))
	assert.True(t, apperrors.IsUnauthenticated(apperrors.NewNotActivated("pending")))
	assert.True(t, apperrors.IsUnauthenticated(apperrors.NewUnauthenticated("who")))
}

func TestAppErrorMessage(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewInternal("Failed to save report", cause)

	assert.Equal(t, "INTERNAL_SERVER_ERROR: Failed to save report: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	limited := apperrors.NewTooManyRequests("slow down").WithData(map[string]int{"retry_after": 60})
	assert.Equal(t, http.StatusTooManyRequests, limited.HTTPStatus)
	assert.Equal(t, "TOO_MANY_REQUESTS: slow down", limited.Error())
	assert.NotNil(t, limited.Data)
}
