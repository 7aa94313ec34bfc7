package errors

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "file not found")

	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "file not found", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[NOT_FOUND] file not found", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeKindMismatch, "%s is a folder", "/tmp/a/")
	require.Equal(t, "/tmp/a/ is a folder", err.Message())
}

func TestDefaultClassification(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want ErrorClassification
	}{
		{CodeIO, ClassificationRetryable},
		{CodeBusy, ClassificationRetryable},
		{CodeNotFound, ClassificationPermanent},
		{CodeAlreadyExists, ClassificationPermanent},
		{CodeWriteFailed, ClassificationPermanent},
		{ErrorCode("SOMETHING_ELSE"), ClassificationPermanent},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			require.Equal(t, tt.want, DefaultClassification(tt.code))
		})
	}
}

func TestWrap(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}
	err := Wrap(cause, CodeReadFailed, "failed to read")

	require.Equal(t, CodeReadFailed, err.Code())
	require.Equal(t, cause, err.Unwrap())
	require.True(t, stderrors.Is(err, fs.ErrNotExist))
	require.Equal(t, "[READ_FAILED] failed to read: open /x: file does not exist", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeReadFailed, "x"))
	require.Nil(t, Wrapf(nil, CodeReadFailed, "x %d", 1))
	require.Nil(t, WrapWithContext(nil, CodeReadFailed, "x", nil))
}

func TestWrap_PreservesClassification(t *testing.T) {
	inner := New(CodeIO, "interrupted")
	outer := Wrap(inner, CodeReadFailed, "failed to read")

	require.True(t, outer.Classification().IsRetryable())
	require.True(t, IsRetryable(outer))
}

func TestWrapWithContext_CopiesMap(t *testing.T) {
	ctx := map[string]interface{}{"path": "/a"}
	err := WrapWithContext(stderrors.New("boom"), CodeCopyFailed, "copy failed", ctx)
	ctx["path"] = "/mutated"

	require.Equal(t, "/a", err.Context()["path"])

	got := err.Context()
	got["path"] = "/also-mutated"
	require.Equal(t, "/a", err.Context()["path"])
}

func TestWithContext(t *testing.T) {
	err := New(CodeMoveFailed, "move failed")
	err = WithContext(err, "from", "/a")
	err = WithContext(err, "to", "/b")

	require.Equal(t, CodeMoveFailed, err.Code())
	require.Equal(t, map[string]interface{}{"from": "/a", "to": "/b"}, err.Context())
}

func TestWithContext_PlainError(t *testing.T) {
	plain := stderrors.New("plain")
	err := WithContext(plain, "path", "/p")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, "plain", err.Message())
	require.Equal(t, plain, err.Unwrap())
}

func TestWithContextMap_Overrides(t *testing.T) {
	err := WithContextMap(New(CodeIO, "x"), map[string]interface{}{"a": 1, "b": 2})
	err = WithContextMap(err, map[string]interface{}{"b": 3})

	require.Equal(t, map[string]interface{}{"a": 1, "b": 3}, err.Context())
}

func TestWithClassification(t *testing.T) {
	err := WithClassification(New(CodeNotFound, "lock missing"), ClassificationRetryable)
	require.Equal(t, CodeNotFound, err.Code())
	require.True(t, IsRetryable(err))
	require.Nil(t, WithClassification(nil, ClassificationRetryable))
}

func TestGetCode(t *testing.T) {
	require.Equal(t, CodeUnknown, GetCode(nil))
	require.Equal(t, CodeUnknown, GetCode(stderrors.New("x")))
	require.Equal(t, CodeBusy, GetCode(New(CodeBusy, "x")))

	wrapped := Join(stderrors.New("first"), New(CodeDeleteFailed, "second"))
	require.Equal(t, CodeDeleteFailed, GetCode(wrapped))
}

func TestGetClassification(t *testing.T) {
	require.Equal(t, ClassificationPermanent, GetClassification(nil))
	require.Equal(t, ClassificationPermanent, GetClassification(stderrors.New("x")))
	require.Equal(t, ClassificationRetryable, GetClassification(New(CodeIO, "x")))
}

func TestToJSON(t *testing.T) {
	require.Nil(t, ToJSON(nil))

	err := WithContext(New(CodeNotFound, "file not found"), "path", "/a.txt")
	resp := ToJSON(err)
	require.Equal(t, "NOT_FOUND", resp.Code)
	require.Equal(t, "file not found", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
	require.Equal(t, "/a.txt", resp.Context["path"])

	plain := ToJSON(stderrors.New("plain"))
	require.Equal(t, "UNKNOWN", plain.Code)
	require.Equal(t, "plain", plain.Message)
	require.Nil(t, plain.Context)
}

func TestMarshalJSON(t *testing.T) {
	err := New(CodeAlreadyExists, "exists")
	data, jerr := json.Marshal(err)
	require.NoError(t, jerr)
	require.JSONEq(t, `{"code":"ALREADY_EXISTS","message":"exists","classification":"PERMANENT"}`, string(data))
}
