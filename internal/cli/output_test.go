package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(map[string]string{"result": "success"})
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error("bad argument")
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "bad argument", resp.Error.Message)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	// Text mode renders through the value's String method.
	err := formatter.Success(DayReport{NelscDate: "00:B3-1"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "NELSC date:      00:B3-1")
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Error("bad argument")
	require.NoError(t, err)
	assert.Equal(t, "bad argument\n", buf.String())
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	formatter := &OutputFormatter{
		Format:    "text",
		Writer:    out,
		ErrWriter: errW,
		Verbose:   true,
	}
	formatter.VerboseLog("parsed %d", 42)
	assert.Equal(t, "parsed 42\n", errW.String())
	assert.Empty(t, out.String())

	formatter.Verbose = false
	errW.Reset()
	formatter.VerboseLog("parsed %d", 42)
	assert.Empty(t, errW.String())
}

func TestExitError(t *testing.T) {
	plain := NewExitError(ExitFailure, "bad input")
	assert.Equal(t, "bad input", plain.Error())
	assert.Nil(t, errors.Unwrap(plain))

	inner := errors.New("inner")
	wrapped := WrapExitError(ExitCommandError, "outer", inner)
	assert.Equal(t, "outer: inner", wrapped.Error())
	assert.Equal(t, inner, errors.Unwrap(wrapped))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}
