package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand_From_Stdin(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	cmd := NewChatViewCommand()
	cmd.SetIn(strings.NewReader(`{"text":"Hello ","extra":[{"translate":"chat.type.text"},{"score":{"name":"Alice","objective":"kills","value":"3"}}]}`))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"render", "--no-color"})

	req.NoError(cmd.Execute())
	req.Equal("Hello [chat.type.text]Alice: 3\n", color.ClearCode(out.String()))
}

func TestRenderCommand_Malformed_Input_Falls_Back_To_Raw(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "broken.json")
	req.NoError(os.WriteFile(path, []byte(`{"text":`), 0o600))

	var out bytes.Buffer
	cmd := NewChatViewCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"render", "--no-color", path})

	req.NoError(cmd.Execute())
	req.Equal("{\"text\":\n", color.ClearCode(out.String()))
}

func TestRenderCommand_Missing_File(t *testing.T) {
	req := require.New(t)
	cmd := NewChatViewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", filepath.Join(t.TempDir(), "missing.json")})

	req.Error(cmd.Execute())
}
