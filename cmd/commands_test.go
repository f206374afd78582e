package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"folio/internal/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
owner:
  email: owner@example.org
ui:
  disableBackground: true
`

type fakeLauncher struct {
	links []string
	err   error
}

func (f *fakeLauncher) Open(link string) error {
	f.links = append(f.links, link)
	return f.err
}

type fakeClipboard struct{ text string }

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return nil
}

func useFakeSender(t *testing.T, launcher *fakeLauncher, clip *fakeClipboard) {
	t.Helper()
	original := newSender
	t.Cleanup(func() { newSender = original })
	newSender = func(recipient string) *contact.Sender {
		return &contact.Sender{Recipient: recipient, Launcher: launcher, Clipboard: clip}
	}
}

func TestShowCommand(t *testing.T) {
	useConfigFile(t, testConfig)

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "skills fragment", args: []string{"#skills"}, contains: "95%"},
		{name: "narrow width", args: []string{"skills", "--width", "60"}, contains: "70%"},
		{name: "no pane shows home", args: nil, contains: "Press 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			showCmd := newShowCmd()
			showCmd.SetOut(&buf)
			showCmd.SetArgs(tt.args)

			require.NoError(t, showCmd.Execute())
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestPanesCommand(t *testing.T) {
	var buf bytes.Buffer
	panesCmd := newPanesCmd()
	panesCmd.SetOut(&buf)
	panesCmd.SetArgs(nil)
	require.NoError(t, panesCmd.Execute())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "#home")
	assert.Contains(t, lines[2], "#cv")
	assert.Contains(t, lines[6], "Contact")
}

func contactArgs(extra ...string) []string {
	args := []string{
		"--name", "Ada",
		"--email", "ada@example.org",
		"--subject", "Hello",
		"--message", "Let's talk",
	}
	return append(args, extra...)
}

func TestContactCommand_Print(t *testing.T) {
	useConfigFile(t, testConfig)
	launcher := &fakeLauncher{}
	useFakeSender(t, launcher, &fakeClipboard{})

	var buf bytes.Buffer
	contactCmd := newContactCmd()
	contactCmd.SetOut(&buf)
	contactCmd.SetArgs(contactArgs("--print"))
	require.NoError(t, contactCmd.Execute())

	assert.True(t, strings.HasPrefix(buf.String(), "mailto:owner@example.org?"))
	assert.Empty(t, launcher.links)
}

func TestContactCommand_Send(t *testing.T) {
	useConfigFile(t, testConfig)
	launcher := &fakeLauncher{}
	useFakeSender(t, launcher, &fakeClipboard{})

	var buf bytes.Buffer
	contactCmd := newContactCmd()
	contactCmd.SetOut(&buf)
	contactCmd.SetArgs(contactArgs())
	require.NoError(t, contactCmd.Execute())

	require.Len(t, launcher.links, 1)
	assert.True(t, strings.HasPrefix(launcher.links[0], "mailto:owner@example.org?"))
	assert.Equal(t, contact.SentMessage+"\n", buf.String())
}

func TestContactCommand_FallsBackToClipboard(t *testing.T) {
	useConfigFile(t, testConfig)
	clip := &fakeClipboard{}
	useFakeSender(t, &fakeLauncher{err: errors.New("no opener")}, clip)

	var buf bytes.Buffer
	contactCmd := newContactCmd()
	contactCmd.SetOut(&buf)
	contactCmd.SetArgs(contactArgs())
	require.NoError(t, contactCmd.Execute())

	assert.True(t, strings.HasPrefix(clip.text, "mailto:"))
	assert.Equal(t, contact.CopiedMessage+"\n", buf.String())
}

func TestContactCommand_Validation(t *testing.T) {
	useConfigFile(t, testConfig)
	launcher := &fakeLauncher{}
	useFakeSender(t, launcher, &fakeClipboard{})

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "missing fields", args: []string{"--name", "Ada"}, want: contact.ErrMissingFields},
		{
			name: "bad email",
			args: []string{"--name", "Ada", "--email", "nope", "--subject", "Hi", "--message", "x"},
			want: contact.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contactCmd := newContactCmd()
			contactCmd.SetOut(&bytes.Buffer{})
			contactCmd.SetErr(&bytes.Buffer{})
			contactCmd.SetArgs(tt.args)
			assert.ErrorIs(t, contactCmd.Execute(), tt.want)
		})
	}
	assert.Empty(t, launcher.links)
}
