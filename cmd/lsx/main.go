package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

type cli struct {
	Hash         hashCmd         `cmd:"" help:"Print the SHA-256 digest of a file or standard input."`
	EncryptBlock encryptBlockCmd `cmd:"" help:"Encrypt a single 16-byte block with Twofish."`
	DecryptBlock decryptBlockCmd `cmd:"" help:"Decrypt a single 16-byte block with Twofish."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return os.Stdin, nil
	}

	return os.Open(path)
}

// readKey returns the key bytes from a hex-encoded key file, or prompts for
// them if no path was given.
func readKey(path string) ([]byte, error) {
	var (
		b   []byte
		err error
	)

	if path != "" {
		b, err = os.ReadFile(path)
	} else {
		b, err = askKey("Enter key (hex): ")
	}

	if err != nil {
		return nil, err
	}

	return hex.DecodeString(strings.TrimSpace(string(b)))
}

func askKey(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}
