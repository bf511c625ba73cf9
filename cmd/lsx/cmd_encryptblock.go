package main

import (
	"encoding/hex"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/codahale/lsx/twofish"
)

type encryptBlockCmd struct {
	Block string `arg:"" help:"The plaintext block, as 32 hex digits."`

	KeyFile string `help:"The path to a hex-encoded key file. Prompts if not given."`
}

func (cmd *encryptBlockCmd) Run(_ *kong.Context) error {
	key, err := readKey(cmd.KeyFile)
	if err != nil {
		return err
	}

	c, err := twofish.NewCipher(key)
	if err != nil {
		return err
	}

	block, err := decodeBlock(cmd.Block)
	if err != nil {
		return err
	}

	out := make([]byte, twofish.BlockSize)
	c.Encrypt(out, block)

	fmt.Println(hex.EncodeToString(out))

	return nil
}

func decodeBlock(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}

	if len(b) != twofish.BlockSize {
		return nil, fmt.Errorf("expected a %d-byte block, got %d bytes", twofish.BlockSize, len(b))
	}

	return b, nil
}
