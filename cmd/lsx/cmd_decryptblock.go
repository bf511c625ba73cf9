package main

import (
	"encoding/hex"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/codahale/lsx/twofish"
)

type decryptBlockCmd struct {
	Block string `arg:"" help:"The ciphertext block, as 32 hex digits."`

	KeyFile string `help:"The path to a hex-encoded key file. Prompts if not given."`
}

func (cmd *decryptBlockCmd) Run(_ *kong.Context) error {
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
	c.Decrypt(out, block)

	fmt.Println(hex.EncodeToString(out))

	return nil
}
