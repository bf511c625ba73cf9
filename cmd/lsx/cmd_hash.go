package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/codahale/lsx/sha256"
	"github.com/mr-tron/base58"
)

type hashCmd struct {
	Input string `arg:"" optional:"" default:"-" help:"The path to the input file, or - for standard input."`

	Base58 bool `help:"Encode the digest as base58 instead of hex."`
}

func (cmd *hashCmd) Run(_ *kong.Context) error {
	src, err := openInput(cmd.Input)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	h := sha256.NewBuffered()
	buf := make([]byte, 64*1024)

	for {
		n, err := src.Read(buf)
		if n > 0 {
			h.Update(buf[:n])
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return err
		}
	}

	digest := h.Finish(nil)

	if cmd.Base58 {
		fmt.Println(base58.Encode(digest[:]))
	} else {
		fmt.Println(hex.EncodeToString(digest[:]))
	}

	return nil
}
