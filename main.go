package main

import (
	"context"
	"errors"
	"os"

	"github.com/m-mizutani/pushbell/pkg/cli"
	"github.com/m-mizutani/pushbell/pkg/domain/types"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, types.ErrWebhookURLRequired) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
