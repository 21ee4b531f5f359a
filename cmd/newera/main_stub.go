//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"newera/internal/app"
)

func main() {
	fmt.Fprintln(os.Stderr, app.ErrNoWindow)
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/newera` or try `go run ./cmd/herdstat`.")
	os.Exit(2)
}
