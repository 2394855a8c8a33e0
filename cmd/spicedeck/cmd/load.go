package cmd

import (
	"context"
	"os"

	"github.com/edp1096/spicedeck/internal/ctxlog"
	"github.com/edp1096/spicedeck/internal/deck"
	"github.com/edp1096/spicedeck/internal/modellib"
	"github.com/edp1096/spicedeck/pkg/circuit"
)

// loadDeck loads path, resolving library_models from the model library when
// the library file exists.
func loadDeck(ctx context.Context, flags *globalFlags, path string, strict bool) (*circuit.Circuit, error) {
	opts := []deck.Option{deck.WithStrict(strict)}

	if _, err := os.Stat(flags.library); err == nil {
		lib, err := modellib.Open(ctx, flags.library)
		if err != nil {
			return nil, err
		}
		defer lib.Close()
		opts = append(opts, deck.WithModelSource(lib))
	} else {
		ctxlog.FromContext(ctx).Debug("No model library.", "path", flags.library)
	}

	return deck.Load(ctx, path, opts...)
}
