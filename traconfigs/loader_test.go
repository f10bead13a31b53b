package traconfigs

import (
	"errors"
	"testing"

	"github.com/reusee/dscope"
	"github.com/sekino/tra/configs"
	"github.com/sekino/tra/modes"
)

func TestConfigsLoader(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		loader configs.Loader,
	) {
		var timeout float64
		err := loader.AssignFirst("command_timeout", &timeout)
		if err != nil && !errors.Is(err, configs.ErrValueNotFound) {
			t.Fatal(err)
		}
	})
}
