package afero

import (
	"go.uber.org/fx"
)

var fs = NewOsFs()

// Module makes the OS-backed filesystem available for injection.
var Module fx.Option = fx.Provide(
	func() Fs { return fs },
)
