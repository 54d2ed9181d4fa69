package params_test

import (
	"fmt"
	"io"

	"github.com/pion/logging"

	"github.com/cwbudde/algo-synth/params"
)

func ExampleStore() {
	store := params.NewStore(params.WithLoggerFactory(&logging.DefaultLoggerFactory{
		Writer:          io.Discard,
		DefaultLogLevel: logging.LogLevelDisabled,
	}))

	if err := store.SetFromHost(0, 1); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(store.ParameterName(0)+":", store.Text(0)+store.Label(0))

	p, err := store.Parameters()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Osc.Filter.Type, p.Osc.Filter.Freq.Float64())
	// Output:
	// Master Volume: +12.00 dB
	// Low Pass 20480
}
