//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/speakeasy-api/schemadiff/pkg/playground"
	"github.com/speakeasy-api/schemadiff/pkg/schemafmt"
)

// DiffSchemas compares the two panes and returns the playground result as JSON
func DiffSchemas(schema1, schema2 string) (string, error) {
	res, err := playground.DiffPanes(playground.Panes{Schema1: schema1, Schema2: schema2})
	if err != nil {
		return "", err
	}
	return marshalResult(res)
}

// MergeSchemas merges the second pane into the first and returns the playground result as JSON
func MergeSchemas(schema1, schema2 string) (string, error) {
	res, err := playground.MergePanes(playground.Panes{Schema1: schema1, Schema2: schema2})
	if err != nil {
		return "", err
	}
	return marshalResult(res)
}

// FormatSchemas pretty-prints both panes and returns them with their share state
func FormatSchemas(schema1, schema2 string) (string, error) {
	p, err := playground.FormatPanes(playground.Panes{Schema1: schema1, Schema2: schema2}, schemafmt.Cfg{})
	if err != nil {
		return "", err
	}
	state, err := playground.EncodeState(p)
	if err != nil {
		return "", err
	}
	return marshalResult(struct {
		playground.Panes
		State string `json:"state"`
	}{p, state})
}

func marshalResult(v any) (string, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(jsonBytes), nil
}

// promisify wraps a Go function to return a JavaScript Promise
func promisify(fn func(args []js.Value) (string, error)) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		// Handler for the Promise
		handler := js.FuncOf(func(this js.Value, promiseArgs []js.Value) any {
			resolve := promiseArgs[0]
			reject := promiseArgs[1]

			go func() {
				result, err := fn(args)
				if err != nil {
					errorConstructor := js.Global().Get("Error")
					errorObject := errorConstructor.New(err.Error())
					reject.Invoke(errorObject)
					return
				}

				resolve.Invoke(result)
			}()

			// The handler of a Promise doesn't return any value
			return nil
		})

		promiseConstructor := js.Global().Get("Promise")
		return promiseConstructor.New(handler)
	})
}

func main() {
	js.Global().Set("DiffSchemas", promisify(func(args []js.Value) (string, error) {
		if len(args) != 2 {
			return "", fmt.Errorf("DiffSchemas: expected 2 args (schema1, schema2), got %v", len(args))
		}

		return DiffSchemas(args[0].String(), args[1].String())
	}))

	js.Global().Set("MergeSchemas", promisify(func(args []js.Value) (string, error) {
		if len(args) != 2 {
			return "", fmt.Errorf("MergeSchemas: expected 2 args (schema1, schema2), got %v", len(args))
		}

		return MergeSchemas(args[0].String(), args[1].String())
	}))

	js.Global().Set("FormatSchemas", promisify(func(args []js.Value) (string, error) {
		if len(args) != 2 {
			return "", fmt.Errorf("FormatSchemas: expected 2 args (schema1, schema2), got %v", len(args))
		}

		return FormatSchemas(args[0].String(), args[1].String())
	}))

	js.Global().Set("EncodeState", promisify(func(args []js.Value) (string, error) {
		if len(args) != 2 {
			return "", fmt.Errorf("EncodeState: expected 2 args (schema1, schema2), got %v", len(args))
		}

		return playground.EncodeState(playground.Panes{Schema1: args[0].String(), Schema2: args[1].String()})
	}))

	// DecodeState resolves to the formatted panes as JSON
	js.Global().Set("DecodeState", promisify(func(args []js.Value) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("DecodeState: expected 1 arg (state), got %v", len(args))
		}

		p, err := playground.LoadState(args[0].String())
		if err != nil {
			return "", err
		}
		return marshalResult(p)
	}))

	// Keep the program running
	<-make(chan bool)
}
