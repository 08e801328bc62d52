//go:build js && wasm

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"syscall/js"

	"github.com/patternmaker/patternmaker/internal/pattern"
	"github.com/patternmaker/patternmaker/internal/studio"
)

var st *studio.Studio

func main() {
	st = studio.New(studio.Options{})

	patternEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	patternEngine.Set("setConfig", js.FuncOf(setConfig))
	patternEngine.Set("updateConfig", js.FuncOf(updateConfig))
	patternEngine.Set("randomize", js.FuncOf(randomize))
	patternEngine.Set("applyPrompt", js.FuncOf(applyPrompt))

	// --- Queries (frontend ← backend) ---
	patternEngine.Set("getConfig", js.FuncOf(getConfig))
	patternEngine.Set("render", js.FuncOf(render))
	patternEngine.Set("exportPNG", js.FuncOf(exportPNG))
	patternEngine.Set("families", js.FuncOf(families))

	js.Global().Set("patternEngine", patternEngine)
	js.Global().Set("patternWasmReady", js.ValueOf(true))

	select {}
}

func configJSON(cfg pattern.Config) js.Value {
	data, err := json.Marshal(cfg)
	if err != nil {
		return errorValue(err.Error())
	}
	return js.ValueOf(map[string]interface{}{"ok": true, "config": string(data)})
}

func errorValue(msg string) js.Value {
	return js.ValueOf(map[string]interface{}{"error": msg})
}

// --- Command Handlers ---

func setConfig(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("missing config JSON")
	}

	cfg := pattern.Default()
	if err := json.Unmarshal([]byte(args[0].String()), &cfg); err != nil {
		return errorValue(err.Error())
	}
	return configJSON(st.SetConfig(cfg))
}

func updateConfig(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("missing delta JSON")
	}

	var d pattern.Delta
	if err := json.Unmarshal([]byte(args[0].String()), &d); err != nil {
		return errorValue(err.Error())
	}
	return configJSON(st.Update(d))
}

func randomize(this js.Value, args []js.Value) interface{} {
	return configJSON(st.Randomize())
}

// applyPrompt(text, callback) interprets off the event loop and calls back
// with the resulting config once any interpreter delay has passed.
func applyPrompt(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("missing prompt")
	}
	text := args[0].String()
	var callback js.Value
	if len(args) > 1 && args[1].Type() == js.TypeFunction {
		callback = args[1]
	}

	go func() {
		cfg, applied, err := st.ApplyPrompt(context.Background(), text)
		if callback.IsUndefined() {
			return
		}
		if err != nil {
			callback.Invoke(errorValue(err.Error()))
			return
		}
		res := configJSON(cfg)
		res.Set("applied", applied)
		callback.Invoke(res)
	}()
	return nil
}

// --- Query Handlers ---

func getConfig(this js.Value, args []js.Value) interface{} {
	return configJSON(st.Config())
}

func render(this js.Value, args []js.Value) interface{} {
	result, err := st.RenderJSON()
	if err != nil {
		return errorValue(err.Error())
	}
	return js.ValueOf(result)
}

func exportPNG(this js.Value, args []js.Value) interface{} {
	name, data, ok, err := st.EncodePNG()
	if err != nil {
		return errorValue(err.Error())
	}
	if !ok {
		return js.ValueOf(map[string]interface{}{"ok": false})
	}
	return js.ValueOf(map[string]interface{}{
		"ok":       true,
		"filename": name,
		"dataURL":  "data:image/png;base64," + base64.StdEncoding.EncodeToString(data),
	})
}

func families(this js.Value, args []js.Value) interface{} {
	names := make([]interface{}, len(pattern.Families))
	for i, fam := range pattern.Families {
		names[i] = string(fam)
	}
	return js.ValueOf(names)
}
