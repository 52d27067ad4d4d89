// Snapshot plays a JSON script of weather states headlessly and writes the
// requested screenshots as PNG files. Without -script it captures every
// recognized state plus one unrecognized state.
//
//	go run ./demos/snapshot -out shots
//	go run ./demos/snapshot -script tour.json -out shots
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/phanxgames/weatheroverlay"
)

// defaultScript visits every state and captures it after a second of frames.
func defaultScript(seed uint64) []byte {
	type step struct {
		Action string `json:"action"`
		State  string `json:"state,omitempty"`
		Label  string `json:"label,omitempty"`
		Frames int    `json:"frames,omitempty"`
	}
	var steps []step
	for _, s := range append(weatheroverlay.KnownStates(), "clear-night") {
		steps = append(steps,
			step{Action: "state", State: s},
			step{Action: "wait", Frames: 30},
			step{Action: "screenshot", Label: s},
		)
	}
	data, err := json.Marshal(map[string]any{"seed": seed, "steps": steps})
	if err != nil {
		log.Fatal(err)
	}
	return data
}

func main() {
	scriptPath := flag.String("script", "", "JSON script to run")
	out := flag.String("out", "screenshots", "output directory")
	seed := flag.Uint64("seed", 1, "seed for the built-in script")
	flag.Parse()

	data := defaultScript(*seed)
	if *scriptPath != "" {
		var err error
		data, err = os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	runner, err := weatheroverlay.LoadScript(data)
	if err != nil {
		log.Fatal(err)
	}
	shots, err := runner.Run(*out)
	if err != nil {
		log.Fatal(err)
	}
	for _, path := range shots {
		fmt.Println(path)
	}
	fmt.Printf("%d frames, %d screenshots\n", runner.Frames(), len(shots))
}
