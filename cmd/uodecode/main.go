// Command uodecode decodes a UO bitstream file into a PCM16/WAV file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/HornedViper/uodecode"
	"github.com/HornedViper/uodecode/container/uo"
	"github.com/HornedViper/uodecode/wav"
)

const outputSampleRate = 8000

func main() {
	inPath := pflag.StringP("in", "i", "", "input UO bitstream file")
	outPath := pflag.StringP("out", "o", "", "output PCM16/WAV file")
	pflag.Parse()

	if err := run(*inPath, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, "uodecode:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string) error {
	if inPath == "" || outPath == "" {
		pflag.Usage()
		return fmt.Errorf("both --in and --out are required")
	}

	buf, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	r := uo.NewReader(buf)
	samples, err := r.DecodeAll(uodecode.NewDecoder())
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return wav.NewWriter(outputSampleRate).Write(out, samples)
}
